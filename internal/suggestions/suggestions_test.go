package suggestions

import (
	"strings"
	"testing"
)

func TestLoadEmbeddedData(t *testing.T) {
	list, err := Load()
	if err != nil {
		t.Fatalf("Failed to load embedded data: %v", err)
	}
	if list.Len() == 0 {
		t.Fatalf("Embedded data loaded but list is empty")
	}
	t.Logf("Loaded %d suggestions from embedded data", list.Len())

	// Index zero is the oldest shared link out there, it must never move
	first, found := list.Pick(0)
	if !found {
		t.Fatalf("Pick(0) not found on non-empty list")
	}
	if first.Markdown != "Is it plugged in?" {
		t.Errorf("Entry 0 changed: got %q, want %q", first.Markdown, "Is it plugged in?")
	}

	// Every entry must carry its own position as identity
	for i := 0; i < list.Len(); i++ {
		entry, found := list.Pick(i)
		if !found {
			t.Fatalf("Pick(%d) not found, Len() is %d", i, list.Len())
		}
		if entry.Index != i {
			t.Errorf("Entry at position %d has Index %d", i, entry.Index)
		}
		if entry.Markdown == "" {
			t.Errorf("Entry %d has empty markdown", i)
		}
		if entry.HTML == "" {
			t.Errorf("Entry %d has empty rendered HTML", i)
		}
	}
}

func TestParseRendersMarkdown(t *testing.T) {
	src := []byte("- Did you *actually* read it?\n- Ask [the duck](https://example.com/duck).\n")
	list, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if list.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", list.Len())
	}

	emph, _ := list.Pick(0)
	if emph.Markdown != "Did you *actually* read it?" {
		t.Errorf("Raw markdown not preserved: %q", emph.Markdown)
	}
	if !strings.Contains(string(emph.HTML), "<em>actually</em>") {
		t.Errorf("Emphasis not rendered to HTML: %q", emph.HTML)
	}

	link, _ := list.Pick(1)
	if !strings.Contains(string(link.HTML), `<a href="https://example.com/duck">`) {
		t.Errorf("Link not rendered to HTML: %q", link.HTML)
	}
}

func TestParseRejectsMalformedData(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{"broken yaml", "- one\n  - [unclosed\n"},
		{"mapping not sequence", "foo: bar\n"},
		{"nested sequence", "- - one\n- two\n"},
	}

	for _, tc := range testCases {
		if _, err := Parse([]byte(tc.src)); err == nil {
			t.Errorf("Parse accepted malformed data (%s)", tc.name)
		}
	}
}

func TestPickBounds(t *testing.T) {
	list, err := Parse([]byte("- zero\n- one\n- two\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	testCases := []struct {
		item      int
		wantFound bool
		wantText  string
	}{
		{0, true, "zero"},
		{1, true, "one"},
		{2, true, "two"},
		{3, false, ""},
		{-1, false, ""},
		{1000000, false, ""},
	}

	for _, tc := range testCases {
		entry, found := list.Pick(tc.item)
		if found != tc.wantFound {
			t.Errorf("Pick(%d): found=%t, want %t", tc.item, found, tc.wantFound)
			continue
		}
		if found && entry.Markdown != tc.wantText {
			t.Errorf("Pick(%d): got %q, want %q", tc.item, entry.Markdown, tc.wantText)
		}
	}
}

func TestRandomCoversAllEntries(t *testing.T) {
	list, err := Parse([]byte("- a\n- b\n- c\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		entry, found := list.Random()
		if !found {
			t.Fatalf("Random() not found on non-empty list")
		}
		if entry.Index < 0 || entry.Index >= list.Len() {
			t.Fatalf("Random() returned out-of-range index %d", entry.Index)
		}
		seen[entry.Index] = true
	}
	if len(seen) != list.Len() {
		t.Errorf("Random() only returned %d of %d entries in 1000 draws", len(seen), list.Len())
	}
}

func TestRandomEmptyList(t *testing.T) {
	list, err := Parse([]byte("[]\n"))
	if err != nil {
		t.Fatalf("Parse failed on empty sequence: %v", err)
	}
	if list.Len() != 0 {
		t.Fatalf("Expected empty list, got %d entries", list.Len())
	}
	if _, found := list.Random(); found {
		t.Errorf("Random() reported found on empty list")
	}
	if _, found := list.Pick(0); found {
		t.Errorf("Pick(0) reported found on empty list")
	}
}
