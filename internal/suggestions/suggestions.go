// Package suggestions loads and serves the embedded list of
// troubleshooting suggestions for go-things-to-check.
//
// The data file is a YAML sequence of markdown strings, compiled into the
// binary. It is parsed exactly once, before the web server starts accepting
// requests; a parse failure is fatal to startup. Each entry's position in
// the sequence is its permanent identity: shared links embed the index, so
// new entries are only ever appended at the end of the file.
package suggestions

import (
	_ "embed"
	"fmt"
	"html/template"
	"math/rand"

	"github.com/go-while/go-things-to-check/internal/models"
	"github.com/russross/blackfriday/v2"
	"gopkg.in/yaml.v3"
)

//go:embed things-to-check.yml
var embeddedThings []byte

// List is the ordered, immutable suggestion list. Shared read-only across
// all requests, so concurrent use needs no locking.
type List struct {
	items []*models.Suggestion
}

// Load parses the embedded data file. Called once from cmd/web before the
// server binds; an error here prevents startup.
func Load() (*List, error) {
	return Parse(embeddedThings)
}

// Parse builds a List from a YAML sequence of markdown strings. Each entry
// is rendered to HTML once, here, so request handlers only do lookups.
func Parse(src []byte) (*List, error) {
	var raw []string
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return nil, fmt.Errorf("failed to load things-to-check data: %w", err)
	}

	list := &List{items: make([]*models.Suggestion, 0, len(raw))}
	for idx, markdown := range raw {
		list.items = append(list.items, &models.Suggestion{
			Index:    idx,
			Markdown: markdown,
			HTML:     template.HTML(blackfriday.Run([]byte(markdown))),
		})
	}
	return list, nil
}

// Len returns the number of suggestions.
func (l *List) Len() int {
	return len(l.items)
}

// Pick returns the suggestion at the given index, or false if the index is
// outside the list.
func (l *List) Pick(item int) (*models.Suggestion, bool) {
	if item < 0 || item >= len(l.items) {
		return nil, false
	}
	return l.items[item], true
}

// Random returns a uniformly chosen suggestion, or false if the list is
// empty. The process-global rand source is safe for concurrent use.
func (l *List) Random() (*models.Suggestion, bool) {
	if len(l.items) == 0 {
		return nil, false
	}
	return l.items[rand.Intn(len(l.items))], true
}
