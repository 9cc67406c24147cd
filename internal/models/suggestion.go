// Package models defines shared data types for go-things-to-check
package models

import "html/template"

// Suggestion is one troubleshooting tip from the embedded list.
// Created once at load time, immutable afterwards and shared read-only
// across all requests. Index is the entry's position in the data file and
// is permanent identity: shared links embed it, so entries are only ever
// appended, never reordered or removed.
type Suggestion struct {
	Index    int           // stable position in the data file
	Markdown string        // raw markdown, served as-is on the chat endpoint
	HTML     template.HTML // markdown rendered once at load time
}
