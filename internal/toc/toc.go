// Package toc extracts a document's table of contents and resolves its
// anchors against the document's headings.
package toc

import (
	"strings"

	"toclint/internal/document"
	"toclint/internal/slug"
)

// DefaultHeading is the section title that marks the table of contents.
const DefaultHeading = "Table of Contents"

// Entry is one table-of-contents link: display text plus the anchor it
// targets (without the leading #).
type Entry struct {
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
	Line   int    `json:"line"`
}

// Status classifies how an entry resolved.
type Status string

const (
	StatusOK        Status = "ok"        // anchor names exactly one heading
	StatusDangling  Status = "dangling"  // no heading matches
	StatusAmbiguous Status = "ambiguous" // anchor is a collided base slug
	StatusIgnored   Status = "ignored"   // exempted by configuration
)

// Result is the outcome of resolving one entry.
type Result struct {
	Entry   Entry  `json:"entry"`
	Status  Status `json:"status"`
	Heading string `json:"heading,omitempty"` // resolved heading title when ok
}

// Extract returns the entries of the table-of-contents section: every
// fragment link that appears under the heading titled tocHeading. The title
// match is case-insensitive. Returns nil if the document has no such section.
func Extract(doc *document.Document, tocHeading string) []Entry {
	var entries []Entry
	for _, l := range doc.Links {
		if !strings.HasPrefix(l.Destination, "#") {
			continue
		}
		if l.Section < 0 || !strings.EqualFold(doc.Headings[l.Section].Title, tocHeading) {
			continue
		}
		entries = append(entries, Entry{
			Text:   l.Text,
			Anchor: strings.TrimPrefix(l.Destination, "#"),
			Line:   l.Line,
		})
	}
	return entries
}

// Index maps anchors to headings. Unique base slugs resolve directly;
// collided base slugs resolve only through their -1, -2, ... forms, and the
// bare form is reported ambiguous.
type Index struct {
	headings []document.Heading
	anchors  []string
	byAnchor map[string]int
	collided map[string]bool
}

// NewIndex derives the anchor for every heading and builds the lookup.
func NewIndex(headings []document.Heading) *Index {
	titles := make([]string, len(headings))
	for i, h := range headings {
		titles[i] = h.Title
	}
	ix := &Index{
		headings: headings,
		anchors:  slug.Anchors(titles),
		byAnchor: make(map[string]int, len(headings)),
		collided: slug.Collisions(titles),
	}
	for i, a := range ix.anchors {
		ix.byAnchor[a] = i
	}
	return ix
}

// Anchors returns the derived anchor for each heading, in heading order.
func (ix *Index) Anchors() []string {
	return ix.anchors
}

// Resolve classifies a single anchor.
func (ix *Index) Resolve(anchor string) (document.Heading, Status) {
	if i, ok := ix.byAnchor[anchor]; ok {
		return ix.headings[i], StatusOK
	}
	if ix.collided[anchor] {
		return document.Heading{}, StatusAmbiguous
	}
	return document.Heading{}, StatusDangling
}

// Resolve checks every entry against the index. Anchors listed in ignore are
// reported as ignored without resolution.
func Resolve(entries []Entry, ix *Index, ignore []string) []Result {
	ignored := make(map[string]bool, len(ignore))
	for _, a := range ignore {
		ignored[strings.TrimPrefix(a, "#")] = true
	}

	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		if ignored[e.Anchor] {
			results = append(results, Result{Entry: e, Status: StatusIgnored})
			continue
		}
		h, status := ix.Resolve(e.Anchor)
		r := Result{Entry: e, Status: status}
		if status == StatusOK {
			r.Heading = h.Title
		}
		results = append(results, r)
	}
	return results
}
