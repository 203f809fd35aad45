package toc

import (
	"fmt"
	"regexp"
	"strings"

	"toclint/internal/document"
)

// Generate derives a fresh table-of-contents list from the document's
// headings: one list item per heading of level 2 or deeper, indented two
// spaces per level, skipping the table-of-contents heading itself.
func Generate(doc *document.Document, tocHeading string) string {
	ix := NewIndex(doc.Headings)
	anchors := ix.Anchors()

	var b strings.Builder
	for i, h := range doc.Headings {
		if h.Level < 2 || strings.EqualFold(h.Title, tocHeading) {
			continue
		}
		indent := strings.Repeat("  ", h.Level-2)
		fmt.Fprintf(&b, "%s- [%s](#%s)\n", indent, h.Title, anchors[i])
	}
	return b.String()
}

// Rewrite returns a copy of source with the body of the table-of-contents
// section replaced by the generated list. The section runs from the heading
// titled tocHeading to the next ATX heading. Errors if no such section exists.
func Rewrite(source []byte, doc *document.Document, tocHeading string) ([]byte, error) {
	lines := strings.Split(string(source), "\n")
	headingRe := regexp.MustCompile(`^#{1,6}\s+(.*?)\s*#*\s*$`)

	// Scan line by line, tracking fence state so a # inside a code block
	// is never mistaken for a heading.
	inFence := false
	start, end := -1, len(lines)
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		m := headingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if start < 0 {
			if strings.EqualFold(m[1], tocHeading) {
				start = i
			}
			continue
		}
		end = i
		break
	}
	if start < 0 {
		return nil, fmt.Errorf("no %q heading found", tocHeading)
	}

	generated := Generate(doc, tocHeading)
	var b strings.Builder
	b.WriteString(strings.Join(lines[:start+1], "\n"))
	b.WriteString("\n\n")
	b.WriteString(generated)
	b.WriteString("\n")
	b.WriteString(strings.Join(lines[end:], "\n"))
	return []byte(b.String()), nil
}
