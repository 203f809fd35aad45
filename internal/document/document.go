// Package document parses a Markdown file into the structure toclint
// works with: ordered headings, inline links, and fenced code blocks.
package document

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Meta is the document's YAML frontmatter. All fields are optional; a
// document with no frontmatter parses to the zero value.
type Meta struct {
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
}

// Heading is an ATX heading in document order.
type Heading struct {
	Level int    // 1 for #, 2 for ##, ...
	Title string // text content, inline markup flattened
	Line  int    // 1-based line in the source file
}

// Link is an inline link in document order.
type Link struct {
	Text        string
	Destination string
	Line        int
	Section     int // index into Headings of the enclosing section, -1 before any heading
}

// CodeBlock is a fenced code block. Content is literal text; nothing in
// toclint ever evaluates it.
type CodeBlock struct {
	Lang    string // language tag on the opening fence, "" if absent
	Line    int    // 1-based line of the opening fence (best effort for empty blocks)
	Content string
}

// Document is a parsed Markdown file.
type Document struct {
	Path       string
	Meta       Meta
	Source     []byte // original bytes, frontmatter included
	Body       []byte // bytes after the frontmatter
	Headings   []Heading
	Links      []Link
	CodeBlocks []CodeBlock
}

var engine = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Parse reads source into a Document. Frontmatter is optional; the body is
// parsed with goldmark and walked once in document order.
func Parse(path string, source []byte) (*Document, error) {
	doc := &Document{Path: path, Source: source}

	body, err := frontmatter.Parse(bytes.NewReader(source), &doc.Meta)
	if err != nil {
		return nil, fmt.Errorf("%s: parse frontmatter: %w", path, err)
	}
	doc.Body = body

	// Line numbers reported to the user are relative to the full file, so
	// offset by the lines the frontmatter consumed.
	offset := bytes.Count(source, []byte("\n")) - bytes.Count(body, []byte("\n"))
	lineAt := func(byteOffset int) int {
		return offset + 1 + bytes.Count(body[:byteOffset], []byte("\n"))
	}

	root := engine.Parser().Parse(text.NewReader(body))

	section := -1
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			h := Heading{
				Level: node.Level,
				Title: string(node.Text(body)),
			}
			if node.Lines().Len() > 0 {
				h.Line = lineAt(node.Lines().At(0).Start)
			}
			doc.Headings = append(doc.Headings, h)
			section = len(doc.Headings) - 1
		case *ast.Link:
			l := Link{
				Text:        string(node.Text(body)),
				Destination: string(node.Destination),
				Section:     section,
			}
			if off, ok := firstTextOffset(node); ok {
				l.Line = lineAt(off)
			}
			doc.Links = append(doc.Links, l)
		case *ast.FencedCodeBlock:
			cb := CodeBlock{
				Lang:    string(node.Language(body)),
				Content: blockContent(node, body),
			}
			if info := node.Info; info != nil {
				cb.Line = lineAt(info.Segment.Start)
			} else if node.Lines().Len() > 0 {
				cb.Line = lineAt(node.Lines().At(0).Start) - 1
			}
			doc.CodeBlocks = append(doc.CodeBlocks, cb)
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: walk markdown: %w", path, err)
	}

	return doc, nil
}

// HeadingTitles returns the heading titles in document order.
func (d *Document) HeadingTitles() []string {
	titles := make([]string, len(d.Headings))
	for i, h := range d.Headings {
		titles[i] = h.Title
	}
	return titles
}

// firstTextOffset finds the byte offset of the first text segment under n,
// used to attribute a source line to inline nodes.
func firstTextOffset(n ast.Node) (int, bool) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			return t.Segment.Start, true
		}
		if off, ok := firstTextOffset(c); ok {
			return off, true
		}
	}
	return 0, false
}

func blockContent(n *ast.FencedCodeBlock, body []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(body))
	}
	return buf.String()
}
