package ux

import (
	"fmt"

	"toclint/internal/check"
	"toclint/internal/document"
	"toclint/internal/toc"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// RenderReport prints the full check report: one line per table-of-contents
// entry, then warnings, then a per-file verdict.
func RenderReport(r *check.Report) {
	for i := range r.Files {
		fr := &r.Files[i]
		fmt.Printf("\n%s%s%s\n", Bold, fr.Path, Reset)

		for _, res := range fr.Results {
			renderResult(res)
		}
		for _, w := range fr.Warnings {
			renderWarning(w)
		}

		if fr.OK() {
			fmt.Printf("  %s✓ %d entries resolved%s\n", Green, len(fr.Results), Reset)
		} else {
			fmt.Printf("  %s✗ %d of %d checks failed%s\n", Red, fr.Failed, len(fr.Results), Reset)
		}
	}
	fmt.Println()
}

func renderResult(res toc.Result) {
	switch res.Status {
	case toc.StatusOK:
		fmt.Printf("  %s✓%s %-32s %s→ %s%s\n",
			Green, Reset, "#"+res.Entry.Anchor, Dim, res.Heading, Reset)
	case toc.StatusIgnored:
		fmt.Printf("  %s– %-32s ignored%s\n", Dim, "#"+res.Entry.Anchor, Reset)
	case toc.StatusDangling:
		fmt.Printf("  %s✗%s %-32s %sdangling anchor (line %d): no heading matches%s\n",
			Red, Reset, "#"+res.Entry.Anchor, Red, res.Entry.Line, Reset)
	case toc.StatusAmbiguous:
		fmt.Printf("  %s✗%s %-32s %sambiguous anchor (line %d): several headings share this slug%s\n",
			Red, Reset, "#"+res.Entry.Anchor, Red, res.Entry.Line, Reset)
	}
}

func renderWarning(w check.Warning) {
	color := Yellow
	mark := "⚠"
	if w.Fatal {
		color = Red
		mark = "✗"
	}
	if w.Line > 0 {
		fmt.Printf("  %s%s line %d: %s%s\n", color, mark, w.Line, w.Message, Reset)
	} else {
		fmt.Printf("  %s%s %s%s\n", color, mark, w.Message, Reset)
	}
}

// RenderAnchors prints each heading with its derived anchor, indented by
// heading level.
func RenderAnchors(doc *document.Document, anchors []string) {
	fmt.Printf("\n%s%s%s\n\n", Bold, doc.Path, Reset)
	for i, h := range doc.Headings {
		indent := ""
		if h.Level > 1 {
			indent = fmt.Sprintf("%*s", (h.Level-1)*2, "")
		}
		fmt.Printf("  %s%-40s %s#%s%s\n", indent, h.Title, Cyan, anchors[i], Reset)
	}
	fmt.Println()
}
