// Package check runs toclint's validations over one or more Markdown
// documents and collects the outcome into a Report.
package check

import (
	"fmt"

	"github.com/google/uuid"

	"toclint/internal/document"
	"toclint/internal/slug"
	"toclint/internal/toc"
)

// Options controls what a run validates.
type Options struct {
	TOCHeading       string   // section title marking the table of contents
	RequireFenceLang bool     // promote missing fence language tags to failures
	IgnoreAnchors    []string // anchors exempt from resolution
}

// Input is one document to validate.
type Input struct {
	Path   string
	Source []byte
}

// Warning kinds reported alongside anchor resolution.
const (
	WarnFenceLang        = "fence-lang"
	WarnDuplicateHeading = "duplicate-heading"
	WarnNoTOC            = "no-toc"
)

// Warning is a non-anchor finding. Warnings never fail a run unless promoted
// by Options (RequireFenceLang).
type Warning struct {
	Kind    string `json:"kind"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
	Fatal   bool   `json:"fatal,omitempty"`
}

// FileReport is the outcome for a single document.
type FileReport struct {
	Path     string       `json:"path"`
	Results  []toc.Result `json:"results"`
	Warnings []Warning    `json:"warnings,omitempty"`
	Failed   int          `json:"failed"`
}

// OK reports whether the document passed.
func (fr *FileReport) OK() bool { return fr.Failed == 0 }

// Report is the outcome of a whole run.
type Report struct {
	RunID string       `json:"run_id"`
	Files []FileReport `json:"files"`
}

// OK reports whether every document passed: each table-of-contents entry
// resolved to exactly one heading and no warning was promoted to a failure.
func (r *Report) OK() bool {
	for i := range r.Files {
		if !r.Files[i].OK() {
			return false
		}
	}
	return true
}

// Failed returns the total failure count across all documents.
func (r *Report) Failed() int {
	n := 0
	for i := range r.Files {
		n += r.Files[i].Failed
	}
	return n
}

// Run validates every input and returns the combined report. The check is
// pure and read-only: it never modifies the inputs.
func Run(inputs []Input, opts Options) (*Report, error) {
	if opts.TOCHeading == "" {
		opts.TOCHeading = toc.DefaultHeading
	}

	report := &Report{RunID: uuid.NewString()}
	for _, in := range inputs {
		fr, err := File(in, opts)
		if err != nil {
			return nil, err
		}
		report.Files = append(report.Files, fr)
	}
	return report, nil
}

// File validates a single document.
func File(in Input, opts Options) (FileReport, error) {
	if opts.TOCHeading == "" {
		opts.TOCHeading = toc.DefaultHeading
	}

	doc, err := document.Parse(in.Path, in.Source)
	if err != nil {
		return FileReport{}, err
	}

	fr := FileReport{Path: in.Path}

	entries := toc.Extract(doc, opts.TOCHeading)
	if entries == nil {
		fr.Warnings = append(fr.Warnings, Warning{
			Kind:    WarnNoTOC,
			Message: fmt.Sprintf("no table-of-contents entries found under a %q heading", opts.TOCHeading),
		})
	}

	ix := toc.NewIndex(doc.Headings)
	fr.Results = toc.Resolve(entries, ix, opts.IgnoreAnchors)
	for _, r := range fr.Results {
		if r.Status == toc.StatusDangling || r.Status == toc.StatusAmbiguous {
			fr.Failed++
		}
	}

	fr.Warnings = append(fr.Warnings, fenceWarnings(doc, opts.RequireFenceLang)...)
	fr.Warnings = append(fr.Warnings, duplicateWarnings(doc)...)
	for _, w := range fr.Warnings {
		if w.Fatal {
			fr.Failed++
		}
	}

	return fr, nil
}

func fenceWarnings(doc *document.Document, fatal bool) []Warning {
	var warnings []Warning
	for _, cb := range doc.CodeBlocks {
		if cb.Lang != "" {
			continue
		}
		warnings = append(warnings, Warning{
			Kind:    WarnFenceLang,
			Line:    cb.Line,
			Message: "fenced code block has no language tag",
			Fatal:   fatal,
		})
	}
	return warnings
}

// duplicateWarnings flags heading titles that collide on the same base slug.
// The collision is not itself a failure, but every bare anchor pointing at it
// will be.
func duplicateWarnings(doc *document.Document) []Warning {
	collided := slug.Collisions(doc.HeadingTitles())
	if len(collided) == 0 {
		return nil
	}

	var warnings []Warning
	seen := make(map[string]bool)
	for _, h := range doc.Headings {
		base := slug.Slugify(h.Title)
		if !collided[base] || seen[base] {
			continue
		}
		seen[base] = true
		warnings = append(warnings, Warning{
			Kind:    WarnDuplicateHeading,
			Line:    h.Line,
			Message: fmt.Sprintf("multiple headings share the anchor base %q; only the suffixed forms (%s-1, %s-2, ...) resolve", base, base, base),
		})
	}
	return warnings
}
