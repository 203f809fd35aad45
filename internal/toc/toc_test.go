package toc

import (
	"testing"

	"toclint/internal/document"
)

const sample = `# Sample

## Table of Contents

- [One](#one)
- [Two](#two)

## One

body

## Two

body
`

func mustParse(t *testing.T, src string) *document.Document {
	t.Helper()
	doc, err := document.Parse("test.md", []byte(src))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return doc
}

func TestExtract_EntriesUnderTOCHeading(t *testing.T) {
	doc := mustParse(t, sample)
	entries := Extract(doc, DefaultHeading)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
	}
	if entries[0].Text != "One" || entries[0].Anchor != "one" {
		t.Errorf("entry 0 = %+v", entries[0])
	}
	if entries[1].Anchor != "two" {
		t.Errorf("entry 1 = %+v", entries[1])
	}
}

func TestExtract_IgnoresLinksOutsideTOCSection(t *testing.T) {
	src := "# T\n\n## Table of Contents\n\n- [One](#one)\n\n## One\n\nSee [Two](#two) and [site](https://example.com).\n\n## Two\n"
	doc := mustParse(t, src)
	entries := Extract(doc, DefaultHeading)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1: %+v", len(entries), entries)
	}
}

func TestExtract_NoTOCSection(t *testing.T) {
	doc := mustParse(t, "# T\n\n## One\n\nbody\n")
	if entries := Extract(doc, DefaultHeading); entries != nil {
		t.Fatalf("expected nil entries, got %+v", entries)
	}
}

func TestIndex_ResolveOK(t *testing.T) {
	doc := mustParse(t, sample)
	ix := NewIndex(doc.Headings)
	h, status := ix.Resolve("one")
	if status != StatusOK {
		t.Fatalf("status = %q, want ok", status)
	}
	if h.Title != "One" {
		t.Errorf("resolved heading = %q", h.Title)
	}
}

func TestIndex_ResolveDangling(t *testing.T) {
	doc := mustParse(t, sample)
	ix := NewIndex(doc.Headings)
	if _, status := ix.Resolve("non-existent-section"); status != StatusDangling {
		t.Fatalf("status = %q, want dangling", status)
	}
}

func TestIndex_CollidedBaseSlugIsAmbiguous(t *testing.T) {
	src := "# T\n\n## Setup\n\na\n\n## Setup\n\nb\n"
	doc := mustParse(t, src)
	ix := NewIndex(doc.Headings)

	if _, status := ix.Resolve("setup"); status != StatusAmbiguous {
		t.Fatalf("bare form: status = %q, want ambiguous", status)
	}
	if h, status := ix.Resolve("setup-1"); status != StatusOK || h.Title != "Setup" {
		t.Fatalf("setup-1: status = %q, heading = %q", status, h.Title)
	}
	if _, status := ix.Resolve("setup-2"); status != StatusOK {
		t.Fatalf("setup-2: status = %q, want ok", status)
	}
}

func TestResolve_PerEntryResults(t *testing.T) {
	doc := mustParse(t, "# T\n\n## Table of Contents\n\n- [One](#one)\n- [Gone](#non-existent-section)\n\n## One\n")
	entries := Extract(doc, DefaultHeading)
	results := Resolve(entries, NewIndex(doc.Headings), nil)
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Status != StatusOK || results[0].Heading != "One" {
		t.Errorf("result 0 = %+v", results[0])
	}
	if results[1].Status != StatusDangling {
		t.Errorf("result 1 = %+v", results[1])
	}
}

func TestResolve_IgnoredAnchors(t *testing.T) {
	doc := mustParse(t, "# T\n\n## Table of Contents\n\n- [License](#license)\n\n## One\n")
	entries := Extract(doc, DefaultHeading)
	results := Resolve(entries, NewIndex(doc.Headings), []string{"#license"})
	if results[0].Status != StatusIgnored {
		t.Fatalf("status = %q, want ignored", results[0].Status)
	}
}

func TestGenerate_SkipsTitleAndTOCHeading(t *testing.T) {
	doc := mustParse(t, sample)
	got := Generate(doc, DefaultHeading)
	want := "- [One](#one)\n- [Two](#two)\n"
	if got != want {
		t.Fatalf("Generate = %q, want %q", got, want)
	}
}

func TestGenerate_IndentsNestedHeadings(t *testing.T) {
	doc := mustParse(t, "# T\n\n## Parent\n\n### Child (deep!)\n")
	got := Generate(doc, DefaultHeading)
	want := "- [Parent](#parent)\n  - [Child (deep!)](#child-deep)\n"
	if got != want {
		t.Fatalf("Generate = %q, want %q", got, want)
	}
}

func TestGenerate_SuffixesCollidedAnchors(t *testing.T) {
	doc := mustParse(t, "# T\n\n## Setup\n\n## Setup\n")
	got := Generate(doc, DefaultHeading)
	want := "- [Setup](#setup-1)\n- [Setup](#setup-2)\n"
	if got != want {
		t.Fatalf("Generate = %q, want %q", got, want)
	}
}

func TestRewrite_RoundTripsCleanDocument(t *testing.T) {
	doc := mustParse(t, sample)
	got, err := Rewrite([]byte(sample), doc, DefaultHeading)
	if err != nil {
		t.Fatalf("Rewrite error: %v", err)
	}
	if string(got) != sample {
		t.Fatalf("round trip changed document:\n%s", got)
	}
}

func TestRewrite_ReplacesStaleEntries(t *testing.T) {
	stale := "# Sample\n\n## Table of Contents\n\n- [Gone](#gone)\n\n## One\n\nbody\n\n## Two\n\nbody\n"
	doc := mustParse(t, stale)
	got, err := Rewrite([]byte(stale), doc, DefaultHeading)
	if err != nil {
		t.Fatalf("Rewrite error: %v", err)
	}
	want := "# Sample\n\n## Table of Contents\n\n- [One](#one)\n- [Two](#two)\n\n## One\n\nbody\n\n## Two\n\nbody\n"
	if string(got) != want {
		t.Fatalf("Rewrite = %q, want %q", got, want)
	}
}

func TestRewrite_IgnoresHashInsideFences(t *testing.T) {
	src := "# Sample\n\n## Table of Contents\n\n- [One](#one)\n\n```sh\n# not a heading\n```\n\n## One\n\nbody\n"
	doc := mustParse(t, src)
	got, err := Rewrite([]byte(src), doc, DefaultHeading)
	if err != nil {
		t.Fatalf("Rewrite error: %v", err)
	}
	// The # line inside the fence must not end the section early; the whole
	// fence is part of the TOC section and is replaced along with it.
	if string(got) != "# Sample\n\n## Table of Contents\n\n- [One](#one)\n\n## One\n\nbody\n" {
		t.Fatalf("Rewrite = %q", got)
	}
}

func TestRewrite_NoTOCHeading(t *testing.T) {
	src := "# Sample\n\n## One\n"
	doc := mustParse(t, src)
	if _, err := Rewrite([]byte(src), doc, DefaultHeading); err == nil {
		t.Fatal("expected error for missing TOC heading")
	}
}
