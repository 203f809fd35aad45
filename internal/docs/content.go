package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with toclint",
		Content: topicQuickstart,
	},
	{
		Name:    "anchors",
		Title:   "Anchor Rules",
		Summary: "How heading titles become anchors",
		Content: topicAnchors,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "Config file schema, fields, and defaults",
		Content: topicConfig,
	},
	{
		Name:    "toc",
		Title:   "Table of Contents",
		Summary: "Generating and rewriting the TOC section",
		Content: topicTOC,
	},
}

const topicQuickstart = `Quick Start
===========

toclint validates the table of contents of a Markdown document: every
entry must link to an anchor that matches exactly one heading.

1. Check the bundled cheatsheet:

    toclint check

2. Check your own documents:

    toclint check README.md docs/guide.md

3. See what anchor each heading gets:

    toclint anchors docs/guide.md

4. Regenerate a stale table of contents:

    toclint toc docs/guide.md --write

CLI Commands
------------

  toclint check [file...]       Validate table-of-contents anchors
  toclint check --json          Emit the report as JSON
  toclint anchors [file]        List headings with derived anchors
  toclint toc [file]            Print a freshly generated TOC
  toclint toc [file] --write    Rewrite the TOC section in place
  toclint init                  Scaffold .toclint.yaml and a starter doc
  toclint docs                  List documentation topics
  toclint docs <topic>          Show a documentation topic

check exits nonzero if any entry is dangling or ambiguous.
`

const topicAnchors = `Anchor Rules
============

A heading's anchor is derived from its title:

  1. Lowercase the title.
  2. Drop every character that is not a letter, digit, hyphen, or space.
  3. Replace spaces with hyphens.

Examples:

  ## If Statements           ->  #if-statements
  ### Arrays (1-indexed!)    ->  #arrays-1-indexed

Duplicates
----------

When several headings reduce to the same base slug, each occurrence is
suffixed in document order: base-1, base-2, and so on. The bare form no
longer names any single heading, so a table-of-contents entry targeting
it is reported as an ambiguous anchor.

Failure Kinds
-------------

  dangling    No heading matches the entry's anchor.
  ambiguous   The anchor is a base slug shared by several headings.

These are the only two ways an entry can fail.
`

const topicConfig = `Configuration Reference
=======================

toclint looks for .toclint.yaml, walking up from the current directory.
All fields are optional; without a config file the bundled cheatsheet is
checked with defaults.

Fields
------

  files               list    Markdown files to check when no arguments
                              are given. Default: the bundled cheatsheet.
  toc-heading         string  Title of the table-of-contents section.
                              Default: "Table of Contents".
  require-fence-lang  bool    Fail when a fenced code block has no
                              language tag. Default: false (warn only).
  ignore-anchors      list    Anchors exempt from resolution, with or
                              without the leading #.

Example Config
--------------

  files:
    - README.md
    - docs/pico8-lua-cheatsheet.md

  toc-heading: Contents
  require-fence-lang: true

  ignore-anchors:
    - license
`

const topicTOC = `Table of Contents
=================

The table-of-contents section is the part of the document under the
heading named by toc-heading (default "Table of Contents"). Every
fragment link in that section is an entry; each entry must resolve to
exactly one heading.

Generation
----------

toclint toc derives a fresh TOC from the document's headings: one list
item per heading of level 2 or deeper, indented two spaces per extra
level, skipping the TOC heading itself. Level-1 headings are treated as
the document title and left out.

Rewriting
---------

toclint toc <file> --write replaces everything between the TOC heading
and the next heading with the generated list. The file is written
atomically: a crash mid-write never leaves a truncated document. Code
fences are tracked while scanning, so a # inside a code block is never
mistaken for a heading boundary.

The bundled cheatsheet is compiled into the binary and cannot be
rewritten; pass a file path.
`
