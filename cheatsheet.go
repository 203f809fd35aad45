// Package toclint ships a Markdown cheatsheet and the tooling that keeps
// its table of contents honest.
package toclint

import _ "embed"

// CheatsheetPath is where the bundled document lives in the repository.
const CheatsheetPath = "docs/pico8-lua-cheatsheet.md"

// Cheatsheet is the bundled PICO-8 Lua reference document. The CLI
// validates it when invoked with no file arguments.
//
//go:embed docs/pico8-lua-cheatsheet.md
var Cheatsheet []byte
