package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"toclint/internal/ux"
)

var configTemplate = `files:
  - docs/example.md

toc-heading: Table of Contents
require-fence-lang: false

# anchors that exist only on the rendered site, not in the document
ignore-anchors: []
`

var docTemplate = `---
title: Example Document
summary: A starter document with a valid table of contents
---

# Example Document

## Table of Contents

- [First Section](#first-section)
- [Second Section](#second-section)

## First Section

Some prose.

## Second Section

` + "```text\na fenced code block\n```" + `
`

// Init creates a .toclint.yaml and a starter document in targetDir.
func Init(targetDir string) error {
	configPath := filepath.Join(targetDir, ".toclint.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf(".toclint.yaml already exists in %s", targetDir)
	}

	docsDir := filepath.Join(targetDir, "docs")
	if err := os.MkdirAll(docsDir, 0755); err != nil {
		return fmt.Errorf("creating docs/: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing .toclint.yaml: %w", err)
	}

	docPath := filepath.Join(docsDir, "example.md")
	if err := os.WriteFile(docPath, []byte(docTemplate), 0644); err != nil {
		return fmt.Errorf("writing example.md: %w", err)
	}

	fmt.Printf("\n%s%s✓ Initialized toclint%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Printf("  Created:\n")
	fmt.Printf("    %s.toclint.yaml%s    — lint configuration\n", ux.Cyan, ux.Reset)
	fmt.Printf("    %sdocs/example.md%s  — starter document\n\n", ux.Cyan, ux.Reset)
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Point %sfiles%s in .toclint.yaml at your documents\n", ux.Cyan, ux.Reset)
	fmt.Printf("    2. Run %stoclint check%s\n\n", ux.Cyan, ux.Reset)

	return nil
}
