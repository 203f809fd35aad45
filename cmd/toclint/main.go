package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"

	"toclint"
	"toclint/internal/check"
	"toclint/internal/config"
	"toclint/internal/docs"
	"toclint/internal/document"
	"toclint/internal/scaffold"
	"toclint/internal/toc"
	"toclint/internal/ux"
)

func main() {
	app := &cli.Command{
		Name:        "toclint",
		Usage:       "Markdown table-of-contents validator",
		Description: "Run 'toclint docs' for documentation on anchor rules, config, and the toc command.",
		Commands: []*cli.Command{
			checkCmd(),
			anchorsCmd(),
			tocCmd(),
			initCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate table-of-contents anchors",
		ArgsUsage: "[file...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Emit the report as JSON"},
			&cli.BoolFlag{Name: "require-fence-lang", Usage: "Fail on fenced code blocks without a language tag"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			inputs, err := resolveInputs(cmd.Args().Slice(), cfg)
			if err != nil {
				return err
			}

			opts := check.Options{
				TOCHeading:       cfg.TOCHeading,
				RequireFenceLang: cfg.RequireFenceLang || cmd.Bool("require-fence-lang"),
				IgnoreAnchors:    cfg.IgnoreAnchors,
			}
			report, err := check.Run(inputs, opts)
			if err != nil {
				return err
			}

			if cmd.Bool("json") {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				ux.RenderReport(report)
			}

			if !report.OK() {
				return fmt.Errorf("%d check(s) failed", report.Failed())
			}
			return nil
		},
	}
}

func anchorsCmd() *cli.Command {
	return &cli.Command{
		Name:      "anchors",
		Usage:     "List headings with their derived anchors",
		ArgsUsage: "[file]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			doc, err := loadDocument(cmd.Args().First())
			if err != nil {
				return err
			}
			ix := toc.NewIndex(doc.Headings)
			ux.RenderAnchors(doc, ix.Anchors())
			return nil
		},
	}
}

func tocCmd() *cli.Command {
	return &cli.Command{
		Name:      "toc",
		Usage:     "Print or rewrite the table-of-contents section",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "write", Usage: "Rewrite the TOC section in place"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			path := cmd.Args().First()
			doc, err := loadDocument(path)
			if err != nil {
				return err
			}

			if !cmd.Bool("write") {
				fmt.Print(toc.Generate(doc, cfg.TOCHeading))
				return nil
			}

			if path == "" {
				return fmt.Errorf("the bundled document cannot be rewritten; pass a file path")
			}
			rewritten, err := toc.Rewrite(doc.Source, doc, cfg.TOCHeading)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := toc.WriteFile(path, rewritten, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Printf("%s✓ rewrote %s section of %s%s\n", ux.Green, cfg.TOCHeading, path, ux.Reset)
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Scaffold a .toclint.yaml and a starter document",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'toclint docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

// loadConfig finds and loads .toclint.yaml, walking up from cwd. Returns the
// defaults when no config file exists.
func loadConfig() (*config.Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	for {
		path := filepath.Join(dir, config.FileName)
		if _, err := os.Stat(path); err == nil {
			return config.Load(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return config.Default(), nil
		}
		dir = parent
	}
}

// resolveInputs turns CLI arguments (or, failing that, the config's files,
// or the bundled cheatsheet) into check inputs.
func resolveInputs(args []string, cfg *config.Config) ([]check.Input, error) {
	paths := args
	if len(paths) == 0 {
		paths = cfg.Files
	}
	if len(paths) == 0 {
		return []check.Input{{Path: toclint.CheatsheetPath, Source: toclint.Cheatsheet}}, nil
	}

	inputs := make([]check.Input, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		inputs = append(inputs, check.Input{Path: p, Source: data})
	}
	return inputs, nil
}

// loadDocument parses the named file, or the bundled cheatsheet when path
// is empty.
func loadDocument(path string) (*document.Document, error) {
	if path == "" {
		return document.Parse(toclint.CheatsheetPath, toclint.Cheatsheet)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return document.Parse(path, data)
}
