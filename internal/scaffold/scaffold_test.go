package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"toclint/internal/check"
)

func TestInit_CreatesFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	for _, f := range []string{".toclint.yaml", filepath.Join("docs", "example.md")} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("%s not created: %v", f, err)
		}
	}
}

func TestInit_RefusesExistingConfig(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("first Init error: %v", err)
	}
	if err := Init(dir); err == nil {
		t.Fatal("second Init should fail")
	}
}

func TestInit_StarterDocumentPassesCheck(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	src, err := os.ReadFile(filepath.Join(dir, "docs", "example.md"))
	if err != nil {
		t.Fatal(err)
	}
	fr, err := check.File(check.Input{Path: "example.md", Source: src}, check.Options{})
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if !fr.OK() {
		t.Fatalf("starter document fails its own lint: %+v", fr)
	}
}
