package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "prog.mc")

	got, err := Load(srcPath, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != Default() {
		t.Errorf("got %+v, want default %+v", got, Default())
	}
}

func TestLoadSidecarFile(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "prog.mc")
	tomlPath := filepath.Join(dir, FileName)

	contents := `
out = "build/prog.ll"
log-level = "silent"
warnings-as-errors = true
`
	if err := os.WriteFile(tomlPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Load(srcPath, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Profile{Out: "build/prog.ll", LogLevel: "silent", WarningsAsErrs: true}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadExplicitPathMissingIsError(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "prog.mc")

	_, err := Load(srcPath, filepath.Join(dir, "nonexistent.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing explicit config path")
	}
}

func TestLoadPartialOverride(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "prog.mc")
	tomlPath := filepath.Join(dir, FileName)

	if err := os.WriteFile(tomlPath, []byte(`out = "x.ll"`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Load(srcPath, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Out != "x.ll" {
		t.Errorf("Out = %q, want x.ll", got.Out)
	}
	if got.LogLevel != Default().LogLevel {
		t.Errorf("LogLevel = %q, want default %q", got.LogLevel, Default().LogLevel)
	}
}
