package main

import "testing"

func TestParseArgsSourceOnly(t *testing.T) {
	opts := parseArgs([]string{"prog.mc"})
	if opts.sourcePath != "prog.mc" {
		t.Errorf("sourcePath = %q, want prog.mc", opts.sourcePath)
	}
	if opts.configPath != "" || opts.outPath != "" || opts.logLevel != "" {
		t.Errorf("unexpected non-empty option: %+v", opts)
	}
}

func TestParseArgsWithOptions(t *testing.T) {
	opts := parseArgs([]string{"-out", "a.ll", "-loglevel", "warn", "-config", "mc.toml", "prog.mc"})
	if opts.sourcePath != "prog.mc" {
		t.Errorf("sourcePath = %q, want prog.mc", opts.sourcePath)
	}
	if opts.outPath != "a.ll" {
		t.Errorf("outPath = %q, want a.ll", opts.outPath)
	}
	if opts.logLevel != "warn" {
		t.Errorf("logLevel = %q, want warn", opts.logLevel)
	}
	if opts.configPath != "mc.toml" {
		t.Errorf("configPath = %q, want mc.toml", opts.configPath)
	}
}

func TestParseArgsPositionalCanComeFirst(t *testing.T) {
	opts := parseArgs([]string{"prog.mc", "-out", "b.ll"})
	if opts.sourcePath != "prog.mc" || opts.outPath != "b.ll" {
		t.Errorf("opts = %+v", opts)
	}
}
