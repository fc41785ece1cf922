// Command mc is the mini-C compiler driver: it wires together the lexer,
// parser, lowering pass, and IR builder the way chai's bootstrap/cmd.driver
// wires together its own compiler phases, scaled down to mini-C's single
// translation unit.
package main

import (
	"bufio"
	"fmt"
	"os"

	"mc/internal/ast"
	"mc/internal/config"
	"mc/internal/irgen"
	"mc/internal/lexer"
	"mc/internal/lower"
	"mc/internal/parser"
	"mc/internal/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseArgs(os.Args[1:])
	rep := report.New()

	profile, err := config.Load(opts.sourcePath, opts.configPath)
	if err != nil {
		rep.Error(fmt.Errorf("loading build profile: %w", err))
		return 1
	}
	if opts.outPath != "" {
		profile.Out = opts.outPath
	}
	if opts.logLevel != "" {
		profile.LogLevel = opts.logLevel
	}

	src, err := os.Open(opts.sourcePath)
	if err != nil {
		rep.Error(fmt.Errorf("opening %s: %w", opts.sourcePath, err))
		return 1
	}
	defer src.Close()

	rep.BeginPhase("Lexing and parsing")
	buf, err := lexer.NewBuffer(lexer.New(bufio.NewReader(src)))
	if err != nil {
		rep.EndPhase(false)
		rep.Error(err)
		return 1
	}

	root, err := parser.New(buf).Parse()
	if err != nil {
		rep.EndPhase(false)
		rep.Error(err)
		return 1
	}
	rep.EndPhase(true)

	if profile.LogLevel != "silent" {
		ast.Print(os.Stdout, root)
	}

	rep.BeginPhase("Lowering")
	mod := irgen.NewModule()
	if err := lower.New(mod, rep).Lower(root); err != nil {
		rep.EndPhase(false)
		rep.Error(err)
		return 1
	}
	rep.EndPhase(true)

	if profile.WarningsAsErrs && rep.WarningCount() > 0 {
		rep.Error(fmt.Errorf("%d warning(s) promoted to errors", rep.WarningCount()))
		return 1
	}

	ir := mod.Print()

	if profile.LogLevel != "silent" {
		fmt.Fprintln(os.Stderr, "Parsing Finished")
		fmt.Fprint(os.Stderr, ir)
	}

	out, err := os.Create(profile.Out)
	if err != nil {
		rep.Error(fmt.Errorf("writing %s: %w", profile.Out, err))
		return 1
	}
	defer out.Close()

	if _, err := out.WriteString(ir); err != nil {
		rep.Error(fmt.Errorf("writing %s: %w", profile.Out, err))
		return 1
	}

	rep.Summary()
	return 0
}
