// Package report prints colored diagnostics and phase spinners to the
// console, grounded on the teacher's pterm-based console display. mini-C
// has no source-selection carets (the compiler aborts on the first error
// rather than collecting several against a source window), so this package
// is a smaller tag-plus-message variant of that display.
package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errorColorFG = pterm.FgRed
	warnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	warnColorFG  = pterm.FgYellow
	infoColorFG  = pterm.FgLightGreen
)

// Reporter accumulates warning/error counts for a single compilation run and
// prints each diagnostic as it is raised.
type Reporter struct {
	warnings int
	errors   int
}

// New creates an empty Reporter.
func New() *Reporter {
	return &Reporter{}
}

// Error prints a fatal compiler error and records it.
func (r *Reporter) Error(err error) {
	r.errors++
	errorStyleBG.Print("Error")
	errorColorFG.Println(" " + err.Error())
}

// Warn prints a non-fatal warning (e.g. an implicit conversion) and
// records it. Warnings never alter the emitted IR.
func (r *Reporter) Warn(format string, args ...interface{}) {
	r.warnings++
	warnStyleBG.Print("Warning")
	warnColorFG.Println(" " + fmt.Sprintf(format, args...))
}

// Info prints an informational status line.
func (r *Reporter) Info(msg string) {
	infoColorFG.Println(msg)
}

// WarningCount returns the number of warnings raised so far.
func (r *Reporter) WarningCount() int {
	return r.warnings
}

// -----------------------------------------------------------------------------
// phase spinners

var (
	phaseSpinner *pterm.SpinnerPrinter
	currentPhase string
)

// BeginPhase starts a spinner labeled with the name of a compilation phase
// (e.g. "Parsing", "Lowering").
func (r *Reporter) BeginPhase(phase string) {
	currentPhase = phase
	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(infoColorFG))
	phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack), Text: "Done"},
	}
	phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: errorStyleBG, Text: "Fail"},
	}
	phaseSpinner.Start(phase + "...")
}

// EndPhase stops the active spinner, reporting success or failure.
func (r *Reporter) EndPhase(success bool) {
	if phaseSpinner == nil {
		return
	}
	if success {
		phaseSpinner.Success(currentPhase)
	} else {
		phaseSpinner.Fail(currentPhase)
	}
	phaseSpinner = nil
}

// Summary prints the final error/warning tally.
func (r *Reporter) Summary() {
	fmt.Print("\n")
	if r.errors == 0 {
		pterm.FgLightGreen.Print("Compilation finished ")
	} else {
		errorColorFG.Print("Compilation failed ")
	}
	fmt.Print("(")
	if r.errors == 0 {
		pterm.FgLightGreen.Print(0)
	} else {
		errorColorFG.Print(r.errors)
	}
	fmt.Print(" errors, ")
	if r.warnings == 0 {
		pterm.FgLightGreen.Print(0)
	} else {
		warnColorFG.Print(r.warnings)
	}
	fmt.Println(" warnings)")
}
