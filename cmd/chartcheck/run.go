package main

import (
	"errors"
	"fmt"
	"io"

	chartcheck "github.com/alnah/go-chartcheck"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("invalid usage")
	ErrValidationFailed = errors.New("chart asset validation failed")
)

// run executes one validation pass and writes the verdict. The success line
// goes to stdout, diagnostics to stderr, JSON (when requested) to stdout.
func run(flags *cliFlags, stdout, stderr io.Writer) error {
	if flags.verbose {
		fmt.Fprintf(stderr, "Validating chart assets under %s\n", flags.root)
	}

	report, err := chartcheck.ValidateDir(flags.root)
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(stderr, "Recognized %d chart caption(s)\n", report.ChartsSeen)
	}

	if flags.jsonOut {
		if err := report.WriteJSON(stdout); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
	}

	if !report.OK() {
		if !flags.jsonOut {
			report.WriteText(stderr)
		}
		return fmt.Errorf("%w: %d issue(s)", ErrValidationFailed, len(report.Failures))
	}

	if !flags.jsonOut && !flags.quiet {
		report.WriteText(stdout)
	}
	return nil
}
