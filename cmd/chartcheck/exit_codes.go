package main

import "errors"

// Exit codes for the chartcheck CLI, Unix-style.
// Both structural and accumulated validation failures exit 1 so build
// pipelines see a single pass/fail signal.
const (
	ExitSuccess = 0 // Validation passed
	ExitFailure = 1 // Fatal or accumulated validation failure
	ExitUsage   = 2 // Invalid flags or arguments
)

// exitCodeFor returns the process exit code for an error.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return ExitFailure
	}
}
