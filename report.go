package chartcheck

import (
	"encoding/json"
	"fmt"
	"io"
)

// Report is the outcome of one validation pass. Failures holds every
// diagnostic in detection order and is never deduplicated.
type Report struct {
	Failures   []string `json:"failures"`
	ChartsSeen int      `json:"chartsSeen"`
}

// OK reports whether the pass recorded no failures.
func (r *Report) OK() bool { return len(r.Failures) == 0 }

func (r *Report) add(failure string) {
	r.Failures = append(r.Failures, failure)
}

func (r *Report) addf(format string, args ...any) {
	r.add(fmt.Sprintf(format, args...))
}

// WriteText writes the human-readable verdict: a single success line, or a
// failure header followed by one indented bullet per diagnostic.
func (r *Report) WriteText(w io.Writer) {
	if r.OK() {
		fmt.Fprintln(w, "OK: all chart assets validated")
		return
	}
	fmt.Fprintf(w, "FAIL: chart asset validation found %d issue(s):\n", len(r.Failures))
	for _, failure := range r.Failures {
		fmt.Fprintf(w, "  - %s\n", failure)
	}
}

// WriteJSON writes the report as indented JSON for machine consumption.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
