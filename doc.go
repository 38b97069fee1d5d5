// Package chartcheck validates that a generated HTML page embeds its chart
// images as inlined base64 PNG assets with the expected presentation
// attributes.
//
// # Quick Start
//
// Validate a project directory containing index.html and its chart assets:
//
//	report, err := chartcheck.ValidateDir(".")
//	if err != nil {
//	    log.Fatal(err) // structural problem, nothing else was checked
//	}
//	if !report.OK() {
//	    report.WriteText(os.Stderr)
//	    os.Exit(1)
//	}
//
// # Validation Model
//
// The page must contain exactly three <figure> elements, each immediately
// wrapping an <img class="chart"> tag. Every chart image is checked against
// a fixed expectation table keyed by its alt text:
//
//  1. src holds the 1x1 transparent GIF placeholder data URI
//  2. data-chart-src names the expected base64 asset file
//  3. the asset file exists, decodes as base64, and starts with the PNG
//     file signature
//  4. loading="lazy", decoding="async", and exact width/height strings
//
// Two failure tiers exist. A missing index.html or a wrong chart tag count
// is structural: ValidateDir returns an error and no report. Everything
// else accumulates into Report.Failures so one run surfaces the complete
// defect list.
//
// # Expectation Table
//
// The table is compiled into the binary (an embedded manifest parsed once
// at startup) and is not externally configurable. Construct a custom
// Expectations value and pass it to New to validate against different
// charts programmatically.
package chartcheck
