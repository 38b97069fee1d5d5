package chartcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const indexFileName = "index.html"

// placeholderSrc is the 1x1 transparent GIF every chart image must carry as
// its visible src; the real chart bytes live in the data-chart-src asset and
// are swapped in by the page's lazy loader.
const placeholderSrc = "data:image/gif;base64,R0lGODlhAQABAIAAAAAAAP///ywAAAAAAQABAAACAUwAOw=="

// Validator runs the chart asset checks against one project root.
type Validator struct {
	expectations *Expectations
}

// New creates a Validator. A nil expectations value selects the built-in
// table.
func New(expectations *Expectations) (*Validator, error) {
	if expectations == nil {
		var err error
		expectations, err = DefaultExpectations()
		if err != nil {
			return nil, err
		}
	}
	return &Validator{expectations: expectations}, nil
}

// ValidateDir validates index.html under root and the asset files it
// references. Structural problems (missing document, wrong chart tag count)
// are returned as errors with no report; every other violation accumulates
// into the report so one run surfaces the complete defect list.
func ValidateDir(root string) (*Report, error) {
	v, err := New(nil)
	if err != nil {
		return nil, err
	}
	return v.ValidateDir(root)
}

// ValidateDir runs one validation pass against root. An empty root means
// the current working directory.
func (v *Validator) ValidateDir(root string) (*Report, error) {
	if root == "" {
		root = "."
	}

	indexPath := filepath.Join(root, indexFileName)
	html, err := os.ReadFile(indexPath) // #nosec G304 -- root is caller-provided by design
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, indexPath)
		}
		return nil, fmt.Errorf("reading %s: %w", indexPath, err)
	}

	tags := findChartTags(string(html))
	if len(tags) != v.expectations.Len() {
		return nil, fmt.Errorf("%w: found %d, want %d", ErrChartTagCount, len(tags), v.expectations.Len())
	}

	report := &Report{Failures: []string{}}
	seen := make(map[string]bool, v.expectations.Len())
	for _, tag := range tags {
		v.checkTag(root, tag, seen, report)
	}

	// Expectation rows never matched by any tag.
	if len(seen) < v.expectations.Len() {
		missing := make([]string, 0, v.expectations.Len())
		for _, caption := range v.expectations.Captions() {
			if !seen[caption] {
				missing = append(missing, caption)
			}
		}
		report.addf("missing expected chart captions: %s", strings.Join(missing, ", "))
	}

	report.ChartsSeen = len(seen)
	return report, nil
}

// checkTag validates one chart fragment. Violations append to the report;
// only caption-level problems (missing, duplicate, or unknown alt) skip the
// remaining checks for the tag, since no expectation row applies.
func (v *Validator) checkTag(root string, tag ChartTag, seen map[string]bool, report *Report) {
	if !tag.Alt.Present {
		report.addf("chart image has no alt attribute: %s", tag.Raw)
		return
	}

	caption := strings.ToLower(tag.Alt.Value)
	if seen[caption] {
		report.addf("duplicate chart caption %q", caption)
		return
	}
	expected, ok := v.expectations.Lookup(caption)
	if !ok {
		report.addf("unexpected chart caption %q", caption)
		return
	}
	// Mark seen before the remaining checks so duplicate and missing
	// accounting stays correct even when this tag fails below.
	seen[caption] = true

	if !tag.Src.Present || tag.Src.Value != placeholderSrc {
		report.addf("%q: src is not the placeholder data URI", caption)
	}

	if !tag.DataSrc.Present {
		report.addf("%q: data-chart-src attribute missing", caption)
	} else if got := strings.TrimPrefix(tag.DataSrc.Value, "./"); got != expected.DataPath {
		report.addf("%q: data-chart-src = %q, want %q", caption, tag.DataSrc.Value, expected.DataPath)
	} else {
		for _, failure := range checkAsset(root, expected.DataPath, caption) {
			report.add(failure)
		}
	}

	if !tag.Loading.Present {
		report.addf("%q: loading attribute missing, want %q", caption, "lazy")
	} else if tag.Loading.Value != "lazy" {
		report.addf("%q: loading = %q, want %q", caption, tag.Loading.Value, "lazy")
	}

	if !tag.Decoding.Present {
		report.addf("%q: decoding attribute missing", caption)
	} else if !strings.EqualFold(tag.Decoding.Value, "async") {
		report.addf("%q: decoding = %q, want %q", caption, tag.Decoding.Value, "async")
	}

	if !tag.Width.Present || tag.Width.Value != expected.Width {
		report.addf("%q: width = %q, want %q", caption, tag.Width.Value, expected.Width)
	}
	if !tag.Height.Present || tag.Height.Value != expected.Height {
		report.addf("%q: height = %q, want %q", caption, tag.Height.Value, expected.Height)
	}
}
