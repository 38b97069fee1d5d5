package chartcheck

import "errors"

// Sentinel errors for structural validation failures. These abort the run
// before per-image checks; everything else accumulates into the Report.
var (
	ErrIndexNotFound = errors.New("index.html not found")
	ErrChartTagCount = errors.New("unexpected number of chart tags")
	ErrBadManifest   = errors.New("invalid chart manifest")
)
