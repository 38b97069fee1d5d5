package chartcheck

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/alnah/go-chartcheck/internal/yamlutil"
)

//go:embed expectations.yaml
var manifestYAML []byte

// manifest is the on-disk shape of the embedded expectation table.
type manifest struct {
	Charts []ExpectedChart `yaml:"charts"`
}

// Expectations is an immutable, ordered set of expected charts keyed by
// normalized caption. Build one with NewExpectations or DefaultExpectations.
type Expectations struct {
	charts    []ExpectedChart
	byCaption map[string]ExpectedChart
}

// DefaultExpectations returns the built-in expectation table, parsed from
// the embedded manifest.
func DefaultExpectations() (*Expectations, error) {
	var m manifest
	if err := yamlutil.UnmarshalStrict(manifestYAML, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadManifest, err)
	}
	return NewExpectations(m.Charts)
}

// NewExpectations builds an expectation set from rows. Captions are
// normalized to lower case; duplicate or incomplete rows are rejected.
func NewExpectations(charts []ExpectedChart) (*Expectations, error) {
	if len(charts) == 0 {
		return nil, fmt.Errorf("%w: no charts defined", ErrBadManifest)
	}

	e := &Expectations{
		charts:    make([]ExpectedChart, 0, len(charts)),
		byCaption: make(map[string]ExpectedChart, len(charts)),
	}
	for i, c := range charts {
		caption := strings.ToLower(strings.TrimSpace(c.Caption))
		if caption == "" {
			return nil, fmt.Errorf("%w: chart %d has an empty caption", ErrBadManifest, i)
		}
		if _, dup := e.byCaption[caption]; dup {
			return nil, fmt.Errorf("%w: duplicate caption %q", ErrBadManifest, caption)
		}
		if c.DataPath == "" || c.Width == "" || c.Height == "" {
			return nil, fmt.Errorf("%w: caption %q is missing dataPath, width, or height", ErrBadManifest, caption)
		}
		c.Caption = caption
		e.charts = append(e.charts, c)
		e.byCaption[caption] = c
	}
	return e, nil
}

// Len returns the number of expected charts.
func (e *Expectations) Len() int { return len(e.charts) }

// Lookup returns the row for a normalized caption.
func (e *Expectations) Lookup(caption string) (ExpectedChart, bool) {
	c, ok := e.byCaption[caption]
	return c, ok
}

// Captions returns the expected captions in manifest order.
func (e *Expectations) Captions() []string {
	captions := make([]string, len(e.charts))
	for i, c := range e.charts {
		captions[i] = c.Caption
	}
	return captions
}
