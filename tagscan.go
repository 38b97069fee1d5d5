package chartcheck

import "regexp"

// Chart fragments are matched textually rather than structurally: the input
// is a small, locally-generated page, so targeted patterns over the raw
// markup are sufficient. The contract is defined over attribute values, not
// markup syntax.

// chartTagPattern matches a <figure> immediately wrapping an
// <img class="chart"> tag (whitespace only between them). Tag and attribute
// matching is case-insensitive.
var chartTagPattern = regexp.MustCompile(`(?is)<figure\b[^>]*>\s*<img\b[^>]*\sclass\s*=\s*(?:"chart"|'chart')[^>]*>`)

// attrPattern matches name="value" or name='value' inside a tag. The name
// must follow whitespace so src never matches inside data-chart-src.
func attrPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)\s` + regexp.QuoteMeta(name) + `\s*=\s*(?:"([^"]*)"|'([^']*)')`)
}

var (
	altPattern      = attrPattern("alt")
	srcPattern      = attrPattern("src")
	dataSrcPattern  = attrPattern("data-chart-src")
	loadingPattern  = attrPattern("loading")
	decodingPattern = attrPattern("decoding")
	widthPattern    = attrPattern("width")
	heightPattern   = attrPattern("height")
)

// findChartTags scans raw HTML for chart fragments in document order and
// extracts the attributes the validator checks.
func findChartTags(html string) []ChartTag {
	matches := chartTagPattern.FindAllString(html, -1)
	tags := make([]ChartTag, 0, len(matches))
	for _, raw := range matches {
		tags = append(tags, ChartTag{
			Raw:      raw,
			Alt:      extractAttr(raw, altPattern),
			Src:      extractAttr(raw, srcPattern),
			DataSrc:  extractAttr(raw, dataSrcPattern),
			Loading:  extractAttr(raw, loadingPattern),
			Decoding: extractAttr(raw, decodingPattern),
			Width:    extractAttr(raw, widthPattern),
			Height:   extractAttr(raw, heightPattern),
		})
	}
	return tags
}

// extractAttr returns the first occurrence of the attribute in the tag.
// Absence yields Present == false, never an error.
func extractAttr(tag string, pattern *regexp.Regexp) Attr {
	m := pattern.FindStringSubmatch(tag)
	if m == nil {
		return Attr{}
	}
	// Exactly one quote group participates; for an empty value both are "".
	value := m[1]
	if value == "" {
		value = m[2]
	}
	return Attr{Value: value, Present: true}
}
