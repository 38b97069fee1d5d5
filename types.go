package chartcheck

// ExpectedChart is one row of the expectation table: the asset file and
// presentation attributes a chart caption must resolve to.
type ExpectedChart struct {
	Caption  string `yaml:"caption"`  // normalized to lower case
	DataPath string `yaml:"dataPath"` // asset path relative to the project root
	Width    string `yaml:"width"`    // exact attribute string, no numeric coercion
	Height   string `yaml:"height"`   // exact attribute string, no numeric coercion
}

// Attr is one extracted HTML attribute value. Present distinguishes a
// missing attribute from one with an empty value.
type Attr struct {
	Value   string
	Present bool
}

// ChartTag is one discovered <figure><img class="chart"> fragment: the raw
// matched markup plus the attributes the checks care about.
type ChartTag struct {
	Raw      string
	Alt      Attr
	Src      Attr
	DataSrc  Attr
	Loading  Attr
	Decoding Attr
	Width    Attr
	Height   Attr
}
