package reporter

import "strings"

// Defaults for the reporter configuration.
const (
	DefaultOutputPath          = "test-results.xml"
	DefaultSuiteTitleSeparator = " "
	DefaultRootSuiteTitle      = "Root Suite"
	DefaultTestsuitesTitle     = "Mocha Tests"
)

// Hash styles usable for the [hash] output path token.
const (
	HashStyleHex   = "hex"
	HashStyleHuman = "human"
)

// Options is the configuration surface of the reporter, resolved once at
// construction time.
type Options struct {
	// OutputPath is the destination file template. It may contain the [hash]
	// token, replaced by a digest of the rendered content. An empty path
	// disables file output.
	OutputPath string `mapstructure:"output_path"`

	// Properties adds a <properties> block to every testsuite, rendered in
	// sorted key order.
	Properties map[string]string `mapstructure:"properties"`

	// Echo additionally prints the rendered XML to standard output.
	Echo bool `mapstructure:"echo"`

	// SwitchClassnameAndName swaps the name and classname testcase
	// attributes, a compatibility toggle for differing JUnit consumers.
	SwitchClassnameAndName bool `mapstructure:"switch_classname_and_name"`

	// UseFullSuiteTitle names testsuites with the full ancestor path joined
	// by SuiteTitleSeparator instead of the run's own title.
	UseFullSuiteTitle   bool   `mapstructure:"use_full_suite_title"`
	SuiteTitleSeparator string `mapstructure:"suite_title_separator"`

	// RootSuiteTitle is substituted for the anonymous top-level suite.
	RootSuiteTitle string `mapstructure:"root_suite_title"`

	// TestsuitesTitle is the name attribute of the <testsuites> root.
	TestsuitesTitle string `mapstructure:"testsuites_title"`

	// HashStyle selects the rendering of the [hash] token: "hex" (sha-256
	// digest, the default) or "human" (humanized digest).
	HashStyle string `mapstructure:"hash_style"`
}

// DefaultOptions returns the reporter defaults.
func DefaultOptions() Options {
	return Options{
		OutputPath:          DefaultOutputPath,
		SuiteTitleSeparator: DefaultSuiteTitleSeparator,
		RootSuiteTitle:      DefaultRootSuiteTitle,
		TestsuitesTitle:     DefaultTestsuitesTitle,
		HashStyle:           HashStyleHex,
	}
}

// ParseProperties parses a "key1:value1,key2:value2" string, the form
// accepted from the environment, into a properties map. A pair without a
// colon yields an empty value. An empty input yields no properties at all.
func ParseProperties(raw string) map[string]string {
	if raw == "" {
		return nil
	}

	const splitLimit = 2

	properties := map[string]string{}
	for _, pair := range strings.Split(raw, ",") {
		if pair == "" {
			continue
		}

		kv := strings.SplitN(pair, ":", splitLimit)
		if len(kv) == 1 {
			properties[kv[0]] = ""
		} else {
			properties[kv[0]] = kv[1]
		}
	}

	return properties
}
