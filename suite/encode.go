package suite

import (
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// EncodeYAML writes suites to w in the canonical YAML form. An already
// validated model is always representable; errors only surface from w.
func EncodeYAML(w io.Writer, suites []TestSuite) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(suites); err != nil {
		return err
	}
	return enc.Close()
}

// EncodeJSON writes suites to w as indented JSON, the alternative canonical
// rendering.
func EncodeJSON(w io.Writer, suites []TestSuite) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(suites)
}
