package suite

import (
	json "github.com/goccy/go-json"
)

// JSON mirrors the YAML rendition shape for shape: scalars, sequences and
// objects per variant. goccy/go-json sorts map keys, which keeps the
// metadata variant deterministic.

func (t SingleFile) MarshalJSON() ([]byte, error) { return json.Marshal(t.Path) }

func (t FileList) MarshalJSON() ([]byte, error) { return json.Marshal(t.Paths) }

func (t InlineDefinition) MarshalJSON() ([]byte, error) { return json.Marshal(t.Text) }

func (t MetadataMap) MarshalJSON() ([]byte, error) { return json.Marshal(t.Attrs) }

func (f XfailFlag) MarshalJSON() ([]byte, error) { return json.Marshal(bool(f)) }

func (r XfailReason) MarshalJSON() ([]byte, error) { return json.Marshal(string(r)) }

func (d XfailDirectional) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Forward  bool `json:"forward,omitempty"`
		Backward bool `json:"backward,omitempty"`
	}{Forward: d.Forward, Backward: d.Backward})
}

// MarshalJSON drops the xfail marker when it is canonically absent, matching
// the YAML encoder's IsZeroer-driven omission.
func (t TestCase) MarshalJSON() ([]byte, error) {
	type testCase TestCase
	c := testCase(t)
	if c.Xfail != nil && c.Xfail.IsZero() {
		c.Xfail = nil
	}
	return json.Marshal(c)
}
