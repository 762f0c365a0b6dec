package suite

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// The canonical YAML form renders each sum variant back into the surface
// shape it was decoded from: a plain scalar for a single file, a sequence
// for a file list, a literal block for an inline definition and a mapping
// (keys sorted) for metadata selection.

func (t SingleFile) MarshalYAML() (any, error) { return t.Path, nil }

func (t FileList) MarshalYAML() (any, error) { return t.Paths, nil }

func (t InlineDefinition) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.LiteralStyle, Value: t.Text}, nil
}

func (t MetadataMap) MarshalYAML() (any, error) {
	keys := make([]string, 0, len(t.Attrs))
	for k := range t.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Value: t.Attrs[k]},
		)
	}
	return n, nil
}

func (f XfailFlag) MarshalYAML() (any, error) { return bool(f), nil }

func (r XfailReason) MarshalYAML() (any, error) { return string(r), nil }

// MarshalYAML renders only the failing directions; a direction that is not
// expected to fail stays out of the canonical form.
func (d XfailDirectional) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	if d.Forward {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "forward"},
			&yaml.Node{Kind: yaml.ScalarNode, Value: "true"},
		)
	}
	if d.Backward {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "backward"},
			&yaml.Node{Kind: yaml.ScalarNode, Value: "true"},
		)
	}
	return n, nil
}
