package engine

import (
	"strconv"

	"github.com/brailletools/suitenorm/suite"
)

// decodeTable resolves the table field among its historical surface forms.
func (d *Decoder) decodeTable() (suite.TableReference, error) {
	if d.rev == RevisionMetadata {
		return d.decodeMetadataTable()
	}
	ev, err := next(d.src)
	if err != nil {
		return nil, err
	}
	switch ev.Kind {
	case KindMappingStart:
		return d.decodeTableMap()
	case KindScalar:
		switch ev.Style {
		case StylePlain:
			return suite.SingleFile{Path: ev.Value}, nil
		case StyleLiteral:
			return suite.InlineDefinition{Text: ev.Value}, nil
		default:
			return nil, errf(CodeUnsupportedTableShape, ev.Line,
				"table scalar must be plain (file path) or a literal block (inline definition)")
		}
	case KindSequenceStart:
		var paths []string
		for {
			ev, err := next(d.src)
			if err != nil {
				return nil, err
			}
			if ev.Kind == KindSequenceEnd {
				return suite.FileList{Paths: paths}, nil
			}
			if ev.Kind != KindScalar {
				return nil, errf(CodeStructuralMismatch, ev.Line,
					"expected a table file path or end of the table list, got %s", ev.Kind)
			}
			paths = append(paths, ev.Value)
		}
	default:
		return nil, errf(CodeUnsupportedTableShape, ev.Line,
			"cannot resolve a table reference from %s", ev.Kind)
	}
}

// decodeTableMap reads free-form metadata attributes until the mapping
// closes. Duplicate keys overwrite earlier values.
func (d *Decoder) decodeTableMap() (suite.TableReference, error) {
	attrs := make(map[string]string)
	for {
		ev, err := next(d.src)
		if err != nil {
			return nil, err
		}
		if ev.Kind == KindMappingEnd {
			return suite.MetadataMap{Attrs: attrs}, nil
		}
		if ev.Kind != KindScalar {
			return nil, errf(CodeStructuralMismatch, ev.Line,
				"expected a table attribute key or end of the table mapping, got %s", ev.Kind)
		}
		v, _, err := readScalar(d.src)
		if err != nil {
			return nil, err
		}
		attrs[ev.Value] = v
	}
}

// decodeMetadataTable reads the legacy fixed-key form: language, grade,
// system and __assert-match. grade must parse as an unsigned 8-bit integer
// and is normalized back to its decimal spelling.
func (d *Decoder) decodeMetadataTable() (suite.TableReference, error) {
	if err := readMappingStart(d.src); err != nil {
		return nil, err
	}
	attrs := make(map[string]string)
	for {
		ev, err := next(d.src)
		if err != nil {
			return nil, err
		}
		if ev.Kind == KindMappingEnd {
			return suite.MetadataMap{Attrs: attrs}, nil
		}
		if ev.Kind != KindScalar {
			return nil, errf(CodeStructuralMismatch, ev.Line,
				"expected a table attribute key or end of the table mapping, got %s", ev.Kind)
		}
		switch ev.Value {
		case "language", "system", "__assert-match":
			v, _, err := readScalar(d.src)
			if err != nil {
				return nil, err
			}
			attrs[ev.Value] = v
		case "grade":
			v, _, err := readScalar(d.src)
			if err != nil {
				return nil, err
			}
			g, perr := strconv.ParseUint(v, 10, 8)
			if perr != nil {
				return nil, errf(CodeInvalidGrade, ev.Line,
					"grade %q is not an unsigned 8-bit integer", v)
			}
			attrs["grade"] = strconv.FormatUint(g, 10)
		default:
			return nil, errf(CodeUnknownField, ev.Line, "unknown table attribute %q", ev.Value)
		}
	}
}
