package engine

import (
	"github.com/brailletools/suitenorm/suite"
)

// Revision selects which historical table schema the decoder accepts. The
// documents carry no version marker and the legacy fixed-key mapping is not
// distinguishable from the newer metadata mapping by shape, so callers must
// choose explicitly.
type Revision int

const (
	// RevisionCanonical resolves the table reference from its surface
	// shape: mapping, plain scalar, literal block or sequence.
	RevisionCanonical Revision = iota
	// RevisionMetadata expects the legacy fixed-key mapping with
	// language, grade, system and __assert-match.
	RevisionMetadata
)

// Decoder drives the readers across one full document and assembles zero or
// more normalized suites.
type Decoder struct {
	src EventSource
	rev Revision
}

// NewDecoder returns a decoder for one document worth of events.
func NewDecoder(src EventSource, rev Revision) *Decoder {
	return &Decoder{src: src, rev: rev}
}

// suiteState is the builder threaded through the top-level key loop.
// Whichever display/table/flags value was seen most recently applies to
// every suite emitted after it; the fields accumulate across keys rather
// than being scoped per suite.
type suiteState struct {
	display string
	table   suite.TableReference
	mode    suite.TestMode
}

func (st suiteState) build(tests []suite.TestCase) suite.TestSuite {
	return suite.TestSuite{
		DisplayTable: st.display,
		Table:        st.table,
		Mode:         st.mode,
		Tests:        tests,
	}
}

// Decode runs the document state machine to completion:
// stream-start (utf-8 only), document-start, the top-level mapping with its
// key loop, document-end, stream-end. A suite is emitted for each tests
// block; a document that declares a table but no tests block emits exactly
// one suite after the loop.
func (d *Decoder) Decode() ([]suite.TestSuite, error) {
	if err := readStreamStart(d.src); err != nil {
		return nil, err
	}
	if err := readDocumentStart(d.src); err != nil {
		return nil, err
	}
	if err := readMappingStart(d.src); err != nil {
		return nil, err
	}

	st := suiteState{mode: suite.Forward}
	var suites []suite.TestSuite
	for {
		ev, err := next(d.src)
		if err != nil {
			return nil, err
		}
		if ev.Kind == KindMappingEnd {
			break
		}
		if ev.Kind != KindScalar {
			return nil, errf(CodeStructuralMismatch, ev.Line,
				"expected a key scalar or end of the top-level mapping, got %s", ev.Kind)
		}
		switch ev.Value {
		case "display":
			v, _, err := readScalar(d.src)
			if err != nil {
				return nil, err
			}
			st.display = v
		case "table":
			t, err := d.decodeTable()
			if err != nil {
				return nil, err
			}
			st.table = t
		case "flags":
			m, err := d.decodeFlags()
			if err != nil {
				return nil, err
			}
			st.mode = m
		case "tests":
			if st.table == nil {
				return nil, errf(CodeStructuralMismatch, ev.Line,
					"tests block before any table declaration")
			}
			tests, err := d.decodeTests()
			if err != nil {
				return nil, err
			}
			suites = append(suites, st.build(tests))
		default:
			return nil, errf(CodeUnknownField, ev.Line, "unknown field %q", ev.Value)
		}
	}
	if len(suites) == 0 && st.table != nil {
		suites = append(suites, st.build(nil))
	}

	if err := readDocumentEnd(d.src); err != nil {
		return nil, err
	}
	if err := readStreamEnd(d.src); err != nil {
		return nil, err
	}
	return suites, nil
}
