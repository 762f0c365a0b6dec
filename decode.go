package suitenorm

import (
	"io"

	eng "github.com/brailletools/suitenorm/internal/engine"
	"github.com/brailletools/suitenorm/suite"
)

// Revision selects which historical table schema the decoder accepts. The
// documents carry no version marker and the legacy fixed-key table mapping
// is not distinguishable by shape from the newer metadata mapping, so the
// caller chooses explicitly.
type Revision int

const (
	// RevisionCanonical resolves the table reference from its surface
	// shape: mapping, plain scalar, literal block or sequence.
	RevisionCanonical Revision = iota
	// RevisionMetadata expects the legacy fixed-key mapping with
	// language, grade, system and __assert-match.
	RevisionMetadata
)

// DecodeOpt bundles decoding options.
type DecodeOpt struct {
	Revision Revision
}

// Decode is the primary entry point. It consumes events from the Source and
// assembles the normalized suites; a document either decodes fully or
// yields a single DecodeError.
func Decode(src Source, opts ...DecodeOpt) ([]suite.TestSuite, error) {
	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	suites, err := eng.NewDecoder(EngineEventSource(src), toEngineRevision(opt.Revision)).Decode()
	if err != nil {
		return nil, toDecodeError(err)
	}
	return suites, nil
}

// DecodeYAML decodes one YAML document from r.
func DecodeYAML(r io.Reader, opts ...DecodeOpt) ([]suite.TestSuite, error) {
	return Decode(YAMLReader(r), opts...)
}

// DecodeYAMLBytes decodes one YAML document held in memory.
func DecodeYAMLBytes(b []byte, opts ...DecodeOpt) ([]suite.TestSuite, error) {
	return Decode(YAMLBytes(b), opts...)
}

// ---- Source -> engine.EventSource adapter ----

type eventSourceAdapter struct{ inner Source }

func (a *eventSourceAdapter) NextEvent() (eng.Event, error) {
	ev, err := a.inner.NextEvent()
	if err != nil {
		return eng.Event{}, err
	}
	return eng.Event{
		Kind:     toEngineKind(ev.Kind),
		Value:    ev.Value,
		Style:    toEngineStyle(ev.Style),
		Encoding: ev.Encoding,
		Line:     ev.Line,
	}, nil
}

func (a *eventSourceAdapter) Location() int64 { return a.inner.Location() }

// EngineEventSource exposes the engine.EventSource view of a Source,
// unwrapping engine-backed sources to avoid adapter round-trips.
func EngineEventSource(s Source) eng.EventSource {
	if ea, ok := s.(*engineSourceAdapter); ok {
		return ea.inner
	}
	return &eventSourceAdapter{inner: s}
}

func toEngineKind(k eventKind) eng.Kind {
	switch k {
	case _eventStreamStart:
		return eng.KindStreamStart
	case _eventStreamEnd:
		return eng.KindStreamEnd
	case _eventDocumentStart:
		return eng.KindDocumentStart
	case _eventDocumentEnd:
		return eng.KindDocumentEnd
	case _eventMappingStart:
		return eng.KindMappingStart
	case _eventMappingEnd:
		return eng.KindMappingEnd
	case _eventSequenceStart:
		return eng.KindSequenceStart
	case _eventSequenceEnd:
		return eng.KindSequenceEnd
	default:
		return eng.KindScalar
	}
}

func toEngineStyle(st ScalarStyle) eng.Style {
	switch st {
	case StyleSingleQuoted:
		return eng.StyleSingleQuoted
	case StyleDoubleQuoted:
		return eng.StyleDoubleQuoted
	case StyleLiteral:
		return eng.StyleLiteral
	case StyleFolded:
		return eng.StyleFolded
	default:
		return eng.StylePlain
	}
}

func toEngineRevision(r Revision) eng.Revision {
	if r == RevisionMetadata {
		return eng.RevisionMetadata
	}
	return eng.RevisionCanonical
}
