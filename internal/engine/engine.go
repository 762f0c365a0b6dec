// Package engine implements the single-pass decoder that reconstructs
// normalized test suites from a generic stream of structural events. The
// grammar needs no lookahead: every decoder consumes exactly the events it
// owns and stops on the first error.
package engine

// Kind represents structural event kinds from a generic source.
type Kind int

const (
	KindStreamStart Kind = iota
	KindStreamEnd
	KindDocumentStart
	KindDocumentEnd
	KindMappingStart
	KindMappingEnd
	KindSequenceStart
	KindSequenceEnd
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindStreamStart:
		return "stream-start"
	case KindStreamEnd:
		return "stream-end"
	case KindDocumentStart:
		return "document-start"
	case KindDocumentEnd:
		return "document-end"
	case KindMappingStart:
		return "mapping-start"
	case KindMappingEnd:
		return "mapping-end"
	case KindSequenceStart:
		return "sequence-start"
	case KindSequenceEnd:
		return "sequence-end"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Style is the rendering style a scalar carried in the source text. The
// table decoder branches on it: a literal block is an inline table
// definition, a plain scalar is a file path.
type Style int

const (
	StylePlain Style = iota
	StyleSingleQuoted
	StyleDoubleQuoted
	StyleLiteral
	StyleFolded
)

// Event represents one structural event with the source line when known
// (-1 otherwise).
type Event struct {
	Kind     Kind
	Value    string // scalar text
	Style    Style  // scalar rendering style
	Encoding string // declared encoding, stream-start only
	Line     int64
}

// EventSource is the minimal interface required by the decoder. Sources are
// finite, one-shot and forward-only; exhaustion is reported as io.EOF.
type EventSource interface {
	NextEvent() (Event, error)
	Location() int64
}
