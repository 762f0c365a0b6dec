// Package yaml adapts gopkg.in/yaml.v3 documents into the engine event
// stream. Documents are decoded one node tree at a time and walked lazily:
// events materialize only as the decoder pulls them.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	eng "github.com/brailletools/suitenorm/internal/engine"
	"gopkg.in/yaml.v3"
)

// sourceEncoding is the only encoding yaml.v3 reads, and the only one the
// decoder accepts.
const sourceEncoding = "utf-8"

type phase int

const (
	phaseStreamStart phase = iota
	phaseNextDocument
	phaseWalk
	phaseDone
)

// item is one deferred walker step: either a ready event or a node still to
// be expanded.
type item struct {
	ev   eng.Event
	node *yaml.Node
}

type yamlSource struct {
	dec     *yaml.Decoder
	pending []item // LIFO
	state   phase
	line    int64
}

// NewReader wraps an io.Reader into an engine.EventSource for YAML.
func NewReader(r io.Reader) eng.EventSource {
	return &yamlSource{dec: yaml.NewDecoder(r), state: phaseStreamStart, line: -1}
}

// NewBytes wraps a byte slice into an engine.EventSource for YAML.
func NewBytes(b []byte) eng.EventSource { return NewReader(bytes.NewReader(b)) }

func (s *yamlSource) Location() int64 { return s.line }

func (s *yamlSource) NextEvent() (eng.Event, error) {
	switch s.state {
	case phaseStreamStart:
		s.state = phaseNextDocument
		return eng.Event{Kind: eng.KindStreamStart, Encoding: sourceEncoding, Line: s.line}, nil
	case phaseNextDocument:
		var doc yaml.Node
		if err := s.dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				s.state = phaseDone
				return eng.Event{Kind: eng.KindStreamEnd, Line: s.line}, nil
			}
			return eng.Event{}, err
		}
		s.state = phaseWalk
		s.push(item{ev: eng.Event{Kind: eng.KindDocumentEnd, Line: int64(doc.Line)}})
		for i := len(doc.Content) - 1; i >= 0; i-- {
			s.push(item{node: doc.Content[i]})
		}
		s.line = int64(doc.Line)
		return eng.Event{Kind: eng.KindDocumentStart, Line: int64(doc.Line)}, nil
	case phaseWalk:
		it := s.pending[len(s.pending)-1]
		s.pending = s.pending[:len(s.pending)-1]
		ev := it.ev
		if it.node != nil {
			var err error
			ev, err = s.expand(it.node)
			if err != nil {
				return eng.Event{}, err
			}
		}
		if ev.Line > 0 {
			s.line = ev.Line
		}
		if len(s.pending) == 0 {
			s.state = phaseNextDocument
		}
		return ev, nil
	default:
		return eng.Event{}, io.EOF
	}
}

func (s *yamlSource) push(it item) { s.pending = append(s.pending, it) }

// expand turns a node into its first event, deferring the rest of the
// subtree onto the pending stack. Aliases are resolved to their anchors.
func (s *yamlSource) expand(n *yaml.Node) (eng.Event, error) {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	line := int64(n.Line)
	switch n.Kind {
	case yaml.ScalarNode:
		return eng.Event{Kind: eng.KindScalar, Value: n.Value, Style: scalarStyle(n.Style), Line: line}, nil
	case yaml.MappingNode:
		s.push(item{ev: eng.Event{Kind: eng.KindMappingEnd, Line: line}})
		for i := len(n.Content) - 1; i >= 0; i-- {
			s.push(item{node: n.Content[i]})
		}
		return eng.Event{Kind: eng.KindMappingStart, Line: line}, nil
	case yaml.SequenceNode:
		s.push(item{ev: eng.Event{Kind: eng.KindSequenceEnd, Line: line}})
		for i := len(n.Content) - 1; i >= 0; i-- {
			s.push(item{node: n.Content[i]})
		}
		return eng.Event{Kind: eng.KindSequenceStart, Line: line}, nil
	default:
		return eng.Event{}, fmt.Errorf("yaml source: unsupported node kind %d at line %d", n.Kind, n.Line)
	}
}

func scalarStyle(st yaml.Style) eng.Style {
	switch st {
	case yaml.SingleQuotedStyle:
		return eng.StyleSingleQuoted
	case yaml.DoubleQuotedStyle:
		return eng.StyleDoubleQuoted
	case yaml.LiteralStyle:
		return eng.StyleLiteral
	case yaml.FoldedStyle:
		return eng.StyleFolded
	default:
		return eng.StylePlain
	}
}
