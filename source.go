package suitenorm

import (
	"io"
	"sync"

	eng "github.com/brailletools/suitenorm/internal/engine"
	yamlsrc "github.com/brailletools/suitenorm/source/yaml"
)

// eventKind enumerates structural event kinds.
type eventKind int

const (
	_eventStreamStart eventKind = iota
	_eventStreamEnd
	_eventDocumentStart
	_eventDocumentEnd
	_eventMappingStart
	_eventMappingEnd
	_eventSequenceStart
	_eventSequenceEnd
	_eventScalar
)

// EventKind is exported so callers can build custom sources without relying
// on unstable APIs. The alias and constants mirror the internal eventKind.
type EventKind = eventKind

const (
	EventStreamStart   EventKind = _eventStreamStart
	EventStreamEnd     EventKind = _eventStreamEnd
	EventDocumentStart EventKind = _eventDocumentStart
	EventDocumentEnd   EventKind = _eventDocumentEnd
	EventMappingStart  EventKind = _eventMappingStart
	EventMappingEnd    EventKind = _eventMappingEnd
	EventSequenceStart EventKind = _eventSequenceStart
	EventSequenceEnd   EventKind = _eventSequenceEnd
	EventScalar        EventKind = _eventScalar
)

// ScalarStyle distinguishes how a scalar was rendered in the source text.
// The table decoder branches on it.
type ScalarStyle int

const (
	StylePlain ScalarStyle = iota
	StyleSingleQuoted
	StyleDoubleQuoted
	StyleLiteral
	StyleFolded
)

// Event describes one structural event. Line records the source line when
// known (-1 otherwise).
type Event struct {
	Kind     EventKind
	Value    string // scalar text
	Style    ScalarStyle
	Encoding string // declared encoding, stream-start only
	Line     int64
}

// Source abstracts over polymorphic event producers. Sources are finite,
// one-shot and forward-only; exhaustion is reported as io.EOF.
type Source interface {
	NextEvent() (Event, error)
	Location() int64 // source line; -1 if unknown
}

// YAMLDriver converts YAML input into a Source via a pluggable SPI. The
// default implementation walks gopkg.in/yaml.v3 node trees and may be
// swapped with SetYAMLDriver.
type YAMLDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	yamlDriverMu      sync.RWMutex
	currentYAMLDriver YAMLDriver = defaultYAMLDriver{}
)

// SetYAMLDriver replaces the global YAML driver; nil values are ignored.
func SetYAMLDriver(d YAMLDriver) {
	if d == nil {
		return
	}
	yamlDriverMu.Lock()
	currentYAMLDriver = d
	yamlDriverMu.Unlock()
}

// UseDefaultYAMLDriver restores the default yaml.v3-backed driver.
func UseDefaultYAMLDriver() {
	yamlDriverMu.Lock()
	currentYAMLDriver = defaultYAMLDriver{}
	yamlDriverMu.Unlock()
}

func getYAMLDriver() YAMLDriver {
	yamlDriverMu.RLock()
	d := currentYAMLDriver
	yamlDriverMu.RUnlock()
	return d
}

// defaultYAMLDriver wraps the source/yaml implementation.
type defaultYAMLDriver struct{}

func (defaultYAMLDriver) NewReader(r io.Reader) Source {
	return &engineSourceAdapter{inner: yamlsrc.NewReader(r)}
}
func (defaultYAMLDriver) NewBytes(b []byte) Source {
	return &engineSourceAdapter{inner: yamlsrc.NewBytes(b)}
}
func (defaultYAMLDriver) Name() string { return "yaml.v3" }

// YAMLReader wraps an io.Reader as a YAML event Source.
func YAMLReader(r io.Reader) Source { return getYAMLDriver().NewReader(r) }

// YAMLBytes wraps a byte slice as a YAML event Source.
func YAMLBytes(b []byte) Source { return getYAMLDriver().NewBytes(b) }

// SourceFromEngine wraps an engine.EventSource as a suitenorm.Source.
func SourceFromEngine(inner eng.EventSource) Source {
	return &engineSourceAdapter{inner: inner}
}

type engineSourceAdapter struct {
	inner eng.EventSource
}

func (s *engineSourceAdapter) NextEvent() (Event, error) {
	ev, err := s.inner.NextEvent()
	if err != nil {
		return Event{}, err
	}
	return Event{
		Kind:     fromEngineKind(ev.Kind),
		Value:    ev.Value,
		Style:    fromEngineStyle(ev.Style),
		Encoding: ev.Encoding,
		Line:     ev.Line,
	}, nil
}

func (s *engineSourceAdapter) Location() int64 { return s.inner.Location() }

func fromEngineKind(k eng.Kind) eventKind {
	switch k {
	case eng.KindStreamStart:
		return _eventStreamStart
	case eng.KindStreamEnd:
		return _eventStreamEnd
	case eng.KindDocumentStart:
		return _eventDocumentStart
	case eng.KindDocumentEnd:
		return _eventDocumentEnd
	case eng.KindMappingStart:
		return _eventMappingStart
	case eng.KindMappingEnd:
		return _eventMappingEnd
	case eng.KindSequenceStart:
		return _eventSequenceStart
	case eng.KindSequenceEnd:
		return _eventSequenceEnd
	default:
		return _eventScalar
	}
}

func fromEngineStyle(st eng.Style) ScalarStyle {
	switch st {
	case eng.StyleSingleQuoted:
		return StyleSingleQuoted
	case eng.StyleDoubleQuoted:
		return StyleDoubleQuoted
	case eng.StyleLiteral:
		return StyleLiteral
	case eng.StyleFolded:
		return StyleFolded
	default:
		return StylePlain
	}
}
