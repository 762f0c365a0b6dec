package engine

import (
	"errors"
	"io"
	"strings"
)

// Primitive readers. Each consumes exactly one event of a specific expected
// kind and returns its payload; any other event is a structural mismatch
// and exhaustion is an unexpected end of input.

// next pulls one event, mapping source exhaustion onto the decode error
// model.
func next(src EventSource) (Event, error) {
	ev, err := src.NextEvent()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Event{}, errf(CodeUnexpectedEndOfInput, src.Location(),
				"event stream ended before the document completed")
		}
		return Event{}, err
	}
	return ev, nil
}

func expect(src EventSource, kind Kind) (Event, error) {
	ev, err := next(src)
	if err != nil {
		return Event{}, err
	}
	if ev.Kind != kind {
		return Event{}, errf(CodeStructuralMismatch, ev.Line, "expected %s, got %s", kind, ev.Kind)
	}
	return ev, nil
}

// readStreamStart also checks the declared encoding: only UTF-8 input is
// supported.
func readStreamStart(src EventSource) error {
	ev, err := expect(src, KindStreamStart)
	if err != nil {
		return err
	}
	if !strings.EqualFold(ev.Encoding, "utf-8") {
		return errf(CodeUnexpectedEncoding, ev.Line,
			"declared encoding %q is not supported, want utf-8", ev.Encoding)
	}
	return nil
}

func readStreamEnd(src EventSource) error {
	_, err := expect(src, KindStreamEnd)
	return err
}

func readDocumentStart(src EventSource) error {
	_, err := expect(src, KindDocumentStart)
	return err
}

func readDocumentEnd(src EventSource) error {
	_, err := expect(src, KindDocumentEnd)
	return err
}

func readMappingStart(src EventSource) error {
	_, err := expect(src, KindMappingStart)
	return err
}

func readMappingEnd(src EventSource) error {
	_, err := expect(src, KindMappingEnd)
	return err
}

func readSequenceStart(src EventSource) error {
	_, err := expect(src, KindSequenceStart)
	return err
}

func readSequenceEnd(src EventSource) error {
	_, err := expect(src, KindSequenceEnd)
	return err
}

func readScalar(src EventSource) (string, Style, error) {
	ev, err := expect(src, KindScalar)
	if err != nil {
		return "", StylePlain, err
	}
	return ev.Value, ev.Style, nil
}
