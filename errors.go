package suitenorm

import (
	"errors"
	"fmt"

	eng "github.com/brailletools/suitenorm/internal/engine"
)

// Error codes (exported consts for IDE completion and type safety by
// convention). Every decode failure carries exactly one.
const (
	CodeStructuralMismatch    = "structural_mismatch"
	CodeUnsupportedTableShape = "unsupported_table_shape"
	CodeUnsupportedTestMode   = "unsupported_testmode"
	CodeUnsupportedXfailShape = "unsupported_xfail_shape"
	CodeUnsupportedXfailKey   = "unsupported_xfail_key"
	CodeUnknownField          = "unknown_field"
	CodeUnknownTestAttribute  = "unknown_test_attribute"
	CodeInvalidGrade          = "invalid_grade"
	CodeUnexpectedEncoding    = "unexpected_encoding"
	CodeUnexpectedEndOfInput  = "unexpected_end_of_input"
)

// DecodeError is the single fatal error a failing document produces.
// Decoding stops at the first one; no partial suites are returned.
type DecodeError struct {
	Code    string
	Message string
	Line    int64 // source line; <= 0 when unknown
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", e.Code, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsDecodeError extracts a DecodeError from an error using errors.As
// internally.
func AsDecodeError(err error) (*DecodeError, bool) {
	if err == nil {
		return nil, false
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// toDecodeError converts internal engine errors at the package boundary;
// anything else (for example a malformed-YAML error from the source) passes
// through unchanged.
func toDecodeError(err error) error {
	if err == nil {
		return nil
	}
	var ee *eng.Error
	if errors.As(err, &ee) {
		return &DecodeError{Code: ee.Code, Message: ee.Message, Line: ee.Line}
	}
	return err
}
