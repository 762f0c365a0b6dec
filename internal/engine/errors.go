package engine

import "fmt"

// Error codes. Every decode failure is fatal and carries exactly one of
// these; the public package re-exports the same strings.
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

// Error is a fatal decode error. The decoder propagates the first one
// unchanged; no partial suites are emitted for a failing document.
type Error struct {
	Code    string
	Message string
	Line    int64 // source line; <= 0 when unknown
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", e.Code, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func errf(code string, line int64, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Line: line}
}
