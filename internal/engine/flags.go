package engine

import (
	"github.com/brailletools/suitenorm/suite"
)

// decodeFlags reads the flags mapping. The only recognized key is testmode
// with one of the six historical spellings; the mapping must then close.
func (d *Decoder) decodeFlags() (suite.TestMode, error) {
	if err := readMappingStart(d.src); err != nil {
		return "", err
	}
	key, _, err := readScalar(d.src)
	if err != nil {
		return "", err
	}
	if key != "testmode" {
		return "", errf(CodeUnknownField, d.src.Location(), "unknown flag %q", key)
	}
	v, _, err := readScalar(d.src)
	if err != nil {
		return "", err
	}
	var mode suite.TestMode
	switch v {
	case "forward":
		mode = suite.Forward
	case "backward":
		mode = suite.Backward
	case "bothDirections":
		mode = suite.BothDirections
	case "display":
		mode = suite.Display
	case "hyphenate":
		mode = suite.Hyphenate
	case "hyphenateBraille":
		mode = suite.HyphenateBraille
	default:
		return "", errf(CodeUnsupportedTestMode, d.src.Location(),
			"testmode %q is not supported", v)
	}
	if err := readMappingEnd(d.src); err != nil {
		return "", err
	}
	return mode, nil
}
