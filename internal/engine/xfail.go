package engine

import (
	"github.com/brailletools/suitenorm/suite"
)

// xfailBool applies the historical boolean spelling rule: off and false are
// false, anything else is true.
func xfailBool(v string) bool {
	return v != "off" && v != "false"
}

// decodeXfail resolves the expected-failure marker among its historical
// surface forms: a bare boolean spelling, a free-text reason, or a mapping
// with per-direction flags.
func (d *Decoder) decodeXfail() (suite.Xfail, error) {
	ev, err := next(d.src)
	if err != nil {
		return nil, err
	}
	switch ev.Kind {
	case KindScalar:
		switch ev.Value {
		case "off", "false":
			return suite.XfailFlag(false), nil
		case "on", "true":
			return suite.XfailFlag(true), nil
		default:
			return suite.XfailReason(ev.Value), nil
		}
	case KindMappingStart:
		var dir suite.XfailDirectional
		for {
			ev, err := next(d.src)
			if err != nil {
				return nil, err
			}
			if ev.Kind == KindMappingEnd {
				return dir, nil
			}
			if ev.Kind != KindScalar {
				return nil, errf(CodeStructuralMismatch, ev.Line,
					"expected an xfail direction key or end of the xfail mapping, got %s", ev.Kind)
			}
			v, _, err := readScalar(d.src)
			if err != nil {
				return nil, err
			}
			switch ev.Value {
			case "forward":
				dir.Forward = xfailBool(v)
			case "backward":
				dir.Backward = xfailBool(v)
			default:
				return nil, errf(CodeUnsupportedXfailKey, ev.Line,
					"xfail direction must be forward or backward, got %q", ev.Value)
			}
		}
	default:
		return nil, errf(CodeUnsupportedXfailShape, ev.Line,
			"cannot interpret %s as an xfail marker", ev.Kind)
	}
}
