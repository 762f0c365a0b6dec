// Package suite defines the canonical braille test-suite model and its
// canonical textual renderings. Every historical document shape the decoder
// accepts normalizes into these types; the model is immutable once built.
package suite

// TestMode is the translation direction (or mode) a suite exercises.
// Exactly one value applies per suite; Forward is the default.
type TestMode string

const (
	Forward          TestMode = "forward"
	Backward         TestMode = "backward"
	BothDirections   TestMode = "bothDirections"
	Display          TestMode = "display"
	Hyphenate        TestMode = "hyphenate"
	HyphenateBraille TestMode = "hyphenateBraille"
)

// ModeFlag is a named translation-mode toggle a single test case can enable.
type ModeFlag string

const (
	NoContractions    ModeFlag = "noContractions"
	CompbrlAtCursor   ModeFlag = "compbrlAtCursor"
	DotsIo            ModeFlag = "dotsIo"
	CompbrlLeftCursor ModeFlag = "compbrlLeftCursor"
	UcBrl             ModeFlag = "ucBrl"
	NoUndefined       ModeFlag = "noUndefined"
	PartialTrans      ModeFlag = "partialTrans"
)

// TableReference identifies the translation table a suite runs against.
// Exactly one concrete variant backs each suite; which one depends on the
// surface shape the table was declared with.
type TableReference interface {
	isTableReference()
}

// SingleFile references one table file by path.
type SingleFile struct {
	Path string
}

// FileList references multiple table files applied in order.
type FileList struct {
	Paths []string
}

// InlineDefinition carries a literal table body given directly in the
// document instead of a file reference.
type InlineDefinition struct {
	Text string
}

// MetadataMap selects a table by descriptive attributes (language, grade,
// system, optionally an assertion-match path) rather than by file. Key
// insertion order is irrelevant; rendering sorts keys.
type MetadataMap struct {
	Attrs map[string]string
}

func (SingleFile) isTableReference()       {}
func (FileList) isTableReference()         {}
func (InlineDefinition) isTableReference() {}
func (MetadataMap) isTableReference()      {}

// Xfail marks a test case as expected to currently fail translation.
// IsZero reports whether the marker is equivalent to "not expected to
// fail", which is the canonical absent value and is omitted from output.
type Xfail interface {
	isXfail()
	IsZero() bool
}

// XfailFlag expects failure in both directions when true.
type XfailFlag bool

// XfailReason expects failure and records a free-text reason.
type XfailReason string

// XfailDirectional carries independent expected-failure flags per
// translation direction.
type XfailDirectional struct {
	Forward  bool
	Backward bool
}

func (XfailFlag) isXfail()        {}
func (XfailReason) isXfail()      {}
func (XfailDirectional) isXfail() {}

func (f XfailFlag) IsZero() bool        { return !bool(f) }
func (r XfailReason) IsZero() bool      { return r == "" }
func (d XfailDirectional) IsZero() bool { return !d.Forward && !d.Backward }

// TestCase is one input/expected-output pair plus optional case attributes.
// InputPos, OutputPos, CursorPos, Mode and MaxOutputLength are part of the
// canonical model but have no known source surface form yet; decoders leave
// them unset.
type TestCase struct {
	Input           string     `yaml:"input" json:"input"`
	Expected        string     `yaml:"expected" json:"expected"`
	Xfail           Xfail      `yaml:"xfail,omitempty" json:"xfail,omitempty"`
	InputPos        []uint16   `yaml:"input_pos,omitempty" json:"input_pos,omitempty"`
	OutputPos       []uint16   `yaml:"output_pos,omitempty" json:"output_pos,omitempty"`
	CursorPos       *uint16    `yaml:"cursor_pos,omitempty" json:"cursor_pos,omitempty"`
	Mode            []ModeFlag `yaml:"mode,omitempty" json:"mode,omitempty"`
	MaxOutputLength *uint16    `yaml:"max_output_length,omitempty" json:"max_output_length,omitempty"`
}

// TestSuite is one normalized test-suite unit: which table it runs against,
// in which mode, and its ordered test cases.
type TestSuite struct {
	DisplayTable string         `yaml:"display_table,omitempty" json:"display_table,omitempty"`
	Table        TableReference `yaml:"table" json:"table"`
	Mode         TestMode       `yaml:"mode" json:"mode"`
	Tests        []TestCase     `yaml:"tests,omitempty" json:"tests,omitempty"`
}
