package suite_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/brailletools/suitenorm/suite"
)

func encodeYAML(t *testing.T, suites []suite.TestSuite) string {
	t.Helper()
	var buf bytes.Buffer
	if err := suite.EncodeYAML(&buf, suites); err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	return buf.String()
}

// reparse decodes the canonical YAML back into a generic tree so tests can
// assert on shape without pinning the encoder's exact formatting.
func reparse(t *testing.T, out string) []map[string]any {
	t.Helper()
	var docs []map[string]any
	if err := yaml.Unmarshal([]byte(out), &docs); err != nil {
		t.Fatalf("canonical output did not reparse: %v\n%s", err, out)
	}
	return docs
}

func TestEncodeYAML_MinimalSuite(t *testing.T) {
	out := encodeYAML(t, []suite.TestSuite{{
		Table: suite.SingleFile{Path: "mytable.ctb"},
		Mode:  suite.Backward,
		Tests: []suite.TestCase{{Input: "abc", Expected: "⠁⠃⠉"}},
	}})
	docs := reparse(t, out)
	if len(docs) != 1 {
		t.Fatalf("expected 1 suite, got %d", len(docs))
	}
	doc := docs[0]
	if doc["table"] != "mytable.ctb" || doc["mode"] != "backward" {
		t.Fatalf("unexpected suite fields: %v", doc)
	}
	if _, present := doc["display_table"]; present {
		t.Fatalf("expected empty display_table to be omitted:\n%s", out)
	}
	tests := doc["tests"].([]any)
	tc := tests[0].(map[string]any)
	if _, present := tc["xfail"]; present {
		t.Fatalf("expected absent xfail to be omitted:\n%s", out)
	}
	for _, k := range []string{"input_pos", "output_pos", "cursor_pos", "mode", "max_output_length"} {
		if _, present := tc[k]; present {
			t.Fatalf("expected undecoded attribute %s to be omitted:\n%s", k, out)
		}
	}
}

func TestEncodeYAML_XfailOmission(t *testing.T) {
	cases := []struct {
		name    string
		xfail   suite.Xfail
		present bool
	}{
		{"false flag omitted", suite.XfailFlag(false), false},
		{"true flag present", suite.XfailFlag(true), true},
		{"reason present", suite.XfailReason("known limitation"), true},
		{"all-false directional omitted", suite.XfailDirectional{}, false},
		{"directional present", suite.XfailDirectional{Forward: true}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := encodeYAML(t, []suite.TestSuite{{
				Table: suite.SingleFile{Path: "t.ctb"},
				Mode:  suite.Forward,
				Tests: []suite.TestCase{{Input: "a", Expected: "b", Xfail: tc.xfail}},
			}})
			docs := reparse(t, out)
			test := docs[0]["tests"].([]any)[0].(map[string]any)
			_, present := test["xfail"]
			if present != tc.present {
				t.Fatalf("expected xfail present=%v, got %v:\n%s", tc.present, present, out)
			}
		})
	}
}

func TestEncodeYAML_TableVariants(t *testing.T) {
	out := encodeYAML(t, []suite.TestSuite{
		{Table: suite.SingleFile{Path: "one.ctb"}, Mode: suite.Forward},
		{Table: suite.FileList{Paths: []string{"a.ctb", "b.cti"}}, Mode: suite.Forward},
		{Table: suite.InlineDefinition{Text: "include a.ctb\n"}, Mode: suite.Forward},
		{Table: suite.MetadataMap{Attrs: map[string]string{"language": "da", "grade": "2"}}, Mode: suite.Forward},
	})
	docs := reparse(t, out)
	if docs[0]["table"] != "one.ctb" {
		t.Fatalf("single file: got %v", docs[0]["table"])
	}
	list := docs[1]["table"].([]any)
	if len(list) != 2 || list[0] != "a.ctb" || list[1] != "b.cti" {
		t.Fatalf("file list: got %v", list)
	}
	if docs[2]["table"] != "include a.ctb\n" {
		t.Fatalf("inline definition: got %q", docs[2]["table"])
	}
	if !strings.Contains(out, "|") {
		t.Fatalf("expected the inline definition to render as a literal block:\n%s", out)
	}
	meta := docs[3]["table"].(map[string]any)
	if meta["language"] != "da" || fmt.Sprint(meta["grade"]) != "2" {
		t.Fatalf("metadata map: got %v", meta)
	}
}

func TestEncodeYAML_MetadataKeysSorted(t *testing.T) {
	out := encodeYAML(t, []suite.TestSuite{{
		Table: suite.MetadataMap{Attrs: map[string]string{
			"system":   "fulltext",
			"grade":    "2",
			"language": "da",
		}},
		Mode: suite.Forward,
	}})
	g := strings.Index(out, "grade")
	l := strings.Index(out, "language")
	s := strings.Index(out, "system")
	if g < 0 || l < 0 || s < 0 || !(g < l && l < s) {
		t.Fatalf("expected sorted metadata keys, got:\n%s", out)
	}
}

func TestEncodeYAML_DirectionalRendersOnlyFailingDirections(t *testing.T) {
	out := encodeYAML(t, []suite.TestSuite{{
		Table: suite.SingleFile{Path: "t.ctb"},
		Mode:  suite.Forward,
		Tests: []suite.TestCase{{
			Input: "a", Expected: "b",
			Xfail: suite.XfailDirectional{Forward: true},
		}},
	}})
	if !strings.Contains(out, "forward") || strings.Contains(out, "backward") {
		t.Fatalf("expected only the failing direction in output:\n%s", out)
	}
}

func TestEncodeJSON_XfailOmission(t *testing.T) {
	var buf bytes.Buffer
	err := suite.EncodeJSON(&buf, []suite.TestSuite{{
		Table: suite.SingleFile{Path: "t.ctb"},
		Mode:  suite.Forward,
		Tests: []suite.TestCase{
			{Input: "a", Expected: "b", Xfail: suite.XfailFlag(false)},
			{Input: "c", Expected: "d", Xfail: suite.XfailReason("known limitation")},
		},
	}})
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	var docs []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &docs); err != nil {
		t.Fatalf("canonical JSON did not reparse: %v", err)
	}
	tests := docs[0]["tests"].([]any)
	if _, present := tests[0].(map[string]any)["xfail"]; present {
		t.Fatalf("expected non-failing xfail omitted from JSON:\n%s", buf.String())
	}
	if got := tests[1].(map[string]any)["xfail"]; got != "known limitation" {
		t.Fatalf("expected reason to survive JSON rendering, got %v", got)
	}
	if docs[0]["table"] != "t.ctb" {
		t.Fatalf("expected single-file table as a JSON string, got %v", docs[0]["table"])
	}
}
