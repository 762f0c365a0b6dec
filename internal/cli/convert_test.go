package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brailletools/suitenorm/internal/config"
)

func TestOutputPath(t *testing.T) {
	cases := []struct {
		in, suffix, want string
	}{
		{"tests/da.yaml", ".norm.yaml", "tests/da.norm.yaml"},
		{"da.yml", ".norm.yaml", "da.norm.yaml"},
		{"noext", ".norm.yaml", "noext.norm.yaml"},
		{"a/b.yaml", ".json", "a/b.json"},
	}
	for _, tc := range cases {
		if got := outputPath(tc.in, tc.suffix); got != tc.want {
			t.Fatalf("outputPath(%q, %q): expected %q, got %q", tc.in, tc.suffix, got, tc.want)
		}
	}
}

func TestDecodeOpt_RejectsUnknownRevision(t *testing.T) {
	cfg := config.Default()
	cfg.Revision = "v7"
	if _, err := decodeOpt(cfg); err == nil {
		t.Fatalf("expected an error for unknown revision")
	}
}

func TestNormalizeFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "suite.yaml")
	const doc = `table: mytable.ctb
tests:
  - - abc
    - "⠁⠃⠉"
`
	if err := os.WriteFile(in, []byte(doc), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, err := normalizeFile(in, config.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "mytable.ctb") || !strings.Contains(string(out), "mode: forward") {
		t.Fatalf("unexpected canonical output:\n%s", out)
	}
}

func TestNormalizeFile_DecodeFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(in, []byte("bogus: 1\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	out, err := normalizeFile(in, config.Default())
	if err == nil {
		t.Fatalf("expected a decode error")
	}
	if out != nil {
		t.Fatalf("expected no output on failure, got %q", out)
	}
	if !strings.Contains(err.Error(), "bad.yaml") {
		t.Fatalf("expected the file name in the error, got %v", err)
	}
}

func TestNormalizeFile_JSONFormat(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "suite.yaml")
	if err := os.WriteFile(in, []byte("table: t.ctb\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	cfg := config.Default()
	cfg.Format = "json"
	out, err := normalizeFile(in, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), `"table": "t.ctb"`) {
		t.Fatalf("unexpected JSON output:\n%s", out)
	}
}
