package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	suitenorm "github.com/brailletools/suitenorm"
	"github.com/brailletools/suitenorm/internal/config"
	"github.com/brailletools/suitenorm/suite"
)

var (
	convertOutput   string
	convertFormat   string
	convertRevision string
)

var convertCmd = &cobra.Command{
	Use:   "convert FILE",
	Short: "Convert one document to the canonical form",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "write output to FILE instead of stdout")
	convertCmd.Flags().StringVar(&convertFormat, "format", "", "output format: yaml or json")
	convertCmd.Flags().StringVar(&convertRevision, "revision", "", "source schema revision: canonical or metadata")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.Discover(".")
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = convertFormat
	}
	if cmd.Flags().Changed("revision") {
		cfg.Revision = convertRevision
	}

	data, err := normalizeFile(args[0], cfg)
	if err != nil {
		return err
	}
	if convertOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(convertOutput, data, 0o644)
}

// normalizeFile decodes one document and renders it in the configured
// format. Nothing is written when decoding fails.
func normalizeFile(path string, cfg config.Config) ([]byte, error) {
	opt, err := decodeOpt(cfg)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	suites, err := suitenorm.DecodeYAML(f, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var buf bytes.Buffer
	switch cfg.Format {
	case "yaml":
		err = suite.EncodeYAML(&buf, suites)
	case "json":
		err = suite.EncodeJSON(&buf, suites)
	default:
		return nil, fmt.Errorf("unsupported output format %q (want yaml or json)", cfg.Format)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeOpt(cfg config.Config) (suitenorm.DecodeOpt, error) {
	switch cfg.Revision {
	case "", "canonical":
		return suitenorm.DecodeOpt{Revision: suitenorm.RevisionCanonical}, nil
	case "metadata":
		return suitenorm.DecodeOpt{Revision: suitenorm.RevisionMetadata}, nil
	default:
		return suitenorm.DecodeOpt{}, fmt.Errorf("unsupported schema revision %q (want canonical or metadata)", cfg.Revision)
	}
}

// outputPath derives where a converted file lands: the source extension is
// replaced by the configured suffix.
func outputPath(in, suffix string) string {
	base := strings.TrimSuffix(in, filepath.Ext(in))
	return base + suffix
}
