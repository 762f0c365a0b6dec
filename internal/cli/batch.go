package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/brailletools/suitenorm/internal/config"
)

var (
	batchSuffix   string
	batchJobs     int
	batchFormat   string
	batchRevision string
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE...",
	Short: "Convert many documents, writing each next to its source",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchSuffix, "suffix", "", "suffix for converted files")
	batchCmd.Flags().IntVar(&batchJobs, "jobs", 0, "maximum parallel conversions (0 = one per CPU)")
	batchCmd.Flags().StringVar(&batchFormat, "format", "", "output format: yaml or json")
	batchCmd.Flags().StringVar(&batchRevision, "revision", "", "source schema revision: canonical or metadata")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Discover(".")
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("suffix") {
		cfg.Suffix = batchSuffix
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = batchJobs
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = batchFormat
	}
	if cmd.Flags().Changed("revision") {
		cfg.Revision = batchRevision
	}
	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	g := new(errgroup.Group)
	g.SetLimit(jobs)
	for _, path := range args {
		path := path
		g.Go(func() error {
			data, err := normalizeFile(path, cfg)
			if err != nil {
				return err
			}
			out := outputPath(path, cfg.Suffix)
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("%s: %w", out, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s converted %d file(s)\n", color.GreenString("ok:"), len(args))
	return nil
}
