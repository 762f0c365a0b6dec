package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/brailletools/suitenorm/internal/config"
)

// watchDebounce coalesces editor write bursts into one conversion.
const watchDebounce = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Re-convert suite documents in DIR as they change",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Discover(".")
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()
	if err := watcher.Add(args[0]); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A single timer resets on every event; when it fires, all accumulated
	// paths are converted in one flush.
	var mu sync.Mutex
	ready := make(map[string]bool)
	var timer *time.Timer
	flushed := make(chan struct{}, 1)

	flush := func() {
		select {
		case flushed <- struct{}{}:
		default:
		}
	}

	fmt.Fprintf(os.Stderr, "watching %s\n", args[0])
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("watch:"), err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			ext := filepath.Ext(ev.Name)
			if ext != ".yaml" && ext != ".yml" {
				continue
			}
			mu.Lock()
			ready[ev.Name] = true
			mu.Unlock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, flush)
		case <-flushed:
			mu.Lock()
			paths := make([]string, 0, len(ready))
			for p := range ready {
				paths = append(paths, p)
			}
			ready = make(map[string]bool)
			mu.Unlock()
			for _, p := range paths {
				convertWatched(p, cfg)
			}
		}
	}
}

// convertWatched converts one changed file, reporting instead of stopping:
// the watch loop outlives individual bad documents.
func convertWatched(path string, cfg config.Config) {
	data, err := normalizeFile(path, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
		return
	}
	out := outputPath(path, cfg.Suffix)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s -> %s\n", color.GreenString("ok:"), path, out)
}
