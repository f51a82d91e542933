package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"funcov/cmd/funcov/ui"
	"funcov/internal/report"
	"funcov/internal/session"
)

// watchCmd re-renders the coverage report whenever the file changes.
var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-render the report when the coverage file changes",
	Long: `Watches a coverage file and reprints the text report on every change,
for keeping a terminal open next to a running test suite. Stops on Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := cfg.Storage.File
	if len(args) > 0 {
		path = args[0]
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: saves go through a rename, which
	// replaces the watched inode.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	render := func() {
		sess := session.New(logger)
		if err := sess.Load(abs); err != nil {
			logger.Warn("failed to load coverage file", zap.Error(err))
			return
		}
		cmd.Println(ui.RenderReport(report.Generate(sess.Data()), colorEnabled()))
	}

	if _, err := os.Stat(abs); err == nil {
		render()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	const debounce = 500 * time.Millisecond
	var lastRender time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if time.Since(lastRender) < debounce {
				continue
			}
			lastRender = time.Now()
			render()
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(werr))
		}
	}
}
