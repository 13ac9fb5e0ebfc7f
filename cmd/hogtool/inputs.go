package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jchantrell/hogtool/internal/archive"
	"github.com/jchantrell/hogtool/internal/batch"
	"github.com/jchantrell/hogtool/internal/hog"
	"github.com/jchantrell/hogtool/internal/source"
	"github.com/jchantrell/hogtool/internal/utils"
	"github.com/spf13/cobra"
)

// loadStats counts what loadIndex read
type loadStats struct {
	StartTime   time.Time
	EndTime     time.Time
	Files       int
	Archives    int
	Passthrough int
	Failed      int
	Entries     int
}

// Err summarizes per-file failures once everything else has been processed
func (s *loadStats) Err() error {
	if s.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d inputs could not be read", s.Failed, s.Files)
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&inputs, "input", "i", nil, "input file, repeatable or comma-separated")
	cmd.Flags().StringVarP(&listFile, "file-input", "f", "", "read input file names from a file, one per line")
}

func inputPaths() ([]string, error) {
	paths := append([]string{}, inputs...)

	if listFile != "" {
		listed, err := source.ReadListFile(listFile)
		if err != nil {
			return nil, err
		}
		paths = append(paths, listed...)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("you must specify either --input or --file-input")
	}

	return paths, nil
}

// loadIndex decodes all inputs in parallel and folds them into one index in
// the order they were given, so later inputs win name collisions.
func loadIndex(ctx context.Context) (*archive.Index, []*hog.Result, *loadStats, error) {
	stats := &loadStats{StartTime: time.Now()}

	paths, err := inputPaths()
	if err != nil {
		return nil, nil, nil, err
	}
	stats.Files = len(paths)

	progress := utils.NewProgress(len(paths), progressEnabled())
	decoded, err := batch.DecodeArchives(ctx, paths, cfg.Workers, progress.Increment)
	progress.Finish()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("decoding inputs: %w", err)
	}

	idx := archive.New()
	var results []*hog.Result
	for _, d := range decoded {
		if d.Err != nil {
			slog.Error("Failed to read input", "path", d.Path, "error", d.Err)
			stats.Failed++
			continue
		}

		switch d.Result.Kind {
		case hog.KindArchive:
			slog.Info("Read archive", "path", d.Path, "entries", len(d.Result.Entries))
			stats.Archives++
		case hog.KindPassthrough:
			slog.Debug("Added loose file", "path", d.Path)
			stats.Passthrough++
		}

		idx.InsertResult(d.Result)
		results = append(results, d.Result)
	}

	stats.Entries = idx.Len()
	stats.EndTime = time.Now()

	slog.Debug("Inputs loaded",
		"files", stats.Files,
		"archives", stats.Archives,
		"loose_files", stats.Passthrough,
		"failed", stats.Failed,
		"entries", stats.Entries,
		"duration", utils.Duration(stats.EndTime.Sub(stats.StartTime)))

	return idx, results, stats, nil
}
