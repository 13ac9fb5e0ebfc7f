// Package batch decodes many input files concurrently while keeping results
// in the order the caller listed them.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/jchantrell/hogtool/internal/hog"
	"github.com/jchantrell/hogtool/internal/ogf"
)

// DefaultWorkers is used when a caller passes a worker count below 1
const DefaultWorkers = 4

// ProgressFunc is called once per finished file, from worker goroutines
type ProgressFunc func(path string)

// ArchiveResult is the outcome of decoding one archive or passthrough file
type ArchiveResult struct {
	Path   string
	Result *hog.Result
	Err    error
}

// TextureResult is the outcome of decoding one texture
type TextureResult struct {
	Path    string
	Texture *ogf.Texture
	Err     error
}

// DecodeArchives reads and decodes every path. A failing file is reported in
// its result and does not stop the others. Results line up with paths.
func DecodeArchives(ctx context.Context, paths []string, workers int, progress ProgressFunc) ([]ArchiveResult, error) {
	results := make([]ArchiveResult, len(paths))

	err := run(ctx, len(paths), workers, func(i int) {
		path := paths[i]
		results[i].Path = path

		data, err := os.ReadFile(path)
		if err != nil {
			results[i].Err = fmt.Errorf("reading file: %w", err)
		} else {
			results[i].Result, results[i].Err = hog.DecodeFile(path, data)
		}

		if progress != nil {
			progress(filepath.Base(path))
		}
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// DecodeTextures reads and decodes every path as an OGF texture.
// Results line up with paths.
func DecodeTextures(ctx context.Context, paths []string, workers int, progress ProgressFunc) ([]TextureResult, error) {
	results := make([]TextureResult, len(paths))

	err := run(ctx, len(paths), workers, func(i int) {
		path := paths[i]
		results[i].Path = path

		data, err := os.ReadFile(path)
		if err != nil {
			results[i].Err = fmt.Errorf("reading file: %w", err)
		} else {
			results[i].Texture, results[i].Err = ogf.Decode(data)
		}

		if progress != nil {
			progress(filepath.Base(path))
		}
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// run calls fn for 0..n-1 on at most workers goroutines. Only cancellation
// of ctx is treated as an error.
func run(ctx context.Context, n, workers int, fn func(i int)) error {
	if workers < 1 {
		workers = DefaultWorkers
	}

	slog.Debug("Starting batch", "files", n, "workers", workers)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := 0; i < n; i++ {
		if egCtx.Err() != nil {
			break
		}
		i := i // per-iteration copy; go directive is pinned below 1.22
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("batch canceled: %w", err)
	}
	return ctx.Err()
}
