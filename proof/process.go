package proof

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// ProcessFiles checks every path, each a proof file or a directory of
// proof files, and returns the reports sorted by file name.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine ProofEngine,
	paths []string,
	processor func(ProofEngine, string) (*Report, error),
) ([]*Report, error) {
	var all []*Report
	for _, path := range paths {
		reports, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, reports...)
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].File < all[j].File })
	return all, nil
}

// ProcessPath checks a single proof file, or every proof file below a
// directory using one worker per CPU.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine ProofEngine,
	path string,
	processor func(ProofEngine, string) (*Report, error),
) ([]*Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		report, err := processor(engine, path)
		if err != nil {
			return nil, err
		}
		return []*Report{report}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(filePath string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasDesiredExtension(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", path, err)
	}

	bar := newProgressBar(os.Stderr, len(files), path)

	var (
		mu      sync.Mutex
		reports = make([]*Report, 0, len(files))
		wg      sync.WaitGroup
	)
	sem := make(chan struct{}, runtime.NumCPU())

	for _, filePath := range files {
		select {
		case <-ctx.Done():
			wg.Wait()
			return reports, ctx.Err()
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(fp string) {
			defer wg.Done()
			defer func() { <-sem }()

			report, err := processor(engine, fp)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				report = &Report{File: fp, Err: err}
			}
			mu.Lock()
			reports = append(reports, report)
			mu.Unlock()
			_ = bar.Add(1)
		}(filePath)
	}
	wg.Wait()
	_ = bar.Finish()

	return reports, ctx.Err()
}

// ProcessFile checks the proof file at path.
func ProcessFile(engine ProofEngine, path string) (*Report, error) {
	return engine.Run(path)
}

// ProcessSource checks an in-memory proof.
func ProcessSource(engine ProofEngine, name string, data []byte) (*Report, error) {
	return engine.RunSource(name, data)
}

func newProgressBar(w io.Writer, n int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
