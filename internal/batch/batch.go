package batch

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/wastetrack/slips-tracker/constants"
	"github.com/wastetrack/slips-tracker/internal/entity"
)

// Processor is the extraction behavior the runner depends on.
type Processor interface {
	Extract(ctx context.Context, image []byte, slipType constants.SlipType) (*entity.ExtractionResult, error)
}

// Result is the per-file outcome of a batch run.
type Result struct {
	Path      string
	Fields    entity.ExtractedFields
	Duplicate bool
	Err       string
}

// Stats summarizes a directory run.
type Stats struct {
	Scanned    uint32
	Matched    uint32
	Succeeded  uint32
	Duplicates uint32
	Failed     uint32
}

// Runner walks a directory of slip captures and extracts them concurrently.
type Runner struct {
	proc    Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration
}

type Option func(*Runner)

func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func NewRunner(proc Processor, logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Runner{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run walks root, filters by the accepted image extensions, skips hidden
// entries if requested, and extracts every matching file with the given
// slip type. Per-file failures land in the result list, not in the error.
func (r *Runner) Run(ctx context.Context, root string, slipType constants.SlipType, skipHidden bool) ([]Result, Stats, error) {
	var stats Stats
	if strings.TrimSpace(root) == "" {
		return nil, stats, errors.New("root path is required")
	}
	if !slipType.Valid() {
		return nil, stats, errors.New("unknown slip type")
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if skipHidden && strings.HasPrefix(name, ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		stats.Scanned++
		ext := constants.NormalizeExt(filepath.Ext(name))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil
		}
		stats.Matched++
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	jobs := make(chan string)
	results := make([]Result, 0, len(paths))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for path := range jobs {
				res := r.processOne(ctx, path, slipType)
				mu.Lock()
				results = append(results, res)
				switch {
				case res.Err != "":
					stats.Failed++
				case res.Duplicate:
					stats.Duplicates++
					stats.Succeeded++
				default:
					stats.Succeeded++
				}
				mu.Unlock()

				if res.Err != "" {
					r.logger.Error("batch.file.failed", "worker_id", workerID, "path", path, "error", res.Err)
				} else {
					r.logger.Info("batch.file.ok", "worker_id", workerID, "path", path, "duplicate", res.Duplicate)
				}
			}
		}(i + 1)
	}

	for _, p := range paths {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return results, stats, ctx.Err()
		case jobs <- p:
		}
	}
	close(jobs)
	wg.Wait()

	r.logger.Info("batch.run.done",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"duplicates", stats.Duplicates,
		"failed", stats.Failed,
	)
	return results, stats, nil
}

func (r *Runner) processOne(ctx context.Context, path string, slipType constants.SlipType) Result {
	out := Result{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		out.Err = err.Error()
		return out
	}

	fctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.proc.Extract(fctx, data, slipType)
	if err != nil {
		out.Err = err.Error()
		return out
	}
	out.Fields = res.Fields
	out.Duplicate = res.Duplicate
	return out
}
