package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/nao1215/shipreport/internal/model"
	"github.com/nao1215/shipreport/internal/report"
	"golang.org/x/sync/errgroup"
)

const (
	// defaultConcurrency is used when no WithConcurrency option is given.
	defaultConcurrency = 4

	dirPerm  = 0750
	filePerm = 0600
)

// ErrNoFormats is returned when Export is called without any format.
var ErrNoFormats = errors.New("no formats to export")

// Result describes one written report file.
type Result struct {
	// Format is the format the file was rendered in.
	Format report.Format

	// Path is the path of the written file.
	Path string

	// Bytes is the size of the written report.
	Bytes int
}

// Exporter writes the same shipment list in several formats.
type Exporter struct {
	// concurrency is the maximum number of formats rendered at once.
	concurrency int

	logger *slog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithConcurrency sets the maximum number of formats rendered at once.
// Non-positive values are ignored.
func WithConcurrency(n int) Option {
	return func(e *Exporter) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// New creates an Exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{concurrency: defaultConcurrency}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e
}

// Path returns the file path Export uses for format f.
func Path(dir, basename string, f report.Format) string {
	return filepath.Join(dir, basename+"."+f.Extension())
}

// Export renders shipments in every format and writes the reports to dir.
// Results are returned in the order of formats. On error, files already
// written are left in place and no results are returned.
func (e *Exporter) Export(ctx context.Context, dir, basename string, formats []report.Format, shipments []model.Shipment) ([]Result, error) {
	if len(formats) == 0 {
		return nil, ErrNoFormats
	}

	generators := make([]*report.Generator, len(formats))
	for i, f := range formats {
		g, err := report.NewGenerator(f)
		if err != nil {
			return nil, err
		}
		generators[i] = g
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	e.logger.Info("starting export",
		"dir", dir,
		"formats", len(formats),
		"shipments", len(shipments),
		"concurrency", e.concurrency,
	)
	startTime := time.Now()

	// Each goroutine writes only its own index.
	results := make([]Result, len(formats))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, gen := range generators {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			path := Path(dir, basename, gen.Format())
			out := gen.GenerateReport(shipments)

			if err := os.WriteFile(path, []byte(out), filePerm); err != nil {
				return fmt.Errorf("failed to write %s report: %w", gen.Format(), err)
			}

			e.logger.Debug("report written",
				"format", gen.Format().String(),
				"path", path,
				"bytes", len(out),
			)

			results[i] = Result{Format: gen.Format(), Path: path, Bytes: len(out)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Info("export complete",
		"files", len(results),
		"elapsed", time.Since(startTime),
	)

	return results, nil
}
