package parser

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/es-debug/webstats/internal/domain"
	"golang.org/x/sync/errgroup"
)

type Merger interface {
	Merge(counters domain.Counters)
}

// lockedWriter keeps each Write whole when several workers share one output.
type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func newLockedWriter(w io.Writer) lockedWriter {
	return lockedWriter{
		mu: &sync.Mutex{},
		w:  w,
	}
}

func (l lockedWriter) Write(b []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.w.Write(b)
}

// ParseFile parses the file at path and merges its counters exactly once.
// Nothing is merged when the file cannot be opened or read to the end.
func (p *Parser) ParseFile(ctx context.Context, path string, events io.Writer, merger Merger) error {
	logger := p.logger.With(slog.String("path", path))

	f, err := p.fs.Open(path)
	if err != nil {
		logger.Debug("open file", slog.Any("error", err))

		if errors.Is(err, fs.ErrNotExist) {
			return NewErrFileNotFound(path)
		}

		return NewErrFileUnreadable(path, err)
	}
	defer f.Close()

	counters, err := p.Parse(ctx, f, events)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}

		logger.Debug("read file", slog.Any("error", err))

		return NewErrFileUnreadable(path, err)
	}

	merger.Merge(counters)

	logger.Info("file merged",
		slog.Int64("gets", counters.TotalGets),
		slog.Int64("bytes", counters.TotalBytes),
	)

	return nil
}

// ParseFiles runs one worker per path and waits for all of them. The first
// failing worker cancels the rest and its error is returned.
func (p *Parser) ParseFiles(ctx context.Context, paths []string, events io.Writer, merger Merger) error {
	events = newLockedWriter(events)

	eg, ctx := errgroup.WithContext(ctx)
	for _, path := range paths {
		path := path
		eg.Go(func() error {
			return p.ParseFile(ctx, path, events, merger)
		})
	}

	return eg.Wait()
}
