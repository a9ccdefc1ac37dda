package watcher

import (
	"context"
	"slices"
	"time"
)

// FlushFunc receives the sorted set of files changed during one burst
type FlushFunc func(ctx context.Context, files []string)

// Debouncer groups file changes into bursts separated by a quiet period.
// Flushes run on the Run goroutine, so a rebuild never overlaps the next one.
type Debouncer struct {
	quiet   time.Duration
	flush   FlushFunc
	changes chan string
	done    chan struct{}
}

func NewDebouncer(quiet time.Duration, flush FlushFunc) *Debouncer {
	return &Debouncer{
		quiet:   quiet,
		flush:   flush,
		changes: make(chan string),
		done:    make(chan struct{}),
	}
}

// Run collects changes until ctx ends. A burst still pending at that point is dropped.
func (d *Debouncer) Run(ctx context.Context) {
	defer close(d.done)

	timer := time.NewTimer(d.quiet)
	timer.Stop()
	defer timer.Stop()

	var (
		pending = make(map[string]struct{})
		fire    <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return
		case file := <-d.changes:
			pending[file] = struct{}{}
			timer.Reset(d.quiet)
			fire = timer.C
		case <-fire:
			fire = nil
			files := make([]string, 0, len(pending))
			for f := range pending {
				files = append(files, f)
			}
			slices.Sort(files)
			clear(pending)

			d.flush(ctx, files)
		}
	}
}

// Add records a change. It returns immediately once Run has stopped.
func (d *Debouncer) Add(file string) {
	select {
	case d.changes <- file:
	case <-d.done:
	}
}
