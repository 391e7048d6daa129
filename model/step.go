package model

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Scheduler advances a GridState one tick at a time, spreading the cells over parallel workers
type Scheduler struct {
	workers int
	logger  *slog.Logger

	// called before each cell is computed; a non-nil error aborts the step
	cellHook func(x, y int) error
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithWorkers sets the number of parallel workers, values below 1 fall back to runtime.NumCPU
func WithWorkers(n int) Option {
	return func(sc *Scheduler) {
		if n > 0 {
			sc.workers = n
		}
	}
}

// WithLogger sets the logger used for step diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(sc *Scheduler) {
		if logger != nil {
			sc.logger = logger
		}
	}
}

func NewScheduler(opts ...Option) *Scheduler {
	sc := &Scheduler{
		workers: runtime.NumCPU(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// log returns the configured logger, the default one for a zero Scheduler
func (sc *Scheduler) log() *slog.Logger {
	if sc.logger == nil {
		return slog.Default()
	}
	return sc.logger
}

// Workers returns the configured worker count
func (sc *Scheduler) Workers() int {
	return sc.workers
}

// Step computes the next tick of s and commits the buffer swap. A zero Scheduler runs
// with a single worker and the default logger.
//
// Workers read only the current buffer and each writes a disjoint block of lines of the
// next buffer. The swap happens after every worker has finished; if any worker fails the
// swap is skipped and a *StepFault is returned, leaving s as it was before the call.
func (sc *Scheduler) Step(ctx context.Context, s *GridState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return &StepFault{Tick: s.tick, Cause: err}
	}

	var (
		n              = s.size
		tick           = s.tick
		cur            = s.buffers[s.currentIndex()]
		next           = s.buffers[s.nextIndex()]
		numWorkers     = min(max(sc.workers, 1), n)
		linesPerWorker = (n + numWorkers - 1) / numWorkers // Ceiling division
	)

	s.beginStep()
	eg, egCtx := errgroup.WithContext(ctx)

	for i := range numWorkers {
		var (
			startLine = i * linesPerWorker
			endLine   = min(startLine+linesPerWorker, n)
		)
		if startLine >= n {
			break
		}

		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.Errorf("[Step] worker for lines %d-%d panicked: %v", startLine, endLine, r)
				}
			}()

			for x := startLine; x < endLine; x++ {
				if err := egCtx.Err(); err != nil {
					return err
				}
				for y := 0; y < n; y++ {
					if sc.cellHook != nil {
						if err := sc.cellHook(x, y); err != nil {
							return err
						}
					}
					idx := x*n + y
					next[idx] = rules.NextValue(cur[idx], CountNeighbors(cur, x, y, n))
				}
				s.markWritten(1)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		sc.log().Warn("step aborted, swap not committed", "tick", tick, "error", err)
		return &StepFault{Tick: tick, Cause: err}
	}

	if err := s.commitSwap(); err != nil {
		sc.log().Warn("step incomplete, swap not committed", "tick", tick, "error", err)
		return &StepFault{Tick: tick, Cause: err}
	}

	sc.log().Debug("step committed", "tick", s.tick, "workers", numWorkers)
	return nil
}
