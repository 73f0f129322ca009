package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// Job is a periodic task. A zero Timeout lets a run last until the next tick.
type Job struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Run      func(ctx context.Context) error
}

// Service runs registered jobs on their own tickers until the context is done.
type Service struct {
	jobs []Job
	wg   sync.WaitGroup
}

func NewService() *Service {
	return &Service{}
}

// Add registers j when enabled is true.
func (s *Service) Add(enabled bool, j Job) *Service {
	if !enabled {
		return s
	}

	if j.Interval <= 0 {
		panic(fmt.Sprintf("job %q: non-positive interval %s", j.Name, j.Interval))
	}

	s.jobs = append(s.jobs, j)

	return s
}

// Start runs every job once right away and then on each tick.
func (s *Service) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)

		go s.loop(ctx, j)
	}
}

func (s *Service) loop(ctx context.Context, j Job) {
	defer s.wg.Done()

	l := slog.Default().With("job", j.Name)

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		started := time.Now()

		if err := s.runOnce(ctx, l, j); err != nil {
			l.ErrorContext(ctx, "job failed", "error", err, "took", time.Since(started))
		} else {
			l.DebugContext(ctx, "job done", "took", time.Since(started))
		}

		select {
		case <-ctx.Done():
			l.DebugContext(ctx, "job stopped")
			return
		case <-ticker.C:
		}
	}
}

func (s *Service) runOnce(ctx context.Context, l *slog.Logger, j Job) (err error) {
	if j.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			l.ErrorContext(ctx, "job panic", "error", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return j.Run(ctx)
}

// Stop waits for running jobs. Cancel the Start context first.
func (s *Service) Stop() {
	s.wg.Wait()
}
