package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type jobFn func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	fn       jobFn
}

// Scheduler drives the engine's recurring sweeps. Each job runs on its own
// ticker; an error is logged and the job retries at its next tick. The daily
// sweeps tick hourly and gate on a UTC hour themselves, so a restart never
// delays a sweep by more than an hour.
//
// Registration happens during wiring, before Start; the scheduler is not
// meant for adding jobs at runtime.
type Scheduler struct {
	jobs    []job
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// AddJob registers a job. Calls after Start are ignored.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn jobFn) {
	if s.started {
		slog.Warn("Scheduler already started, ignoring job", "job", name)
		return
	}
	s.jobs = append(s.jobs, job{name: name, interval: interval, fn: fn})
	slog.Info("Scheduled job registered", "job", name, "interval", interval)
}

// Start launches every registered job.
func (s *Scheduler) Start() {
	if s.started {
		return
	}
	s.started = true

	for _, j := range s.jobs {
		j := j
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.run(j)
		}()
	}
	slog.Info("Scheduler started", "jobs", len(s.jobs))
}

// Stop cancels the job context and waits for running ticks to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) run(j job) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	// first pass right away so a fresh deploy self-heals without waiting
	// out a full interval
	s.tick(j)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.tick(j)
		}
	}
}

func (s *Scheduler) tick(j job) {
	start := time.Now()
	if err := j.fn(s.ctx); err != nil {
		slog.Error("Scheduled job failed", "job", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Scheduled job completed", "job", j.name, "duration", time.Since(start))
}
