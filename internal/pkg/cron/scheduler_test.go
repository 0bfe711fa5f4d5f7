package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsJobOnStart(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	var ran atomic.Int32
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})

	s.Start()
	s.Stop()

	assert.GreaterOrEqual(t, ran.Load(), int32(1))
}

func TestScheduler_AddJobAfterStartIsIgnored(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	s.Start()

	var ran atomic.Int32
	s.AddJob("late", time.Millisecond, func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})
	s.Stop()

	assert.Equal(t, int32(0), ran.Load())
}

func TestScheduler_FailingJobKeepsScheduler(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	var ran atomic.Int32
	s.AddJob("boom", time.Hour, func(ctx context.Context) error {
		ran.Add(1)
		return assert.AnError
	})
	s.AddJob("ok", time.Hour, func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})

	s.Start()
	s.Stop()

	assert.Equal(t, int32(2), ran.Load())
}
