package tasks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueue_ExecutesTasks(t *testing.T) {
	t.Parallel()

	q := NewQueue(2, 16, time.Second)
	var ran atomic.Int32

	for i := 0; i < 5; i++ {
		q.Enqueue("count", func(ctx context.Context) error {
			ran.Add(1)
			return nil
		})
	}
	q.Stop()

	assert.Equal(t, int32(5), ran.Load())
}

func TestQueue_FailureDoesNotStopWorkers(t *testing.T) {
	t.Parallel()

	q := NewQueue(1, 16, time.Second)
	var ran atomic.Int32

	q.Enqueue("boom", func(ctx context.Context) error {
		return errors.New("boom")
	})
	q.Enqueue("after", func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})
	q.Stop()

	assert.Equal(t, int32(1), ran.Load())
}

func TestQueue_EnqueueAfterStopIsDropped(t *testing.T) {
	t.Parallel()

	q := NewQueue(1, 1, time.Second)
	q.Stop()

	var ran atomic.Int32
	assert.NotPanics(t, func() {
		for i := 0; i < 10; i++ {
			q.Enqueue("late", func(ctx context.Context) error {
				ran.Add(1)
				return nil
			})
		}
	})

	assert.Equal(t, int32(0), ran.Load())
}

func TestQueue_StopIsIdempotent(t *testing.T) {
	t.Parallel()

	q := NewQueue(1, 1, time.Second)
	q.Stop()
	assert.NotPanics(t, q.Stop)
}

func TestQueue_StopDuringConcurrentEnqueues(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		q := NewQueue(2, 4, time.Second)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for j := 0; j < 25; j++ {
				q.Enqueue("racer", func(ctx context.Context) error { return nil })
			}
		}()
		q.Stop()
		<-done
	}
}
