package tasks

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is a named unit of best-effort background work. Failures are logged,
// never retried and never surfaced to the operation that enqueued them.
type Task struct {
	Name string
	Fn   func(ctx context.Context) error
}

// Queue runs fire-and-forget work decoupled from the request/response cycle.
// The triggering write must already be committed before a task is enqueued;
// a task failing must not affect the trigger. Summary recomputation is the
// main tenant: the projection self-heals on the next natural recompute, so
// dropping work under pressure is acceptable.
type Queue struct {
	tasks   chan Task
	timeout time.Duration
	wg      sync.WaitGroup

	// mu orders sends against close: Enqueue only touches the channel while
	// holding it and the stopped flag is false, so Stop can never close the
	// channel under a concurrent send.
	mu      sync.Mutex
	stopped bool
}

// NewQueue creates a queue with the given number of workers, buffered task
// capacity, and per-task execution budget.
func NewQueue(workers, capacity int, timeout time.Duration) *Queue {
	if workers < 1 {
		workers = 1
	}
	q := &Queue{
		tasks:   make(chan Task, capacity),
		timeout: timeout,
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

// Enqueue submits a task. When the buffer is full or the queue is stopped
// the task is dropped with a warning rather than blocking or panicking in
// the caller.
func (q *Queue) Enqueue(name string, fn func(ctx context.Context) error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		slog.Warn("Task queue stopped, dropping task", "task", name)
		return
	}
	select {
	case q.tasks <- Task{Name: name, Fn: fn}:
	default:
		slog.Warn("Task queue full, dropping task", "task", name)
	}
}

// Stop rejects further tasks, drains what is already buffered, and waits for
// in-flight work to finish. Safe to call more than once.
func (q *Queue) Stop() {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	q.stopped = true
	close(q.tasks)
	q.mu.Unlock()

	q.wg.Wait()
	slog.Info("Task queue stopped")
}

func (q *Queue) worker() {
	defer q.wg.Done()

	for task := range q.tasks {
		q.execute(task)
	}
}

func (q *Queue) execute(task Task) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	start := time.Now()
	if err := task.Fn(ctx); err != nil {
		slog.Error("Background task failed", "task", task.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Background task completed", "task", task.Name, "duration", time.Since(start))
}
