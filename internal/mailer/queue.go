package mailer

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	ErrQueueFull   = errors.New("mail queue full")
	ErrQueueClosed = errors.New("mail queue closed")
)

// Queue delivers messages in the background through a fixed pool of workers.
// Deliver only fails when the queue is full or closed; delivery errors are logged.
type Queue struct {
	next    Transport
	jobs    chan *Message
	running atomic.Int32
	workers int
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewQueue initializes a queue that holds at most size pending messages
func NewQueue(next Transport, workers, size int) *Queue {
	if workers < 1 {
		workers = 1
	}

	zap.L().Debug("Initializing mail queue", zap.Int("workers", workers), zap.Int("size", size))

	return &Queue{
		next:    next,
		jobs:    make(chan *Message, size),
		workers: workers,
	}
}

func (q *Queue) StartWorkerPool() {
	for range q.workers {
		q.wg.Add(1)
		go q.worker()
	}
}

func (q *Queue) worker() {
	defer q.wg.Done()

	for msg := range q.jobs {
		err := q.next.Deliver(context.Background(), msg)
		q.running.Add(-1)

		if err != nil {
			zap.L().Error("Mail delivery failed",
				zap.String("view", msg.View),
				zap.String("to", msg.ToAddress),
				zap.Error(err))
		} else {
			zap.L().Debug("Mail delivered", zap.String("view", msg.View))
		}
	}
}

func (q *Queue) Deliver(_ context.Context, msg *Message) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- msg:
		q.running.Add(1)
		zap.L().Debug("New mail enqueued", zap.Int32("enqueued", q.running.Load()), zap.String("view", msg.View))
		return nil
	default:
		return ErrQueueFull
	}
}

// Pending returns the number of messages waiting for or in delivery
func (q *Queue) Pending() int {
	return int(q.running.Load())
}

// Close stops accepting messages and waits for the workers to drain the queue
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	q.wg.Wait()
}
