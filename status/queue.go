package status

import (
	"context"
	"sync"
	"time"
)

// Queue is an unbounded FIFO of status events for one job.
// Publish never blocks; Next blocks until an event arrives, the wait
// window elapses, or the context is done.
type Queue struct {
	mu     sync.Mutex
	events []Event
	signal chan struct{}
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		signal: make(chan struct{}, 1),
	}
}

// Publish appends an event to the queue and wakes a waiting consumer.
func (q *Queue) Publish(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// Next returns the oldest queued event. When the queue stays empty for
// the whole wait window it returns ErrTimeout; when ctx is done it
// returns ctx.Err().
func (q *Queue) Next(ctx context.Context, wait time.Duration) (Event, error) {
	timer := time.NewTimer(wait)
	defer timer.Stop()

	for {
		if e, ok := q.pop(); ok {
			return e, nil
		}

		select {
		case <-q.signal:
		case <-timer.C:
			return Event{}, ErrTimeout
		case <-ctx.Done():
			return Event{}, ctx.Err()
		}
	}
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

func (q *Queue) pop() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return Event{}, false
	}
	e := q.events[0]
	q.events = q.events[1:]
	return e, true
}
