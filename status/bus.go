package status

import "sync"

// Bus maps job ids to their status queues.
type Bus struct {
	mu     sync.RWMutex
	queues map[string]*Queue
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		queues: make(map[string]*Queue),
	}
}

// Register creates and returns the queue for a job id.
// Registering an id twice replaces the previous queue.
func (b *Bus) Register(jobID string) *Queue {
	q := NewQueue()

	b.mu.Lock()
	b.queues[jobID] = q
	b.mu.Unlock()

	return q
}

// Queue looks up the queue for a job id.
func (b *Bus) Queue(jobID string) (*Queue, error) {
	b.mu.RLock()
	q, ok := b.queues[jobID]
	b.mu.RUnlock()

	if !ok {
		return nil, ErrUnknownJob
	}
	return q, nil
}

// Release removes a job's queue, discarding any buffered events.
func (b *Bus) Release(jobID string) {
	b.mu.Lock()
	delete(b.queues, jobID)
	b.mu.Unlock()
}
