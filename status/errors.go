package status

import "errors"

var (
	// ErrTimeout is returned by Queue.Next when no event arrives within
	// the wait window. Callers typically emit a heartbeat and retry.
	ErrTimeout = errors.New("timed out waiting for event")

	// ErrUnknownJob is returned by Bus.Queue for a job id with no queue.
	ErrUnknownJob = errors.New("no status queue for job")
)
