package status

import "time"

// EventType classifies a status event by pipeline stage or outcome.
type EventType string

const (
	// EventSearch reports search-stage progress.
	EventSearch EventType = "search"

	// EventJudge reports a relevance verdict for one candidate.
	EventJudge EventType = "judge"

	// EventIngest reports scrape/chunk/index progress for one document.
	EventIngest EventType = "ingest"

	// EventComplete is the terminal event of a successful run.
	EventComplete EventType = "complete"

	// EventError reports an item failure, or terminates the run when fatal.
	EventError EventType = "error"

	// EventHeartbeat is synthesized by consumers on idle streams.
	// It is never published to a queue.
	EventHeartbeat EventType = "heartbeat"
)

// Terminal reports whether the event ends the stream.
func (t EventType) Terminal() bool {
	return t == EventComplete || t == EventError
}

// Details carries the optional per-item fields of an event.
type Details struct {
	DocumentID string `json:"document_id,omitempty"`
	Title      string `json:"title,omitempty"`
	URL        string `json:"url,omitempty"`
	Relevance  *bool  `json:"relevance,omitempty"`

	// Progress is 0..100 and non-decreasing within a run.
	Progress int `json:"progress"`

	// Ingested and Checked are set on the terminal complete event only.
	Ingested int `json:"ingested,omitempty"`
	Checked  int `json:"checked,omitempty"`
}

// Event is one progress or outcome message from a discovery job.
type Event struct {
	Type      EventType `json:"event_type"`
	Message   string    `json:"message"`
	Details   Details   `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEvent builds an event stamped with the current time.
func NewEvent(t EventType, message string, details Details) Event {
	return Event{
		Type:      t,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// Heartbeat builds a synthetic keep-alive event.
func Heartbeat() Event {
	return NewEvent(EventHeartbeat, "waiting for updates", Details{})
}
