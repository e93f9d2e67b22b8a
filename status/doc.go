// Package status carries progress events from discovery jobs to subscribers.
//
// Each job owns one unbounded queue on the Bus, looked up by job id, so
// concurrent jobs never interleave on the same stream. Producers publish
// with Queue.Publish; a subscriber drains with Queue.Next, which blocks up
// to a timeout and reports ErrTimeout so the caller can emit a heartbeat
// instead of closing the stream.
//
// Delivery is at-most-once per subscriber: events published before a
// subscriber attaches are still queued (the queue is created at job start),
// but nothing is replayed once consumed, and a queue released via
// Bus.Release is gone along with anything still buffered.
package status
