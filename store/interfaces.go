package store

import "context"

// Match is one ranked result of a similarity query.
type Match struct {
	// ID is the stored record id, e.g. "PQ-60_0".
	ID string

	// Document is the stored passage text.
	Document string

	// Metadata is the passage metadata as stored at insert time.
	Metadata map[string]string

	// Distance is 1 - cosine similarity to the query. Lower is closer.
	Distance float32
}

// Store indexes document passages by embedding and answers
// nearest-neighbor queries. Implementations must be thread-safe.
type Store interface {
	// Query embeds text and returns up to k matches ordered by
	// ascending distance.
	Query(ctx context.Context, text string, k int) ([]Match, error)

	// Add embeds and upserts a batch of documents. The three slices are
	// parallel; an existing id is overwritten, making re-seeding
	// idempotent.
	Add(ctx context.Context, documents []string, metadatas []map[string]string, ids []string) error

	// Get returns the ids of records whose metadata field equals value.
	// Used for source_url existence checks before judging candidates.
	Get(ctx context.Context, field, value string) ([]string, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Close closes the store and releases resources.
	Close() error
}
