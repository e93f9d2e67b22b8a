package badger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/dgraph-io/badger/v4"

	"github.com/doniyor117/AdvoAi/ai"
	"github.com/doniyor117/AdvoAi/store"
)

// Store implements store.Store on BadgerDB. Documents are embedded at
// insert time; queries scan stored vectors and rank by cosine distance.
type Store struct {
	backend  *Backend
	embedder ai.Embedder
	logger   *slog.Logger
}

var _ store.Store = (*Store)(nil)

// NewStore creates a vector store on the given backend.
// The store takes ownership of the backend; Close closes it.
func NewStore(backend *Backend, embedder ai.Embedder) (store.Store, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend is required")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder is required")
	}

	return &Store{
		backend:  backend,
		embedder: embedder,
		logger:   slog.Default().With("component", "vectorstore"),
	}, nil
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Add embeds and upserts a batch of documents. Existing ids are
// overwritten and their source_url index entries refreshed, so
// re-seeding the same documents is idempotent.
func (s *Store) Add(ctx context.Context, documents []string, metadatas []map[string]string, ids []string) error {
	if s.backend.IsClosed() {
		return store.ErrStoreClosed
	}
	if len(documents) != len(ids) || len(metadatas) != len(ids) {
		return store.ErrBatchMismatch
	}
	if len(documents) == 0 {
		return nil
	}

	vectors, err := s.embedder.EmbedTexts(ctx, documents)
	if err != nil {
		return fmt.Errorf("embedding documents: %w", err)
	}
	if len(vectors) != len(documents) {
		return fmt.Errorf("embedder returned %d vectors for %d documents", len(vectors), len(documents))
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		for i, id := range ids {
			record := &store.Record{
				ID:       id,
				Document: documents[i],
				Metadata: metadatas[i],
				Vector:   vectors[i],
			}

			key := makeRecordKey(id)

			// Drop a stale URL index entry when overwriting a record
			// whose source_url changed.
			old, err := s.readRecord(tx, key)
			if err != nil {
				return err
			}
			if old != nil {
				oldURL := old.Metadata["source_url"]
				if oldURL != "" && oldURL != record.Metadata["source_url"] {
					if err := tx.Delete(makeSourceURLKey(oldURL, id)); err != nil {
						return err
					}
				}
			}

			if err := tx.Set(key, store.MarshalRecord(record)); err != nil {
				return err
			}

			if url := record.Metadata["source_url"]; url != "" {
				// Value holds the full URL so lookups can reject hash collisions.
				if err := tx.Set(makeSourceURLKey(url, id), []byte(url)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)
}

// Query embeds text and returns up to k matches ordered by ascending
// cosine distance.
func (s *Store) Query(ctx context.Context, text string, k int) ([]store.Match, error) {
	if s.backend.IsClosed() {
		return nil, store.ErrStoreClosed
	}
	if k <= 0 {
		return nil, store.ErrInvalidQuery
	}

	queryVector, err := s.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	var matches []store.Match

	err = s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			var record *store.Record
			err := item.Value(func(val []byte) error {
				var err error
				record, err = store.UnmarshalRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record == nil || len(record.Vector) == 0 {
				continue
			}

			matches = append(matches, store.Match{
				ID:       record.ID,
				Document: record.Document,
				Metadata: record.Metadata,
				Distance: 1 - cosineSimilarity(queryVector, record.Vector),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(matches, func(a, b store.Match) int {
		if a.Distance < b.Distance {
			return -1
		}
		if a.Distance > b.Distance {
			return 1
		}
		return 0
	})

	if len(matches) > k {
		matches = matches[:k]
	}

	return matches, nil
}

// Get returns the ids of records whose metadata field equals value.
// source_url lookups use the hash index; other fields fall back to a
// full scan.
func (s *Store) Get(ctx context.Context, field, value string) ([]string, error) {
	if s.backend.IsClosed() {
		return nil, store.ErrStoreClosed
	}
	if field == "" {
		return nil, store.ErrInvalidQuery
	}

	if field == "source_url" {
		return s.getBySourceURL(value)
	}
	return s.getByScan(field, value)
}

func (s *Store) getBySourceURL(url string) ([]string, error) {
	var ids []string

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialSourceURLKey(url)

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			// Reject hash collisions by comparing the stored URL.
			err := item.Value(func(val []byte) error {
				if !bytes.Equal(val, []byte(url)) {
					return nil
				}
				key := item.Key()
				// Record id follows "prefix:hash:".
				ids = append(ids, string(key[len(prefix)+1:]))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (s *Store) getByScan(field, value string) ([]string, error) {
	var ids []string

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			var record *store.Record
			err := item.Value(func(val []byte) error {
				var err error
				record, err = store.UnmarshalRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record != nil && record.Metadata[field] == value {
				ids = append(ids, record.ID)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s.backend.IsClosed() {
		return 0, store.ErrStoreClosed
	}

	var count int

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkRecordPrefix)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (s *Store) readRecord(tx *badger.Txn, key []byte) (*store.Record, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *store.Record
	err = item.Value(func(val []byte) error {
		var err error
		record, err = store.UnmarshalRecord(val)
		return err
	})
	return record, err
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Returns 0 for zero-magnitude or mismatched inputs.
func cosineSimilarity(a, b []float32) float32 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < minLen; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
