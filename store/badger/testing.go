package badger

import (
	"github.com/doniyor117/AdvoAi/ai"
	"github.com/doniyor117/AdvoAi/store"
)

// NewMemoryStore creates an in-memory vector store for testing.
// Caller must close the store when done (closing the store closes the
// backend).
func NewMemoryStore(embedder ai.Embedder) (store.Store, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}

	st, err := NewStore(backend, embedder)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return st, nil
}
