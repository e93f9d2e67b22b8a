// Package store provides the vector store abstraction for AdvoAi.
//
// The Store interface decouples ingestion and retrieval from the concrete
// backend. Documents are embedded at insert time and queried by embedding
// distance, where distance = 1 - cosine similarity (lower is more similar).
//
// # Constructor Return Type Pattern
//
// Public constructors return the Store interface rather than concrete
// types, so consumers never couple to BadgerDB specifics and tests can
// substitute fakes without modification:
//
//	st, err := badger.NewStore(backend, embedder)  // returns store.Store
//
// # Thread Safety
//
// Implementations must be safe for concurrent use; the backend serializes
// its own writes.
package store
