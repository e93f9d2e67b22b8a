package store

import "errors"

var (
	// ErrNotFound indicates that the requested record was not found.
	ErrNotFound = errors.New("record not found")

	// ErrStoreClosed indicates that the storage backend is closed.
	ErrStoreClosed = errors.New("store is closed")

	// ErrInvalidQuery indicates invalid query parameters.
	ErrInvalidQuery = errors.New("invalid query parameters")

	// ErrBatchMismatch indicates that the documents, metadatas and ids
	// slices passed to Add differ in length.
	ErrBatchMismatch = errors.New("documents, metadatas and ids lengths differ")

	// ErrSerializationFailed indicates a serialization/deserialization failure.
	ErrSerializationFailed = errors.New("serialization failed")
)
