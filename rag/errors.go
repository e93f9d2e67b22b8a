package rag

import "errors"

var (
	// ErrStoreRequired is returned when no vector store is provided.
	ErrStoreRequired = errors.New("vector store is required")

	// ErrGeneratorRequired is returned when no generator is provided.
	ErrGeneratorRequired = errors.New("generator is required")
)
