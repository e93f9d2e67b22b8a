package scout

import "errors"

var (
	// ErrStoreRequired is returned when no vector store is provided.
	ErrStoreRequired = errors.New("vector store is required")

	// ErrJudgeRequired is returned when no relevance judge is provided.
	ErrJudgeRequired = errors.New("relevance judge is required")

	// ErrSearchProviderRequired is returned when no search provider is provided.
	ErrSearchProviderRequired = errors.New("search provider is required")

	// ErrScraperRequired is returned when no scraper is provided.
	ErrScraperRequired = errors.New("scraper is required")

	// ErrPipelineRequired is returned when no pipeline is provided.
	ErrPipelineRequired = errors.New("pipeline is required")

	// ErrBusRequired is returned when no status bus is provided.
	ErrBusRequired = errors.New("status bus is required")
)
