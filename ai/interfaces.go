package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch. The returned slice contains embeddings in the same order as the
	// input texts. Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator produces an answer from a system instruction and a user prompt.
// Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Complete generates a text completion for the composed prompts.
	// Returns an error if generation fails; callers decide whether that
	// failure is absorbed or surfaced.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// RelevanceJudge decides whether a document title is relevant to business
// financial benefits. Implementations must be thread-safe for concurrent use.
type RelevanceJudge interface {
	// JudgeRelevance classifies a document title. An empty title is never
	// relevant. Returns an error when the classifier itself fails; the
	// discovery pipeline treats such failures as relevant (fail open).
	JudgeRelevance(ctx context.Context, title string) (bool, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder, Generator
// and RelevanceJudge instances sharing configuration and resources.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Generator returns the answer generation service.
	Generator() Generator

	// RelevanceJudge returns the title classification service.
	RelevanceJudge() RelevanceJudge

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
