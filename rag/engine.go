package rag

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/doniyor117/AdvoAi/ai"
	"github.com/doniyor117/AdvoAi/core"
	"github.com/doniyor117/AdvoAi/store"
)

const (
	defaultTopK = 5

	// excerptLength bounds source excerpts; longer passages are cut and
	// suffixed with an ellipsis, so the result never exceeds 303 runes.
	excerptLength = 300
)

// Answer is the assembled response to one chat query.
type Answer struct {
	Response string
	Sources  []core.Source
}

// Engine retrieves passages and generates answers.
type Engine struct {
	store     store.Store
	generator ai.Generator
	topK      int
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithTopK sets how many passages are retrieved per query.
// Default is 5.
func WithTopK(k int) Option {
	return func(e *Engine) error {
		if k < 1 {
			k = 1
		}
		e.topK = k
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a retrieval engine.
func NewEngine(st store.Store, generator ai.Generator, opts ...Option) (*Engine, error) {
	if st == nil {
		return nil, ErrStoreRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	e := &Engine{
		store:     st,
		generator: generator,
		topK:      defaultTopK,
		logger:    slog.Default().With("component", "rag"),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Answer retrieves the passages nearest to query, assembles the prompt and
// generates an answer. Retrieval failures are returned as errors;
// generation failures degrade to an apology in the answer body.
func (e *Engine) Answer(ctx context.Context, query string, businessContext *core.BusinessContext) (*Answer, error) {
	matches, err := e.store.Query(ctx, query, e.topK)
	if err != nil {
		return nil, fmt.Errorf("querying vector store: %w", err)
	}

	sources := make([]core.Source, 0, len(matches))
	contextTexts := make([]string, 0, len(matches))

	for _, match := range matches {
		sources = append(sources, core.Source{
			Title:          metadataOr(match.Metadata, "title", "Nomsiz hujjat"),
			DocumentID:     documentID(match.Metadata),
			URL:            match.Metadata["source_url"],
			RelevanceScore: relevanceScore(match.Distance),
			Excerpt:        excerpt(match.Document),
		})
		contextTexts = append(contextTexts, match.Document)
	}

	contextBlock := emptyContextMarker
	if len(contextTexts) > 0 {
		contextBlock = strings.Join(contextTexts, contextDelimiter)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, query, businessInfo(businessContext), contextBlock)

	response, err := e.generator.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		e.logger.Warn("answer generation failed", "err", err)
		response = fmt.Sprintf(apologyTemplate, err)
	}

	return &Answer{
		Response: response,
		Sources:  sources,
	}, nil
}

// relevanceScore converts embedding distance to a score in [0, 1],
// rounded to 3 decimals.
func relevanceScore(distance float32) float64 {
	score := 1 - float64(distance)
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return math.Round(score*1000) / 1000
}

// excerpt returns the first 300 runes of the passage, with an ellipsis
// when the passage is longer.
func excerpt(document string) string {
	runes := []rune(document)
	if len(runes) <= excerptLength {
		return document
	}
	return string(runes[:excerptLength]) + "..."
}

// businessInfo renders the non-empty business attributes as a labeled
// prompt fragment, or "" when nothing is provided.
func businessInfo(bc *core.BusinessContext) string {
	if bc == nil {
		return ""
	}

	var parts []string
	if bc.Industry != "" {
		parts = append(parts, fmt.Sprintf("Soha: %s", bc.Industry))
	}
	if bc.EmployeeCount != nil {
		parts = append(parts, fmt.Sprintf("Xodimlar: %d", *bc.EmployeeCount))
	}
	if bc.Region != "" {
		parts = append(parts, fmt.Sprintf("Hudud: %s", bc.Region))
	}
	if bc.YearsInOperation != nil {
		parts = append(parts, fmt.Sprintf("Faoliyat yili: %d", *bc.YearsInOperation))
	}
	if len(parts) == 0 {
		return ""
	}

	return fmt.Sprintf("\n\nFoydalanuvchi biznes ma'lumotlari: %s", strings.Join(parts, ", "))
}

func metadataOr(metadata map[string]string, key, fallback string) string {
	if value := metadata[key]; value != "" {
		return value
	}
	return fallback
}

// documentID resolves the source document id: decree_id first, then
// document_id, then "N/A".
func documentID(metadata map[string]string) string {
	if id := metadata["decree_id"]; id != "" {
		return id
	}
	if id := metadata["document_id"]; id != "" {
		return id
	}
	return "N/A"
}
