package mock

import (
	"context"
	"fmt"

	"github.com/doniyor117/AdvoAi/ai"
)

// Generator is a test double for ai.Generator.
type Generator struct {
	// CompleteFunc is called by Complete if set.
	CompleteFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	callCount int
}

// NewGenerator creates a mock generator with a canned default answer.
func NewGenerator() *Generator {
	return &Generator{}
}

// Complete returns a canned answer unless CompleteFunc is set.
func (m *Generator) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.callCount++

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, systemPrompt, userPrompt)
	}

	return fmt.Sprintf("mock answer (%d prompt chars)", len(userPrompt)), nil
}

// CallCount returns the number of times Complete was called.
func (m *Generator) CallCount() int {
	return m.callCount
}

// RelevanceJudge is a test double for ai.RelevanceJudge.
type RelevanceJudge struct {
	// JudgeRelevanceFunc is called by JudgeRelevance if set.
	JudgeRelevanceFunc func(ctx context.Context, title string) (bool, error)

	callCount int
}

// NewRelevanceJudge creates a mock judge that accepts every non-empty title.
func NewRelevanceJudge() *RelevanceJudge {
	return &RelevanceJudge{}
}

// JudgeRelevance treats every non-empty title as relevant unless
// JudgeRelevanceFunc is set.
func (m *RelevanceJudge) JudgeRelevance(ctx context.Context, title string) (bool, error) {
	m.callCount++

	if m.JudgeRelevanceFunc != nil {
		return m.JudgeRelevanceFunc(ctx, title)
	}

	return title != "", nil
}

// CallCount returns the number of times JudgeRelevance was called.
func (m *RelevanceJudge) CallCount() int {
	return m.callCount
}

// Provider is a test double for ai.Provider aggregating mock services.
type Provider struct {
	embedder  *Embedder
	generator *Generator
	judge     *RelevanceJudge
}

// NewProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production
// constructors. Use the Mock* accessors for test assertions.
func NewProvider() ai.Provider {
	return &Provider{
		embedder:  NewEmbedder(),
		generator: NewGenerator(),
		judge:     NewRelevanceJudge(),
	}
}

// Embedder returns the mock embedder.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Generator returns the mock generator.
func (p *Provider) Generator() ai.Generator {
	return p.generator
}

// RelevanceJudge returns the mock judge.
func (p *Provider) RelevanceJudge() ai.RelevanceJudge {
	return p.judge
}

// Close is a no-op for the mock provider.
func (p *Provider) Close() error {
	return nil
}

// MockEmbedder returns the underlying mock embedder for test assertions.
func (p *Provider) MockEmbedder() *Embedder {
	return p.embedder
}

// MockGenerator returns the underlying mock generator for test assertions.
func (p *Provider) MockGenerator() *Generator {
	return p.generator
}

// MockJudge returns the underlying mock judge for test assertions.
func (p *Provider) MockJudge() *RelevanceJudge {
	return p.judge
}
