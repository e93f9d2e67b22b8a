// Package mock provides test double implementations of the ai interfaces.
//
// This package contains mock implementations of ai.Embedder, ai.Generator,
// ai.RelevanceJudge and ai.Provider for use in unit tests. The mocks allow
// tests to run without external AI service dependencies and enable
// controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	provider := mock.NewProvider()
//	vector, err := provider.Embedder().EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	judge := mock.NewRelevanceJudge()
//	judge.JudgeRelevanceFunc = func(ctx context.Context, title string) (bool, error) {
//	    return strings.Contains(title, "subsidiya"), nil
//	}
//
// # Default Behavior
//
//   - Embedder: returns deterministic unit vectors based on a text hash
//   - Generator: echoes a canned answer mentioning the user prompt length
//   - RelevanceJudge: treats every non-empty title as relevant
package mock
