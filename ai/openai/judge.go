package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/doniyor117/AdvoAi/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	judgeMaxTokens   = 5
	judgeTemperature = 0.0
)

// RelevanceJudge implements ai.RelevanceJudge using OpenAI-compatible chat APIs.
// It asks the model for a single YES/NO verdict on a document title.
type RelevanceJudge struct {
	client llms.Model
	logger *slog.Logger
}

// newRelevanceJudge is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newRelevanceJudge(config *ai.Config) (*RelevanceJudge, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.GenerationHost),
		openai.WithToken(config.APIKey),
		openai.WithModel(config.GenerationModel),
	)
	if err != nil {
		return nil, err
	}

	return &RelevanceJudge{
		client: client,
		logger: slog.Default().With("component", "openai-judge"),
	}, nil
}

// NewRelevanceJudge creates a new relevance judge using the provided
// configuration.
//
// Returns ai.RelevanceJudge interface to enforce abstraction.
func NewRelevanceJudge(config *ai.Config) (ai.RelevanceJudge, error) {
	return newRelevanceJudge(config)
}

// JudgeRelevance classifies a document title as relevant or not.
// An empty title is never relevant.
func (j *RelevanceJudge) JudgeRelevance(ctx context.Context, title string) (bool, error) {
	if strings.TrimSpace(title) == "" {
		return false, nil
	}

	prompt := fmt.Sprintf(relevancePromptTemplate, title)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := j.client.GenerateContent(ctx, content,
		llms.WithTemperature(judgeTemperature),
		llms.WithMaxTokens(judgeMaxTokens),
	)
	if err != nil {
		j.logger.Error("failed to judge relevance", "title", title, "err", err)
		return false, err
	}

	if len(response.Choices) < 1 {
		j.logger.Debug("no choices returned from model")
		return false, ErrNoCompletion
	}

	answer := strings.ToUpper(strings.TrimSpace(response.Choices[0].Content))
	j.logger.Debug("relevance verdict", "title", title, "answer", answer)

	return strings.Contains(answer, "YES"), nil
}
