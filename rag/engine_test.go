package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doniyor117/AdvoAi/ai/mock"
	"github.com/doniyor117/AdvoAi/core"
	"github.com/doniyor117/AdvoAi/store"
)

// queryStore is a store.Store stub that serves canned matches.
type queryStore struct {
	matches []store.Match
	err     error
}

func (s *queryStore) Query(ctx context.Context, text string, k int) ([]store.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.matches) > k {
		return s.matches[:k], nil
	}
	return s.matches, nil
}

func (s *queryStore) Add(ctx context.Context, documents []string, metadatas []map[string]string, ids []string) error {
	return nil
}

func (s *queryStore) Get(ctx context.Context, field, value string) ([]string, error) {
	return nil, nil
}

func (s *queryStore) Count(ctx context.Context) (int, error) { return len(s.matches), nil }
func (s *queryStore) Close() error                           { return nil }

func newTestEngine(t *testing.T, st store.Store, generator *mock.Generator) *Engine {
	t.Helper()

	e, err := NewEngine(st, generator)
	require.NoError(t, err)
	return e
}

func TestAnswerAssemblesSources(t *testing.T) {
	st := &queryStore{matches: []store.Match{
		{
			ID:       "PQ-60_0",
			Document: "1-modda. Yoshlar tadbirkorligi subsidiyalari.",
			Metadata: map[string]string{
				"title":      "PQ-60",
				"decree_id":  "PQ-60",
				"source_url": "https://lex.uz/docs/100",
			},
			Distance: 0.25,
		},
		{
			ID:       "PD-50_0",
			Document: "Kichik biznes ulushini oshirish chora-tadbirlari.",
			Metadata: map[string]string{},
			Distance: 0.5,
		},
	}}
	generator := mock.NewGenerator()

	var gotUserPrompt string
	generator.CompleteFunc = func(ctx context.Context, system, user string) (string, error) {
		gotUserPrompt = user
		return "PQ-60 bo'yicha subsidiya mavjud.", nil
	}

	e := newTestEngine(t, st, generator)

	answer, err := e.Answer(context.Background(), "Yoshlar uchun qanday imtiyozlar bor?", nil)
	require.NoError(t, err)

	assert.Equal(t, "PQ-60 bo'yicha subsidiya mavjud.", answer.Response)
	require.Len(t, answer.Sources, 2)

	assert.Equal(t, "PQ-60", answer.Sources[0].Title)
	assert.Equal(t, "PQ-60", answer.Sources[0].DocumentID)
	assert.Equal(t, "https://lex.uz/docs/100", answer.Sources[0].URL)
	assert.Equal(t, 0.75, answer.Sources[0].RelevanceScore)

	// Missing metadata falls back to placeholders.
	assert.Equal(t, "Nomsiz hujjat", answer.Sources[1].Title)
	assert.Equal(t, "N/A", answer.Sources[1].DocumentID)

	// Both passages appear in the prompt, in rank order, delimited.
	assert.Contains(t, gotUserPrompt, "1-modda. Yoshlar tadbirkorligi subsidiyalari.")
	assert.Contains(t, gotUserPrompt, "\n\n---\n\n")
	assert.Less(t,
		strings.Index(gotUserPrompt, "1-modda"),
		strings.Index(gotUserPrompt, "Kichik biznes"))
}

func TestRelevanceScoreBounds(t *testing.T) {
	tests := []struct {
		name     string
		distance float32
		want     float64
	}{
		{"identical", 0, 1.0},
		{"opposite", 1, 0.0},
		{"beyond opposite clamps", 1.5, 0.0},
		{"negative distance clamps", -0.2, 1.0},
		{"rounded to 3 decimals", 0.12345, 0.877},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevanceScore(tt.distance))
		})
	}
}

func TestExcerptBounds(t *testing.T) {
	short := strings.Repeat("a", 300)
	assert.Equal(t, short, excerpt(short))

	long := strings.Repeat("b", 301)
	got := excerpt(long)
	assert.Len(t, []rune(got), 303)
	assert.True(t, strings.HasSuffix(got, "..."))

	// Multibyte text is cut on rune boundaries.
	uzbek := strings.Repeat("қ", 400)
	got = excerpt(uzbek)
	assert.Len(t, []rune(got), 303)
}

func TestAnswerEmptyStoreUsesMarker(t *testing.T) {
	st := &queryStore{}
	generator := mock.NewGenerator()

	var gotUserPrompt string
	generator.CompleteFunc = func(ctx context.Context, system, user string) (string, error) {
		gotUserPrompt = user
		return "Hujjat topilmadi.", nil
	}

	e := newTestEngine(t, st, generator)

	answer, err := e.Answer(context.Background(), "savol", nil)
	require.NoError(t, err)
	assert.Empty(t, answer.Sources)
	assert.Contains(t, gotUserPrompt, "Hech qanday tegishli hujjat topilmadi.")
}

func TestAnswerBusinessContextFragment(t *testing.T) {
	st := &queryStore{}
	generator := mock.NewGenerator()

	var gotUserPrompt string
	generator.CompleteFunc = func(ctx context.Context, system, user string) (string, error) {
		gotUserPrompt = user
		return "ok", nil
	}

	e := newTestEngine(t, st, generator)

	employees := 12
	years := 3
	_, err := e.Answer(context.Background(), "savol", &core.BusinessContext{
		Industry:         "IT",
		EmployeeCount:    &employees,
		Region:           "Toshkent",
		YearsInOperation: &years,
	})
	require.NoError(t, err)

	assert.Contains(t, gotUserPrompt,
		"Foydalanuvchi biznes ma'lumotlari: Soha: IT, Xodimlar: 12, Hudud: Toshkent, Faoliyat yili: 3")
}

func TestAnswerBusinessContextOmitsEmpty(t *testing.T) {
	st := &queryStore{}
	generator := mock.NewGenerator()

	var gotUserPrompt string
	generator.CompleteFunc = func(ctx context.Context, system, user string) (string, error) {
		gotUserPrompt = user
		return "ok", nil
	}

	e := newTestEngine(t, st, generator)

	_, err := e.Answer(context.Background(), "savol", &core.BusinessContext{})
	require.NoError(t, err)
	assert.NotContains(t, gotUserPrompt, "Foydalanuvchi biznes ma'lumotlari")
}

func TestAnswerGenerationFailureDegradesToApology(t *testing.T) {
	st := &queryStore{matches: []store.Match{
		{ID: "PQ-60_0", Document: "matn", Metadata: map[string]string{}, Distance: 0.1},
	}}
	generator := mock.NewGenerator()
	generator.CompleteFunc = func(ctx context.Context, system, user string) (string, error) {
		return "", errors.New("model overloaded")
	}

	e := newTestEngine(t, st, generator)

	answer, err := e.Answer(context.Background(), "savol", nil)
	require.NoError(t, err, "generation failure must not fail the request")

	assert.Contains(t, answer.Response, "Kechirasiz, hozirda javob generatsiya qilishda xatolik yuz berdi.")
	assert.Contains(t, answer.Response, "model overloaded")
	// Sources still come back with the apology.
	assert.Len(t, answer.Sources, 1)
}

func TestAnswerStoreFailureSurfaces(t *testing.T) {
	st := &queryStore{err: store.ErrStoreClosed}
	generator := mock.NewGenerator()

	e := newTestEngine(t, st, generator)

	_, err := e.Answer(context.Background(), "savol", nil)
	assert.ErrorIs(t, err, store.ErrStoreClosed)
	// Retrieval failure short-circuits before generation.
	assert.Equal(t, 0, generator.CallCount())
}

func TestNewEngineValidation(t *testing.T) {
	_, err := NewEngine(nil, mock.NewGenerator())
	assert.ErrorIs(t, err, ErrStoreRequired)

	_, err = NewEngine(&queryStore{}, nil)
	assert.ErrorIs(t, err, ErrGeneratorRequired)
}
