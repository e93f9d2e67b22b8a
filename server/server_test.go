package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doniyor117/AdvoAi/ai/mock"
	"github.com/doniyor117/AdvoAi/core"
	"github.com/doniyor117/AdvoAi/rag"
	"github.com/doniyor117/AdvoAi/scout"
	"github.com/doniyor117/AdvoAi/status"
	"github.com/doniyor117/AdvoAi/store"
)

// stubStore serves canned matches and counts.
type stubStore struct {
	matches  []store.Match
	queryErr error
	count    int
}

func (s *stubStore) Query(ctx context.Context, text string, k int) ([]store.Match, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	return s.matches, nil
}

func (s *stubStore) Add(ctx context.Context, documents []string, metadatas []map[string]string, ids []string) error {
	return nil
}

func (s *stubStore) Get(ctx context.Context, field, value string) ([]string, error) {
	return nil, nil
}

func (s *stubStore) Count(ctx context.Context) (int, error) { return s.count, nil }
func (s *stubStore) Close() error                           { return nil }

type stubSearch struct{}

func (stubSearch) Search(ctx context.Context, query string, maxResults int) ([]core.CandidateDocument, error) {
	return nil, nil
}

type stubScraper struct{}

func (stubScraper) Fetch(ctx context.Context, url string) (string, error) { return "", nil }

func newTestServer(t *testing.T, st store.Store) (*Server, *status.Bus) {
	t.Helper()

	var engine *rag.Engine
	if st != nil {
		var err error
		engine, err = rag.NewEngine(st, mock.NewGenerator())
		require.NoError(t, err)
	}

	bus := status.NewBus()

	var manager *scout.Manager
	if st != nil {
		pipeline, err := scout.NewPipeline(st, mock.NewRelevanceJudge(), stubSearch{}, stubScraper{},
			scout.WithSearchDelay(0), scout.WithJudgeDelay(0))
		require.NoError(t, err)

		manager, err = scout.NewManager(pipeline, bus)
		require.NoError(t, err)
		t.Cleanup(manager.Release)
	}

	return New(Config{
		Debug:           false,
		EmbeddingModel:  "embeddinggemma",
		GenerationModel: "qwen2.5:3b",
	}, engine, manager, bus, st), bus
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func TestChatHappyPath(t *testing.T) {
	st := &stubStore{matches: []store.Match{
		{
			ID:       "PQ-60_0",
			Document: "1-modda. Yoshlar uchun subsidiyalar.",
			Metadata: map[string]string{"title": "PQ-60", "decree_id": "PQ-60"},
			Distance: 0.2,
		},
	}}
	s, _ := newTestServer(t, st)

	recorder := postJSON(t, s.Handler(), "/api/chat", `{"message": "Qanday imtiyozlar bor?"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response ChatResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.NotEmpty(t, response.Response)
	assert.NotEmpty(t, response.ConversationID)
	require.Len(t, response.Sources, 1)
	assert.Equal(t, "PQ-60", response.Sources[0].DocumentID)
	assert.Equal(t, 0.8, response.Sources[0].RelevanceScore)
	assert.NotNil(t, response.MatchedPrivileges)
	assert.Empty(t, response.MatchedPrivileges)
}

func TestChatKeepsConversationID(t *testing.T) {
	s, _ := newTestServer(t, &stubStore{})

	recorder := postJSON(t, s.Handler(), "/api/chat",
		`{"message": "savol", "conversation_id": "conv-7"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response ChatResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "conv-7", response.ConversationID)
}

func TestChatValidation(t *testing.T) {
	s, _ := newTestServer(t, &stubStore{})

	tests := []struct {
		name string
		body string
	}{
		{"empty message", `{"message": ""}`},
		{"too long", `{"message": "` + strings.Repeat("a", 2001) + `"}`},
		{"negative employees", `{"message": "savol", "business_context": {"employee_count": -1}}`},
		{"malformed json", `{"message": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(t, s.Handler(), "/api/chat", tt.body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var envelope errorEnvelope
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
			assert.Equal(t, http.StatusBadRequest, envelope.StatusCode)
			assert.NotEmpty(t, envelope.Error)
		})
	}
}

func TestChatStoreUnavailable(t *testing.T) {
	// No engine wired at all: the store was never initialized.
	s, _ := newTestServer(t, nil)

	recorder := postJSON(t, s.Handler(), "/api/chat", `{"message": "savol"}`)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestChatClosedStoreReturns503(t *testing.T) {
	s, _ := newTestServer(t, &stubStore{queryErr: store.ErrStoreClosed})

	recorder := postJSON(t, s.Handler(), "/api/chat", `{"message": "savol"}`)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var envelope errorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, http.StatusServiceUnavailable, envelope.StatusCode)
}

func TestTriggerAndAdmissionControl(t *testing.T) {
	s, _ := newTestServer(t, &stubStore{})

	recorder := postJSON(t, s.Handler(), "/api/scout/trigger", `{}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var first TriggerResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &first))
	assert.Equal(t, "started", first.Status)
	assert.NotEmpty(t, first.JobID)

	// The cycle with a stub search finishes almost immediately; poll the
	// second trigger until it is admitted again.
	deadline := time.Now().Add(5 * time.Second)
	for {
		recorder = postJSON(t, s.Handler(), "/api/scout/trigger", `{"keywords": ["grant"]}`)
		require.Equal(t, http.StatusOK, recorder.Code)

		var second TriggerResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &second))
		if second.Status == "started" {
			break
		}

		assert.Equal(t, "already_running", second.Status)
		if time.Now().After(deadline) {
			t.Fatal("job never finished")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestStatusRequiresJobID(t *testing.T) {
	s, _ := newTestServer(t, &stubStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/scout/status", nil)
	recorder := httptest.NewRecorder()
	s.Handler().ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestStatusUnknownJob(t *testing.T) {
	s, _ := newTestServer(t, &stubStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/scout/status?job_id=missing", nil)
	recorder := httptest.NewRecorder()
	s.Handler().ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestStatusStreamsUntilTerminal(t *testing.T) {
	s, bus := newTestServer(t, &stubStore{})

	queue := bus.Register("job-1")
	queue.Publish(status.NewEvent(status.EventSearch, "🔍 Qidiruv boshlandi...", status.Details{Progress: 5}))
	queue.Publish(status.NewEvent(status.EventComplete, "✅ Scout tugadi!", status.Details{Progress: 100}))

	req := httptest.NewRequest(http.MethodGet, "/api/scout/status?job_id=job-1", nil)
	recorder := httptest.NewRecorder()
	s.Handler().ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/event-stream", recorder.Header().Get("Content-Type"))

	body := recorder.Body.String()
	assert.Equal(t, 2, strings.Count(body, "event: status_update"))
	assert.Contains(t, body, `"event_type":"search"`)
	assert.Contains(t, body, `"event_type":"complete"`)

	// The stream closed after the terminal event: nothing was left queued.
	assert.Equal(t, 0, queue.Len())
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, &stubStore{count: 42})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()
	s.Handler().ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 42, health.DocumentCount)
	assert.Equal(t, "qwen2.5:3b", health.GenerationModel)
	assert.Equal(t, "embeddinggemma", health.EmbeddingModel)
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(t, &stubStore{})

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	recorder := httptest.NewRecorder()
	s.Handler().ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestParseCORSOrigins(t *testing.T) {
	origins := ParseCORSOrigins("http://localhost:3000, https://advoai.uz ,")
	assert.Equal(t, []string{"http://localhost:3000", "https://advoai.uz"}, origins)
}
