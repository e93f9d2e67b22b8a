package server

import (
	"time"

	"github.com/doniyor117/AdvoAi/core"
	"github.com/doniyor117/AdvoAi/scout"
)

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message         string                `json:"message"`
	BusinessContext *core.BusinessContext `json:"business_context,omitempty"`
	ConversationID  string                `json:"conversation_id,omitempty"`
}

// ChatResponse is the reply to POST /api/chat.
type ChatResponse struct {
	Response string        `json:"response"`
	Sources  []core.Source `json:"sources"`

	// MatchedPrivileges is reserved and currently always empty.
	MatchedPrivileges []string `json:"matched_privileges"`

	ConversationID string    `json:"conversation_id"`
	Timestamp      time.Time `json:"timestamp"`
}

// TriggerRequest is the body of POST /api/scout/trigger.
type TriggerRequest struct {
	Keywords     []string `json:"keywords,omitempty"`
	DateFilter   string   `json:"date_filter,omitempty"`
	ForceRefresh bool     `json:"force_refresh,omitempty"`
}

// TriggerResponse aliases the manager result; the JSON shape is defined
// there.
type TriggerResponse = scout.TriggerResult

// HealthResponse is the reply to GET /health.
type HealthResponse struct {
	Status          string `json:"status"`
	AppName         string `json:"app_name"`
	Version         string `json:"version"`
	DocumentCount   int    `json:"document_count"`
	GenerationModel string `json:"llm_model"`
	EmbeddingModel  string `json:"embedding_model"`
}

// errorEnvelope is the JSON error body.
type errorEnvelope struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
}
