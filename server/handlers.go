package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/doniyor117/AdvoAi/core"
	"github.com/doniyor117/AdvoAi/status"
)

// streamTimeout is how long a status stream waits for an event before
// emitting a heartbeat.
const streamTimeout = 30 * time.Second

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var request ChatRequest
	if err := decodeJSON(r, &request); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if err := core.ValidateMessage(request.Message); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := core.ValidateBusinessContext(request.BusinessContext); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.engine == nil {
		s.writeError(w, http.StatusServiceUnavailable, storeNotReadyMessage)
		return
	}

	conversationID := request.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	answer, err := s.engine.Answer(r.Context(), request.Message, request.BusinessContext)
	if err != nil {
		s.writeInternalError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, ChatResponse{
		Response:          answer.Response,
		Sources:           answer.Sources,
		MatchedPrivileges: []string{},
		ConversationID:    conversationID,
		Timestamp:         time.Now().UTC(),
	})
}

func (s *Server) handleTrigger(w http.ResponseWriter, r *http.Request) {
	var request TriggerRequest
	if err := decodeJSON(r, &request); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if s.manager == nil {
		s.writeError(w, http.StatusServiceUnavailable, "scout is not configured")
		return
	}

	result, err := s.manager.Trigger(request.Keywords, request.DateFilter, request.ForceRefresh)
	if err != nil {
		s.writeInternalError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

// handleStatus streams job events as Server-Sent Events. Idle periods
// produce heartbeats; the stream closes after a terminal event.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	jobID := r.URL.Query().Get("job_id")
	if jobID == "" {
		s.writeError(w, http.StatusBadRequest, "job_id query parameter is required")
		return
	}

	queue, err := s.bus.Queue(jobID)
	if err != nil {
		if errors.Is(err, status.ErrUnknownJob) {
			s.writeError(w, http.StatusNotFound, fmt.Sprintf("no running job %s", jobID))
			return
		}
		s.writeInternalError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		s.writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		event, err := queue.Next(r.Context(), streamTimeout)
		switch {
		case errors.Is(err, status.ErrTimeout):
			s.writeSSE(w, flusher, "heartbeat", status.Heartbeat())
			continue
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return
		case err != nil:
			s.logger.Error("status stream failed", "job_id", jobID, "err", err)
			return
		}

		s.writeSSE(w, flusher, "status_update", event)

		if event.Type.Terminal() {
			return
		}
	}
}

func marshalEvent(event status.Event) ([]byte, error) {
	return json.Marshal(event)
}

func (s *Server) writeSSE(w http.ResponseWriter, flusher http.Flusher, eventName string, event status.Event) {
	data, err := marshalEvent(event)
	if err != nil {
		s.logger.Error("encoding event", "err", err)
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventName, data)
	flusher.Flush()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	documentCount := 0
	if s.store != nil {
		if count, err := s.store.Count(r.Context()); err == nil {
			documentCount = count
		}
	}

	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:          "healthy",
		AppName:         appName,
		Version:         version,
		DocumentCount:   documentCount,
		GenerationModel: s.config.GenerationModel,
		EmbeddingModel:  s.config.EmbeddingModel,
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message":     fmt.Sprintf("Welcome to %s!", appName),
		"description": "AI-powered assistant for entrepreneur privileges in Uzbekistan",
		"health":      "/health",
	})
}
