package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/nyayamitra/nyayamitra/internal/document"
	"github.com/nyayamitra/nyayamitra/internal/rag"
	"github.com/nyayamitra/nyayamitra/internal/state"
	"github.com/nyayamitra/nyayamitra/internal/types"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=http

// QueryPipeline defines the answer pipeline consumed by the query endpoint.
type QueryPipeline interface {
	Answer(ctx context.Context, rawQuery, priorAnswer, language string) (rag.Result, error)
}

// LastQueryLoader defines read access to the saved-query slot.
type LastQueryLoader interface {
	LoadLast() (state.SavedQuery, bool)
}

// DocumentRenderer defines the template rendering capability.
type DocumentRenderer interface {
	Render(kind document.Kind, fields document.Fields, language string) (document.RenderedDocument, error)
}

type QueryReq struct {
	Query       string `json:"query"`
	PriorAnswer string `json:"prior_answer,omitempty"`
	Language    string `json:"language,omitempty"`
}

type DocumentReq struct {
	Kind     string         `json:"kind"`
	Language string         `json:"language,omitempty"`
	Fields   map[string]any `json:"fields"`
}

type Handler struct {
	pipeline QueryPipeline
	store    LastQueryLoader
	renderer DocumentRenderer
}

// NewHandlers initializes handlers with dependencies
func NewHandlers(pipeline QueryPipeline, store LastQueryLoader, renderer DocumentRenderer) *Handler {
	return &Handler{
		pipeline: pipeline,
		store:    store,
		renderer: renderer,
	}
}

func (h *Handler) QueryHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req QueryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Query == "" {
		errorResponse(w, http.StatusBadRequest, "Query is required", nil)
		return
	}

	result, err := h.pipeline.Answer(r.Context(), req.Query, req.PriorAnswer, req.Language)
	if err != nil {
		writePipelineError(w, req.Query, err)
		return
	}

	status := "ok"
	if len(result.Answer.Sources) == 0 {
		status = "no_sources"
	}

	response := types.QueryResponse{
		QueryID:   result.Query.ID,
		Answer:    result.Answer.Text,
		Sources:   result.Answer.Sources,
		Status:    status,
		Model:     result.Answer.Model,
		LatencyMS: result.Answer.Latency.Milliseconds(),
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) LastQueryHandler(w http.ResponseWriter, r *http.Request) {
	saved, ok := h.store.LoadLast()
	if !ok {
		errorResponse(w, http.StatusNotFound, "No query has been saved yet", nil)
		return
	}

	response := types.LastQueryResponse{
		QueryID:  saved.Query.ID,
		Query:    saved.Query.Raw,
		Answer:   saved.Answer.Text,
		Sources:  saved.Answer.Sources,
		AskedAt:  saved.Query.CreatedAt,
		Language: saved.Query.Language,
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) DocumentHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req DocumentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Kind == "" {
		errorResponse(w, http.StatusBadRequest, "Document kind is required", nil)
		return
	}

	fields, err := document.ParseFields(req.Fields)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid fields", err)
		return
	}

	rendered, err := h.renderer.Render(document.Kind(req.Kind), fields, req.Language)
	if err != nil {
		var missing *document.MissingFieldError
		switch {
		case errors.Is(err, document.ErrUnknownTemplate):
			errorResponse(w, http.StatusBadRequest, "Unknown document kind", err)
		case errors.As(err, &missing):
			errorResponse(w, http.StatusBadRequest, "Missing required field", err)
		default:
			slog.Error("Error rendering document", "error", err, "kind", req.Kind)
			errorResponse(w, http.StatusInternalServerError, "Failed to render document", err)
		}
		return
	}

	response := types.DocumentResponse{
		Kind:      string(rendered.Kind),
		Document:  rendered.Text,
		CreatedAt: rendered.CreatedAt,
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writePipelineError maps pipeline failures to HTTP statuses. Validation
// errors are the caller's fault, an exhausted generation budget is
// retryable later, everything else is internal.
func writePipelineError(w http.ResponseWriter, query string, err error) {
	var unavailable *rag.GenerationUnavailableError
	switch {
	case errors.Is(err, rag.ErrInvalidQuery):
		errorResponse(w, http.StatusBadRequest, "Query is empty after normalization", nil)
	case errors.Is(err, rag.ErrPromptTooLarge):
		errorResponse(w, http.StatusRequestEntityTooLarge, "Query produces a prompt beyond the configured ceiling", err)
	case errors.As(err, &unavailable):
		slog.Error("Generation unavailable", "error", err, "query", query)
		errorResponse(w, http.StatusServiceUnavailable, "Answer generation is temporarily unavailable, retry later", err)
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to write.
		errorResponse(w, http.StatusBadRequest, "Request canceled", nil)
	default:
		slog.Error("Error answering query", "error", err, "query", query)
		errorResponse(w, http.StatusInternalServerError, "Failed to answer query", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = fmt.Sprintf("%s: %v", message, err)
	}

	writeJSON(w, status, types.ErrorResponse{
		Error:   http.StatusText(status),
		Message: errorMsg,
	})
}
