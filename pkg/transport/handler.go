package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/raywall/pet-crud-service/pkg/kvstore"
	"github.com/raywall/pet-crud-service/pkg/metrics"
	"github.com/raywall/pet-crud-service/pkg/pet"
)

const (
	HeaderCorrelationID = "x-correlation-id"
	HeaderLatency       = "x-latency-ms"
)

// result is the transport-neutral outcome of one operation: a status
// code plus an already-serializable body. Both the Lambda adapter and
// the HTTP server render it.
type result struct {
	status int
	body   any
}

type errorBody struct {
	Error string `json:"error"`
}

// Handler turns one operation intent into one service call and shapes
// the response. It carries no per-request state.
type Handler struct {
	svc      *pet.Service
	provider metrics.Provider
}

// NewHandler wires the shared request-handling core.
func NewHandler(svc *pet.Service, provider metrics.Provider) *Handler {
	if provider == nil {
		provider = &metrics.NoopProvider{}
	}
	return &Handler{svc: svc, provider: provider}
}

func (h *Handler) create(ctx context.Context, body []byte) result {
	record, ok := decodeRecord(body)
	if !ok {
		return clientError("invalid request body")
	}

	created, err := h.svc.Create(ctx, record)
	if err != nil {
		return h.errorResult(ctx, err)
	}
	return result{status: http.StatusCreated, body: created}
}

func (h *Handler) get(ctx context.Context, id string) result {
	record, err := h.svc.Get(ctx, id)
	if err != nil {
		return h.errorResult(ctx, err)
	}
	return result{status: http.StatusOK, body: record}
}

func (h *Handler) update(ctx context.Context, id string, body []byte) result {
	record, ok := decodeRecord(body)
	if !ok {
		return clientError("invalid request body")
	}

	updated, err := h.svc.Update(ctx, id, record)
	if err != nil {
		return h.errorResult(ctx, err)
	}
	return result{status: http.StatusOK, body: updated}
}

func (h *Handler) delete(ctx context.Context, id string) result {
	if err := h.svc.Delete(ctx, id); err != nil {
		return h.errorResult(ctx, err)
	}
	return result{status: http.StatusOK, body: map[string]string{"message": "item deleted"}}
}

// errorResult maps the service error taxonomy onto status codes. Store
// failures surface as a generic 500 — internals never reach the caller.
func (h *Handler) errorResult(ctx context.Context, err error) result {
	switch {
	case errors.Is(err, pet.ErrMissingID):
		return clientError("missing id")
	case errors.Is(err, pet.ErrIDMismatch):
		return clientError("id in path does not match id in body")
	case errors.Is(err, pet.ErrInvalidPayload):
		return clientError("invalid request body")
	case errors.Is(err, kvstore.ErrNotFound):
		return result{status: http.StatusNotFound, body: errorBody{Error: "item not found"}}
	default:
		log.Ctx(ctx).Error().Err(err).Msg("store operation failed")
		return result{status: http.StatusInternalServerError, body: errorBody{Error: "internal server error"}}
	}
}

// count emits one metric per operation tagged with its outcome class.
func (h *Handler) count(op string, status int) {
	outcome := "success"
	switch {
	case status >= 500:
		outcome = "error"
	case status >= 400:
		outcome = "client_error"
	}
	_ = h.provider.Count("pet.request", 1, []string{"op:" + op, "outcome:" + outcome})
}

func clientError(msg string) result {
	return result{status: http.StatusBadRequest, body: errorBody{Error: msg}}
}

func decodeRecord(body []byte) (pet.Record, bool) {
	if len(body) == 0 {
		return nil, false
	}
	var record pet.Record
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, false
	}
	return record, true
}

func encodeBody(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return `{"error":"internal server error"}`
	}
	return string(b)
}
