package transport

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LambdaHandler adapts API Gateway proxy events to the shared Handler.
type LambdaHandler struct {
	core *Handler
}

// NewLambdaHandler creates the adapter registered with lambda.Start.
func NewLambdaHandler(core *Handler) *LambdaHandler {
	return &LambdaHandler{core: core}
}

// Handle processes one API Gateway request. It never returns an error:
// every failure is converted into a structured response so the caller
// always receives a status code and a body.
func (h *LambdaHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	start := time.Now()

	corrID := req.Headers[HeaderCorrelationID]
	if corrID == "" {
		// API Gateway may normalize header casing.
		corrID = req.Headers["X-Correlation-Id"]
	}
	if corrID == "" {
		corrID = uuid.NewString()
	}

	logger := log.With().Str("correlation_id", corrID).Logger()
	ctx = logger.WithContext(ctx)

	op, res := h.route(ctx, req)

	latency := time.Since(start)
	logger.Info().
		Str("method", req.HTTPMethod).
		Str("path", req.Path).
		Int("status", res.status).
		Int64("latency_ms", latency.Milliseconds()).
		Msg("request completed")

	h.core.count(op, res.status)
	_ = h.core.provider.Histogram("pet.latency_ms", float64(latency.Milliseconds()), []string{"op:" + op})

	return events.APIGatewayProxyResponse{
		StatusCode: res.status,
		Headers: map[string]string{
			"Content-Type":      "application/json",
			HeaderCorrelationID: corrID,
			HeaderLatency:       strconv.FormatInt(latency.Milliseconds(), 10),
		},
		Body: encodeBody(res.body),
	}, nil
}

// route maps the HTTP method and the `id` path parameter onto one of
// the four operations. Method maps 1:1; anything else is a client error.
func (h *LambdaHandler) route(ctx context.Context, req events.APIGatewayProxyRequest) (string, result) {
	id := req.PathParameters["id"]

	switch req.HTTPMethod {
	case http.MethodPost:
		return "create", h.core.create(ctx, []byte(req.Body))
	case http.MethodGet:
		return "get", h.core.get(ctx, id)
	case http.MethodPut:
		return "update", h.core.update(ctx, id, []byte(req.Body))
	case http.MethodDelete:
		return "delete", h.core.delete(ctx, id)
	default:
		return "unknown", clientError("invalid http method")
	}
}
