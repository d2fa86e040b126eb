package transport

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/raywall/pet-crud-service/pkg/config"
)

// NewRouter exposes the same four operations over plain HTTP for local
// development, mirroring the API Gateway routes.
func NewRouter(core *Handler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/pet", httpAdapter(core, "create")).Methods(http.MethodPost)
	r.HandleFunc("/pet/{id}", httpAdapter(core, "get")).Methods(http.MethodGet)
	r.HandleFunc("/pet/{id}", httpAdapter(core, "update")).Methods(http.MethodPut)
	r.HandleFunc("/pet/{id}", httpAdapter(core, "delete")).Methods(http.MethodDelete)

	return r
}

// StartHTTPServer runs the local server until it fails.
func StartHTTPServer(cfg config.ServiceDetails, core *Handler) error {
	handler := ObservabilityMiddleware(NewRouter(core))

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("service", cfg.Name).Str("addr", addr).Msg("http server listening")

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.GetTimeout(),
		WriteTimeout: cfg.GetTimeout(),
	}
	return srv.ListenAndServe()
}

func httpAdapter(core *Handler, op string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := mux.Vars(r)["id"]

		var res result
		switch op {
		case "create":
			body, err := io.ReadAll(r.Body)
			if err != nil {
				res = clientError("invalid request body")
				break
			}
			res = core.create(ctx, body)
		case "get":
			res = core.get(ctx, id)
		case "update":
			body, err := io.ReadAll(r.Body)
			if err != nil {
				res = clientError("invalid request body")
				break
			}
			res = core.update(ctx, id, body)
		case "delete":
			res = core.delete(ctx, id)
		}

		core.count(op, res.status)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(res.status)
		_, _ = io.WriteString(w, encodeBody(res.body))
	}
}

type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode  int
	startTime   time.Time
	wroteHeader bool
}

func (rw *responseWriterWrapper) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.statusCode = code
	rw.Header().Set(HeaderLatency, fmt.Sprintf("%d", time.Since(rw.startTime).Milliseconds()))
	rw.ResponseWriter.WriteHeader(code)
	rw.wroteHeader = true
}

func (rw *responseWriterWrapper) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// ObservabilityMiddleware injects a correlation-scoped logger into the
// request context and logs one completion line per request.
func ObservabilityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		corrID := r.Header.Get(HeaderCorrelationID)
		if corrID == "" {
			corrID = uuid.NewString()
		}
		w.Header().Set(HeaderCorrelationID, corrID)

		logger := log.With().Str("correlation_id", corrID).Logger()
		ctx := logger.WithContext(r.Context())

		wrapper := &responseWriterWrapper{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			startTime:      start,
		}

		next.ServeHTTP(wrapper, r.WithContext(ctx))

		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapper.statusCode).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Msg("request completed")
	})
}
