package api

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/immutablepost/pkg/logger"
)

const (
	headerRequestID = "X-Request-Id"
	headerAPIKey    = "X-Api-Key"
)

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

type MiddlewareConfig struct {
	// APIKey is required on the admin routes. An empty key rejects every call.
	APIKey string
	// AllowedOrigins lists origins allowed to call the API from a browser.
	// "*" allows any origin.
	AllowedOrigins []string
}

type Middleware struct {
	cfg MiddlewareConfig
}

func NewMiddleware(cfg MiddlewareConfig) *Middleware {
	return &Middleware{cfg: cfg}
}

// Log tags the request context with a request id and logs the outcome.
func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx := logger.WithRequestID(r.Context(), requestID)
		w.Header().Set(headerRequestID, requestID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()

		next.ServeHTTP(ww, r.WithContext(ctx))

		if _, ok := skipLogging[r.URL.Path]; ok {
			return
		}

		slog.InfoContext(ctx, "request handled",
			"request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
			"from", r.RemoteAddr,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"took", time.Since(started),
		)
	})
}

// Recover turns a panic into a 500 unless the handler has already started
// its response.
func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ww, ok := w.(middleware.WrapResponseWriter)
		if !ok {
			ww = middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		}

		defer func() {
			if err := recover(); err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))

				if ww.Status() != 0 {
					return
				}

				SendJSONErr(ctx, ww, http.StatusInternalServerError, nil, "Internal server error")
			}
		}()

		next.ServeHTTP(ww, r)
	})
}

// Cors lets the WordPress front end post submissions from another origin.
func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		switch {
		case slices.Contains(m.cfg.AllowedOrigins, "*"):
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(m.cfg.AllowedOrigins, origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, "+headerAPIKey+", "+headerRequestID)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// APIKeyAuth guards the admin routes.
func (m *Middleware) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		apiKey := r.Header.Get(headerAPIKey)
		if apiKey == "" || m.cfg.APIKey == "" {
			SendJSONErr(ctx, w, http.StatusUnauthorized, nil, "API key is missing")
			return
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.APIKey)) != 1 {
			SendJSONErr(ctx, w, http.StatusUnauthorized, nil, "API key is invalid")
			return
		}

		next.ServeHTTP(w, r)
	})
}
