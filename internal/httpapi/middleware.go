package httpapi

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	applog "github.com/autosave-dev/autosave/internal/log"
)

// responseWriter captures the status code written by a handler.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// withRequestLogging tags the request with an ID, stores a request-scoped
// logger in its context and logs completion.
func (s *Server) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = generateRequestID()
		}
		w.Header().Set("X-Request-ID", requestID)

		logger := s.logger.With(applog.FieldRequestID, requestID)
		r = r.WithContext(applog.NewContext(r.Context(), logger))

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		logger.Info("Request completed",
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldStatusCode, rw.statusCode,
			applog.FieldDuration, time.Since(start).Milliseconds(),
			applog.FieldClientIP, clientIP(r))
	})
}

// withRecovery turns a handler panic into a 500.
func (s *Server) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				applog.FromContext(r.Context()).Error("Handler panic",
					applog.FieldError, fmt.Sprint(rec),
					"stack", string(debug.Stack()))
				writeJSON(w, http.StatusInternalServerError, errorBody("internal error", nil))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(b)
}
