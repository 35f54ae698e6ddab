// Package middleware wraps handlers with request-scoped logging, request ID
// propagation, and HTTP metrics.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/reggie-app/reggie-api/internal/http/requestutil"
	"github.com/reggie-app/reggie-api/internal/logging"
	"github.com/reggie-app/reggie-api/internal/metrics"
)

type requestIDKey struct{}

// Logging wraps the handler with request logging, request ID support, and
// metrics recording.
func Logging(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := requestutil.SanitizeRequestID(r.Header.Get("X-Request-ID"))
		w.Header().Set("X-Request-ID", reqID)

		logger := baseLogger.With(
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String(logging.FieldQuery, r.URL.RawQuery),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)

		ctx := logging.WithLogger(r.Context(), logger)
		ctx = withRequestID(ctx, reqID)
		r = r.WithContext(ctx)
		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		recorder.RecordHTTPRequest(r.Method, NormalizePath(r.URL.Path), ww.status, duration)

		logger.Info("request complete",
			slog.Int(logging.FieldStatusCode, ww.status),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// RequestIDFromContext extracts the request ID stored by the logging
// middleware.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if val, ok := ctx.Value(requestIDKey{}).(string); ok {
		return val
	}
	return ""
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// NormalizePath collapses parameterized routes so metrics labels stay low
// cardinality.
func NormalizePath(path string) string {
	switch {
	case path == "", path == "/health", path == "/ready", path == "/sitemap.xml":
		return path
	case path == "/v1/matches/today", path == "/v1/matches/yesterday":
		return path
	case strings.HasPrefix(path, "/v1/matches/"):
		return "/v1/matches/:slug"
	case path == "/v1/teams", path == "/v1/standings":
		return path
	case strings.HasSuffix(path, "/matches") && strings.HasPrefix(path, "/v1/teams/"):
		return "/v1/teams/:slug/matches"
	case strings.HasPrefix(path, "/v1/teams/"):
		return "/v1/teams/:slug"
	default:
		return path
	}
}
