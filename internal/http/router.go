// Package http assembles the route table and middleware chain.
package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/reggie-app/reggie-api/internal/http/handlers"
	"github.com/reggie-app/reggie-api/internal/http/middleware"
	"github.com/reggie-app/reggie-api/internal/metrics"
)

// NewRouter registers all routes and wraps them with the logging and
// metrics middleware.
func NewRouter(h *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", h.Ready).Methods(nethttp.MethodGet)
	r.HandleFunc("/sitemap.xml", h.Sitemap).Methods(nethttp.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/matches/today", h.Today).Methods(nethttp.MethodGet)
	v1.HandleFunc("/matches/yesterday", h.Yesterday).Methods(nethttp.MethodGet)
	v1.HandleFunc("/matches/{slug}", h.MatchBySlug).Methods(nethttp.MethodGet)
	v1.HandleFunc("/teams", h.Teams).Methods(nethttp.MethodGet)
	v1.HandleFunc("/teams/{slug}", h.TeamBySlug).Methods(nethttp.MethodGet)
	v1.HandleFunc("/teams/{slug}/matches", h.TeamMatches).Methods(nethttp.MethodGet)
	v1.HandleFunc("/standings", h.Standings).Methods(nethttp.MethodGet)

	return middleware.Logging(logger, recorder, r)
}
