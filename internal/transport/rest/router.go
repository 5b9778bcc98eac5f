package rest

import (
	"log/slog"
	"net/http"

	"github.com/asmirnova/circleback/internal/config"
	"github.com/asmirnova/circleback/internal/transport/middleware"
)

// TokenValidator checks a bearer service token and returns the caller name.
type TokenValidator interface {
	Validate(token string) (string, error)
}

// NewRouter assembles the HTTP routing table. Health probes are open; the
// /api/v1 surface requires a valid service token.
func NewRouter(
	logger *slog.Logger,
	corsCfg config.CORSConfig,
	tokens TokenValidator,
	contacts *ContactHandler,
	logs *LogHandler,
	stats *StatsHandler,
	health *HealthHandler,
) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("POST /api/v1/contacts", contacts.Create)
	api.HandleFunc("GET /api/v1/contacts", contacts.List)
	api.HandleFunc("GET /api/v1/contacts/search", contacts.Search)
	api.HandleFunc("GET /api/v1/contacts/recent", contacts.Recent)
	api.HandleFunc("GET /api/v1/contacts/find", contacts.GetByName)
	api.HandleFunc("GET /api/v1/contacts/{id}", contacts.Get)
	api.HandleFunc("PATCH /api/v1/contacts/{id}", contacts.Update)
	api.HandleFunc("DELETE /api/v1/contacts/{id}", contacts.Delete)

	api.HandleFunc("POST /api/v1/contacts/{id}/logs", logs.Add)
	api.HandleFunc("GET /api/v1/contacts/{id}/logs", logs.History)
	api.HandleFunc("GET /api/v1/logs/recent", logs.Recent)
	api.HandleFunc("GET /api/v1/logs/{id}", logs.Get)
	api.HandleFunc("PATCH /api/v1/logs/{id}", logs.Edit)
	api.HandleFunc("DELETE /api/v1/logs/{id}", logs.Delete)

	api.HandleFunc("GET /api/v1/stats/days-since-last-interaction", stats.DaysSinceLastInteraction)

	root := http.NewServeMux()
	root.HandleFunc("GET /live", health.Live)
	root.HandleFunc("GET /ready", health.Ready)
	root.HandleFunc("GET /health", health.Health)
	root.Handle("/api/v1/", middleware.Auth(logger, tokens)(api))

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(corsCfg),
	)(root)
}
