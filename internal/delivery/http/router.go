package http

import (
	"log/slog"
	"net/http"

	"eventmanagement/internal/delivery/http/controllers"
	"eventmanagement/internal/delivery/http/middleware"
	"eventmanagement/internal/domain"
	"eventmanagement/internal/metrics"

	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterDeps groups what NewRouter wires together. Metrics and MetricsHandler are optional.
type RouterDeps struct {
	Events         *controllers.EventController
	Tags           *controllers.TagController
	Health         *controllers.HealthController
	Verifier       domain.TokenVerifier
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler
	AllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(d.Verifier, d.Logger)

	// Events
	mux.HandleFunc("POST /events", auth(d.Events.CreateEvent))
	mux.HandleFunc("GET /events", auth(d.Events.ListEvents))
	mux.HandleFunc("GET /events/stats", auth(d.Events.GetEventStats))
	mux.HandleFunc("GET /events/tags", auth(d.Tags.ListTags))
	mux.HandleFunc("GET /events/{eventID}", auth(d.Events.GetEvent))
	mux.HandleFunc("PATCH /events/{eventID}", auth(d.Events.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", auth(d.Events.DeactivateEvent))

	// Event dates
	mux.HandleFunc("POST /events/{eventID}/dates", auth(d.Events.AddEventDate))
	mux.HandleFunc("PATCH /events/{eventID}/dates/{dateID}", auth(d.Events.UpdateEventDate))
	mux.HandleFunc("DELETE /events/{eventID}/dates/{dateID}", auth(d.Events.RemoveEventDate))
	mux.HandleFunc("POST /events/{eventID}/dates/{dateID}/finish", auth(d.Events.FinishEventDate))

	// Operations
	mux.HandleFunc("GET /health", d.Health.Health)
	if d.MetricsHandler != nil {
		mux.Handle("GET /metrics", d.MetricsHandler)
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var h http.Handler = mux
	h = middleware.Metrics(d.Metrics, h)
	h = middleware.LoggingMiddleware(d.Logger, h)
	h = middleware.CORS(d.AllowedOrigins, h)
	return h
}
