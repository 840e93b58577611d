package api

import (
	"net/http"

	"gpr-profile-service/internal/api/handlers"
	"gpr-profile-service/internal/ports"
	"gpr-profile-service/internal/services"
)

// Dependencies for the HTTP surface.
type Deps struct {
	Secret         string
	Sessions       ports.SessionStore
	Renderer       ports.ChartRenderer
	Options        services.Options
	MaxUploadBytes int64
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	sessionHandler := &handlers.SessionHandler{Secret: d.Secret, Store: d.Sessions}
	profileHandler := &handlers.ProfileHandler{
		Options:        d.Options,
		Renderer:       d.Renderer,
		MaxUploadBytes: d.MaxUploadBytes,
	}

	gate := requireSession(d.Sessions, d.Secret)

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/session", sessionHandler.Create)
	mux.Handle("/profiles", gate(http.HandlerFunc(profileHandler.Create)))
	mux.Handle("/profiles/chart", gate(http.HandlerFunc(profileHandler.Chart)))

	return loggingMiddleware(mux)
}
