package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/pickup-teams-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(h *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)
	mux.HandleFunc("POST /teams", h.GenerateTeams)

	mux.HandleFunc("POST /sessions", h.CreateSession)
	mux.HandleFunc("GET /sessions/{id}", h.GetSession)
	mux.HandleFunc("DELETE /sessions/{id}", h.DeleteSession)
	mux.HandleFunc("PUT /sessions/{id}/members/{email}", h.PutMember)
	mux.HandleFunc("PUT /sessions/{id}/members/{email}/payment", h.PutPayment)
	mux.HandleFunc("POST /sessions/{id}/teams", h.GenerateSessionTeams)
	mux.HandleFunc("GET /sessions/{id}/teams", h.LastSessionTeams)
	return mux
}
