package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"

	applineups "github.com/preston-bernstein/pickup-teams-service/internal/app/lineups"
	domainlineups "github.com/preston-bernstein/pickup-teams-service/internal/domain/lineups"
	domainsessions "github.com/preston-bernstein/pickup-teams-service/internal/domain/sessions"
	"github.com/preston-bernstein/pickup-teams-service/internal/logging"
	"github.com/preston-bernstein/pickup-teams-service/internal/sweeper"
)

// LineupGenerator turns a roster request into balanced teams.
type LineupGenerator interface {
	Generate(ctx context.Context, req applineups.Request) (domainlineups.Lineup, error)
}

// SessionService keeps per-organiser member and lineup state.
type SessionService interface {
	Create() domainsessions.Session
	Get(id string) (domainsessions.Session, error)
	Delete(id string) error
	UpsertMember(id string, member domainsessions.Member) (domainsessions.Member, error)
	SetPaid(id, email string, paid bool) (domainsessions.Member, error)
	SaveLineup(id string, lineup domainlineups.Lineup) error
	LastLineup(id string) (domainlineups.Lineup, bool, error)
}

// Handler wires HTTP routes to the lineup and session services.
type Handler struct {
	lineups  LineupGenerator
	sessions SessionService
	logger   *slog.Logger
	maxBody  int64
	statusFn func() sweeper.Status
}

// NewHandler constructs a Handler. maxBody <= 0 disables the request body limit.
func NewHandler(lineups LineupGenerator, sessions SessionService, logger *slog.Logger, maxBody int64, statusFn func() sweeper.Status) *Handler {
	return &Handler{
		lineups:  lineups,
		sessions: sessions,
		logger:   logger,
		maxBody:  maxBody,
		statusFn: statusFn,
	}
}

type generateRequest struct {
	Roster    string  `json:"roster"`
	TeamCount int     `json:"teamCount"`
	Seed      *uint64 `json:"seed,omitempty"`
}

func (g generateRequest) toRequest() applineups.Request {
	return applineups.Request{Roster: g.Roster, TeamCount: g.TeamCount, Seed: g.Seed}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, "session sweeper not running", h.logger)
}

// GenerateTeams balances a free-text roster into teams.
func (h *Handler) GenerateTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body generateRequest
	if !decodeJSON(w, r, h.maxBody, &body, h.logger) {
		return
	}
	lineup, ok := h.generate(w, r, body)
	if !ok {
		return
	}
	writeJSON(w, nethttp.StatusOK, lineup, h.logger)
}

func (h *Handler) generate(w nethttp.ResponseWriter, r *nethttp.Request, body generateRequest) (domainlineups.Lineup, bool) {
	lineup, err := h.lineups.Generate(r.Context(), body.toRequest())
	if err == nil {
		return lineup, true
	}
	switch {
	case applineups.IsValidation(err):
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, r, nethttp.StatusServiceUnavailable, "request cancelled", h.logger)
	default:
		logging.Error(loggerFromContext(r, h.logger), "lineup generation failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
	}
	return domainlineups.Lineup{}, false
}
