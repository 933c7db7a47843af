package handlers

import (
	"errors"
	nethttp "net/http"
	"time"

	domainsessions "github.com/preston-bernstein/pickup-teams-service/internal/domain/sessions"
	"github.com/preston-bernstein/pickup-teams-service/internal/logging"
)

type sessionResponse struct {
	ID        string                  `json:"id"`
	CreatedAt time.Time               `json:"createdAt"`
	LastSeen  time.Time               `json:"lastSeen"`
	Members   []domainsessions.Member `json:"members"`
	PaidCount int                     `json:"paidCount"`
	HasLineup bool                    `json:"hasLineup"`
}

func newSessionResponse(s domainsessions.Session) sessionResponse {
	return sessionResponse{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		LastSeen:  s.LastSeen,
		Members:   s.MemberList(),
		PaidCount: s.PaidCount(),
		HasLineup: s.LastLineup != nil,
	}
}

type memberRequest struct {
	FirstName string `json:"firstName"`
	Surname   string `json:"surname"`
	Phone     string `json:"phone"`
}

type paymentRequest struct {
	Paid *bool `json:"paid"`
}

// CreateSession starts a new organiser session.
func (h *Handler) CreateSession(w nethttp.ResponseWriter, r *nethttp.Request) {
	session := h.sessions.Create()
	logging.Info(loggerFromContext(r, h.logger), "session created", logging.FieldSessionID, session.ID)
	writeJSON(w, nethttp.StatusCreated, newSessionResponse(session), h.logger)
}

// GetSession returns a session with its members.
func (h *Handler) GetSession(w nethttp.ResponseWriter, r *nethttp.Request) {
	session, err := h.sessions.Get(r.PathValue("id"))
	if err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, newSessionResponse(session), h.logger)
}

// DeleteSession ends a session.
func (h *Handler) DeleteSession(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := r.PathValue("id")
	if err := h.sessions.Delete(id); err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "session deleted", logging.FieldSessionID, id)
	w.WriteHeader(nethttp.StatusNoContent)
}

// PutMember creates or replaces a member profile keyed by email.
func (h *Handler) PutMember(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body memberRequest
	if !decodeJSON(w, r, h.maxBody, &body, h.logger) {
		return
	}
	member, err := h.sessions.UpsertMember(r.PathValue("id"), domainsessions.Member{
		Email:     r.PathValue("email"),
		FirstName: body.FirstName,
		Surname:   body.Surname,
		Phone:     body.Phone,
	})
	if err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, member, h.logger)
}

// PutPayment records whether a member has paid.
func (h *Handler) PutPayment(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body paymentRequest
	if !decodeJSON(w, r, h.maxBody, &body, h.logger) {
		return
	}
	if body.Paid == nil {
		writeError(w, r, nethttp.StatusBadRequest, "paid is required", h.logger)
		return
	}
	member, err := h.sessions.SetPaid(r.PathValue("id"), r.PathValue("email"), *body.Paid)
	if err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, member, h.logger)
}

// GenerateSessionTeams generates a lineup and remembers it on the session.
func (h *Handler) GenerateSessionTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := r.PathValue("id")
	if _, err := h.sessions.Get(id); err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	var body generateRequest
	if !decodeJSON(w, r, h.maxBody, &body, h.logger) {
		return
	}
	lineup, ok := h.generate(w, r, body)
	if !ok {
		return
	}
	if err := h.sessions.SaveLineup(id, lineup); err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "session lineup saved",
		logging.FieldSessionID, id,
		logging.FieldLineupID, lineup.ID,
	)
	writeJSON(w, nethttp.StatusOK, lineup, h.logger)
}

// LastSessionTeams returns the most recent lineup generated for a session.
func (h *Handler) LastSessionTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	lineup, ok, err := h.sessions.LastLineup(r.PathValue("id"))
	if err != nil {
		h.writeSessionError(w, r, err)
		return
	}
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "no lineup generated yet", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, lineup, h.logger)
}

func (h *Handler) writeSessionError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	switch {
	case errors.Is(err, domainsessions.ErrNotFound), errors.Is(err, domainsessions.ErrMemberNotFound):
		writeError(w, r, nethttp.StatusNotFound, err.Error(), h.logger)
	case errors.Is(err, domainsessions.ErrInvalidEmail):
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
	default:
		logging.Error(loggerFromContext(r, h.logger), "session operation failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
	}
}
