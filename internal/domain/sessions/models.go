package sessions

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/preston-bernstein/pickup-teams-service/internal/domain/lineups"
)

var (
	ErrNotFound       = errors.New("session not found")
	ErrMemberNotFound = errors.New("member not found")
	ErrInvalidEmail   = errors.New("invalid email address")
)

// Member is a registered participant's profile and payment flag.
type Member struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	Surname   string `json:"surname"`
	Phone     string `json:"phone,omitempty"`
	Paid      bool   `json:"paid"`
}

// FullName joins first name and surname.
func (m Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.Surname)
}

// Session is the ephemeral bookkeeping for one organiser: members keyed by email and the last lineup.
// It lives only in memory and expires after a period of inactivity.
type Session struct {
	ID         string            `json:"id"`
	CreatedAt  time.Time         `json:"createdAt"`
	LastSeen   time.Time         `json:"lastSeen"`
	Members    map[string]Member `json:"-"`
	LastLineup *lineups.Lineup   `json:"-"`
}

// New starts an empty session.
func New(id string, now time.Time) Session {
	return Session{
		ID:        id,
		CreatedAt: now,
		LastSeen:  now,
		Members:   make(map[string]Member),
	}
}

// Clone returns a copy that shares no mutable state with s.
func (s Session) Clone() Session {
	out := s
	out.Members = make(map[string]Member, len(s.Members))
	for k, v := range s.Members {
		out.Members[k] = v
	}
	if s.LastLineup != nil {
		l := *s.LastLineup
		out.LastLineup = &l
	}
	return out
}

// MemberList returns members ordered by full name (case-insensitive), then email.
func (s Session) MemberList() []Member {
	list := make([]Member, 0, len(s.Members))
	for _, m := range s.Members {
		list = append(list, m)
	}
	slices.SortFunc(list, func(a, b Member) int {
		if c := strings.Compare(strings.ToLower(a.FullName()), strings.ToLower(b.FullName())); c != 0 {
			return c
		}
		return strings.Compare(a.Email, b.Email)
	})
	return list
}

// PaidCount returns how many members are marked as paid.
func (s Session) PaidCount() int {
	n := 0
	for _, m := range s.Members {
		if m.Paid {
			n++
		}
	}
	return n
}

// Expired reports whether the session has been idle for longer than ttl at now.
func (s Session) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastSeen) > ttl
}
