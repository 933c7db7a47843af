package sessions

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	domainlineups "github.com/preston-bernstein/pickup-teams-service/internal/domain/lineups"
	domainsessions "github.com/preston-bernstein/pickup-teams-service/internal/domain/sessions"
)

// Store defines the contract for keeping sessions.
type Store interface {
	PutSession(session domainsessions.Session)
	GetSession(id string) (domainsessions.Session, bool)
	UpdateSession(id string, fn func(*domainsessions.Session) error) (domainsessions.Session, error)
	DeleteSession(id string) bool
	DeleteIdleSince(cutoff time.Time) int
}

// Service coordinates session bookkeeping using a Store. Every successful access refreshes LastSeen.
type Service struct {
	store Store
	now   func() time.Time
	newID func() string
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create starts a new empty session.
func (s *Service) Create() domainsessions.Session {
	session := domainsessions.New(s.newID(), s.now().UTC())
	s.store.PutSession(session)
	return session
}

// Get returns a session and marks it as seen.
func (s *Service) Get(id string) (domainsessions.Session, error) {
	return s.touch(id, func(*domainsessions.Session) error { return nil })
}

// Delete ends a session.
func (s *Service) Delete(id string) error {
	if !s.store.DeleteSession(id) {
		return domainsessions.ErrNotFound
	}
	return nil
}

// UpsertMember creates or replaces a member profile, keyed by normalised email. The paid flag is preserved.
func (s *Service) UpsertMember(id string, member domainsessions.Member) (domainsessions.Member, error) {
	email, err := NormalizeEmail(member.Email)
	if err != nil {
		return domainsessions.Member{}, err
	}
	member.Email = email
	member.FirstName = strings.TrimSpace(member.FirstName)
	member.Surname = strings.TrimSpace(member.Surname)
	member.Phone = strings.TrimSpace(member.Phone)

	_, err = s.touch(id, func(session *domainsessions.Session) error {
		if existing, ok := session.Members[email]; ok {
			member.Paid = existing.Paid
		} else {
			member.Paid = false
		}
		session.Members[email] = member
		return nil
	})
	if err != nil {
		return domainsessions.Member{}, err
	}
	return member, nil
}

// SetPaid marks a member's payment status.
func (s *Service) SetPaid(id, email string, paid bool) (domainsessions.Member, error) {
	key, err := NormalizeEmail(email)
	if err != nil {
		return domainsessions.Member{}, err
	}

	var updated domainsessions.Member
	_, err = s.touch(id, func(session *domainsessions.Session) error {
		member, ok := session.Members[key]
		if !ok {
			return domainsessions.ErrMemberNotFound
		}
		member.Paid = paid
		session.Members[key] = member
		updated = member
		return nil
	})
	if err != nil {
		return domainsessions.Member{}, err
	}
	return updated, nil
}

// SaveLineup remembers the most recent lineup generated for a session.
func (s *Service) SaveLineup(id string, lineup domainlineups.Lineup) error {
	_, err := s.touch(id, func(session *domainsessions.Session) error {
		session.LastLineup = &lineup
		return nil
	})
	return err
}

// LastLineup returns the most recent lineup for a session, if any.
func (s *Service) LastLineup(id string) (domainlineups.Lineup, bool, error) {
	session, err := s.Get(id)
	if err != nil {
		return domainlineups.Lineup{}, false, err
	}
	if session.LastLineup == nil {
		return domainlineups.Lineup{}, false, nil
	}
	return *session.LastLineup, true, nil
}

// ExpireIdle drops sessions not seen within ttl and returns how many were removed.
func (s *Service) ExpireIdle(ttl time.Duration) int {
	return s.store.DeleteIdleSince(s.now().UTC().Add(-ttl))
}

func (s *Service) touch(id string, fn func(*domainsessions.Session) error) (domainsessions.Session, error) {
	return s.store.UpdateSession(id, func(session *domainsessions.Session) error {
		if err := fn(session); err != nil {
			return err
		}
		session.LastSeen = s.now().UTC()
		return nil
	})
}

// NormalizeEmail trims and lower-cases an address after checking it parses.
func NormalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", domainsessions.ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", domainsessions.ErrInvalidEmail
	}
	return strings.ToLower(addr.Address), nil
}
