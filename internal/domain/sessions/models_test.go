package sessions

import (
	"testing"
	"time"

	"github.com/preston-bernstein/pickup-teams-service/internal/domain/lineups"
)

func TestCloneSharesNoState(t *testing.T) {
	now := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	s := New("abc", now)
	s.Members["a@example.com"] = Member{Email: "a@example.com", FirstName: "Ann"}
	s.LastLineup = &lineups.Lineup{ID: "l1"}

	c := s.Clone()
	c.Members["b@example.com"] = Member{Email: "b@example.com"}
	c.LastLineup.ID = "changed"

	if len(s.Members) != 1 {
		t.Fatalf("expected original members untouched, got %d", len(s.Members))
	}
	if s.LastLineup.ID != "l1" {
		t.Fatalf("expected original lineup untouched, got %s", s.LastLineup.ID)
	}
}

func TestMemberListSortedByName(t *testing.T) {
	s := New("abc", time.Now())
	s.Members["z@x.io"] = Member{Email: "z@x.io", FirstName: "zoe", Surname: "Adams"}
	s.Members["a@x.io"] = Member{Email: "a@x.io", FirstName: "Adam", Surname: "Young"}
	s.Members["b@x.io"] = Member{Email: "b@x.io", FirstName: "adam", Surname: "young"}

	list := s.MemberList()
	want := []string{"a@x.io", "b@x.io", "z@x.io"}
	for i, m := range list {
		if m.Email != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], m.Email)
		}
	}
}

func TestPaidCountAndExpiry(t *testing.T) {
	now := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	s := New("abc", now)
	s.Members["a"] = Member{Paid: true}
	s.Members["b"] = Member{}

	if s.PaidCount() != 1 {
		t.Fatalf("expected 1 paid member, got %d", s.PaidCount())
	}
	if s.Expired(now.Add(time.Hour), 2*time.Hour) {
		t.Fatalf("expected session to be live within ttl")
	}
	if !s.Expired(now.Add(3*time.Hour), 2*time.Hour) {
		t.Fatalf("expected session to expire after ttl")
	}
}

func TestMemberFullName(t *testing.T) {
	if got := (Member{FirstName: "Ann"}).FullName(); got != "Ann" {
		t.Fatalf("expected trimmed full name, got %q", got)
	}
}
