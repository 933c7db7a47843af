package lineups

import (
	"errors"
	"fmt"
)

const minTeams = 2

var (
	ErrTooFewTeams  = fmt.Errorf("team count must be at least %d", minTeams)
	ErrTooManyTeams = errors.New("team count exceeds the configured maximum")
	ErrEmptyRoster  = errors.New("roster has no players")
)

// Rejection reasons reported to metrics.
const (
	reasonTooFewTeams   = "too_few_teams"
	reasonTooManyTeams  = "too_many_teams"
	reasonEmptyRoster   = "empty_roster"
	reasonTooFewPlayers = "too_few_players"
)

// InsufficientPlayersError reports a roster smaller than the requested number of teams.
type InsufficientPlayersError struct {
	Players int
	Teams   int
}

func (e *InsufficientPlayersError) Error() string {
	return fmt.Sprintf("please enter at least %d players to create %d teams (got %d)", e.Teams, e.Teams, e.Players)
}

// AsInsufficientPlayers attempts to unwrap an error into an InsufficientPlayersError.
func AsInsufficientPlayers(err error) (*InsufficientPlayersError, bool) {
	var ipErr *InsufficientPlayersError
	if errors.As(err, &ipErr) {
		return ipErr, true
	}
	return nil, false
}

// IsValidation reports whether err is a request validation failure rather than an internal fault.
func IsValidation(err error) bool {
	if _, ok := AsInsufficientPlayers(err); ok {
		return true
	}
	return errors.Is(err, ErrTooFewTeams) || errors.Is(err, ErrTooManyTeams) || errors.Is(err, ErrEmptyRoster)
}
