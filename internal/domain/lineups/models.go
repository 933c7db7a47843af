package lineups

import (
	"time"

	"github.com/preston-bernstein/pickup-teams-service/internal/domain/players"
	"github.com/preston-bernstein/pickup-teams-service/internal/domain/teams"
)

// Lineup is the outcome of one generation request: the parsed roster and the balanced teams.
// Seed reproduces the color assignment and matchup when fed back in.
type Lineup struct {
	ID          string           `json:"id"`
	Seed        uint64           `json:"seed"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Roster      []players.Player `json:"roster"`
	Teams       []teams.Team     `json:"teams"`
	Colors      []teams.Color    `json:"colors"`
	SkillTotals []int            `json:"skillTotals"`
	Matchup     *teams.Matchup   `json:"matchup,omitempty"`
}

// TeamCount returns the number of teams in the lineup.
func (l Lineup) TeamCount() int {
	return len(l.Teams)
}
