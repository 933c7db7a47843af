package teams

import "github.com/preston-bernstein/pickup-teams-service/internal/domain/players"

// Color is a display label for a team: an emoji symbol plus a readable name.
type Color struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Palette is the fixed set of team colors. Runs with more teams than colors reuse entries.
var Palette = [...]Color{
	{Symbol: "🔴", Name: "Red"},
	{Symbol: "🔵", Name: "Blue"},
	{Symbol: "🟢", Name: "Green"},
	{Symbol: "🟡", Name: "Yellow"},
	{Symbol: "🟠", Name: "Orange"},
	{Symbol: "🟣", Name: "Purple"},
	{Symbol: "⚫", Name: "Black"},
	{Symbol: "⚪", Name: "White"},
}

// Team is one balanced side produced by a generation run.
type Team struct {
	Players    []players.Player `json:"players"`
	TotalSkill int              `json:"totalSkill"`
	Color      Color            `json:"color"`
}

// Add appends a player and keeps TotalSkill in step.
func (t *Team) Add(p players.Player) {
	t.Players = append(t.Players, p)
	t.TotalSkill += p.Rating
}

// Size returns the number of players on the team.
func (t Team) Size() int {
	return len(t.Players)
}

// AverageSkill is TotalSkill divided by team size; an empty team averages 0.
func (t Team) AverageSkill() float64 {
	if len(t.Players) == 0 {
		return 0
	}
	return float64(t.TotalSkill) / float64(len(t.Players))
}

// Goalkeepers counts the goalkeepers on the team.
func (t Team) Goalkeepers() int {
	n := 0
	for _, p := range t.Players {
		if p.IsGoalkeeper {
			n++
		}
	}
	return n
}

// Matchup pairs two distinct teams (zero-based indexes) for the first game.
type Matchup struct {
	Home int `json:"home"`
	Away int `json:"away"`
}
