// Package balancer splits a roster into teams of similar total skill.
//
// Goalkeepers and field players are balanced as separate groups. Each group is
// sorted by rating (highest first, ties in input order) and dealt round-robin
// starting from the first team, so goalkeepers spread across teams before any
// field player is placed. The result is approximate: it is a greedy deal, not
// an optimal partition.
package balancer

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/preston-bernstein/pickup-teams-service/internal/domain/players"
	"github.com/preston-bernstein/pickup-teams-service/internal/domain/teams"
)

// Source is the randomness used for color shuffling and matchup picks.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Shuffle(n int, swap func(i, j int))
	IntN(n int) int
}

// Result is the outcome of one balancing run. Colors and SkillTotals are indexed like Teams.
type Result struct {
	Teams       []teams.Team  `json:"teams"`
	Colors      []teams.Color `json:"colors"`
	SkillTotals []int         `json:"skillTotals"`
}

// Spread is the gap between the strongest and weakest team totals.
func (r Result) Spread() int {
	if len(r.SkillTotals) == 0 {
		return 0
	}
	return slices.Max(r.SkillTotals) - slices.Min(r.SkillTotals)
}

// Balancer deals players into teams. It is not safe for concurrent use; build one per run.
type Balancer struct {
	src Source
}

// New returns a Balancer drawing randomness from src.
func New(src Source) *Balancer {
	return &Balancer{src: src}
}

// NewSeeded returns a Balancer whose color shuffle is reproducible for a given seed.
func NewSeeded(seed uint64) *Balancer {
	return New(rand.New(rand.NewPCG(seed, seed)))
}

// Balance partitions roster into teamCount teams. A non-positive teamCount yields an empty result.
// Teams beyond the number of players are returned empty.
func (b *Balancer) Balance(roster []players.Player, teamCount int) Result {
	colors := b.assignColors(max(teamCount, 0))
	if teamCount <= 0 {
		return Result{Teams: []teams.Team{}, Colors: colors, SkillTotals: []int{}}
	}

	goalkeepers, field := splitByRole(roster)
	sortByRatingDesc(goalkeepers)
	sortByRatingDesc(field)

	out := make([]teams.Team, teamCount)
	deal(out, goalkeepers)
	deal(out, field)

	totals := make([]int, teamCount)
	for i := range out {
		if out[i].Players == nil {
			out[i].Players = []players.Player{}
		}
		sortByName(out[i].Players)
		out[i].Color = colors[i]
		totals[i] = out[i].TotalSkill
	}

	return Result{Teams: out, Colors: colors, SkillTotals: totals}
}

// SuggestMatchup picks two distinct teams for the opening game.
func (b *Balancer) SuggestMatchup(teamCount int) (teams.Matchup, bool) {
	if teamCount < 2 {
		return teams.Matchup{}, false
	}
	home := b.src.IntN(teamCount)
	away := b.src.IntN(teamCount - 1)
	if away >= home {
		away++
	}
	return teams.Matchup{Home: home, Away: away}, true
}

func (b *Balancer) assignColors(teamCount int) []teams.Color {
	palette := teams.Palette
	b.src.Shuffle(len(palette), func(i, j int) {
		palette[i], palette[j] = palette[j], palette[i]
	})

	colors := make([]teams.Color, teamCount)
	for i := range colors {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}

func splitByRole(roster []players.Player) (goalkeepers, field []players.Player) {
	for _, p := range roster {
		if p.IsGoalkeeper {
			goalkeepers = append(goalkeepers, p)
		} else {
			field = append(field, p)
		}
	}
	return goalkeepers, field
}

func sortByRatingDesc(group []players.Player) {
	slices.SortStableFunc(group, func(a, b players.Player) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
}

func sortByName(group []players.Player) {
	slices.SortStableFunc(group, func(a, b players.Player) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}

func deal(out []teams.Team, group []players.Player) {
	for i, p := range group {
		out[i%len(out)].Add(p)
	}
}
