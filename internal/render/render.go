// Package render formats lineups for terminal output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	domainlineups "github.com/preston-bernstein/pickup-teams-service/internal/domain/lineups"
	"github.com/preston-bernstein/pickup-teams-service/internal/domain/players"
	"github.com/preston-bernstein/pickup-teams-service/internal/domain/teams"
)

const (
	goalkeeperMark = "🧤"
	star           = "⭐"
)

var teamColors = map[string]lipgloss.Color{
	"Red":    lipgloss.Color("#e53935"),
	"Blue":   lipgloss.Color("#2196F3"),
	"Green":  lipgloss.Color("#8BC34A"),
	"Yellow": lipgloss.Color("#FFC107"),
	"Orange": lipgloss.Color("#ff8a65"),
	"Purple": lipgloss.Color("#9c27b0"),
	"Black":  lipgloss.Color("#424242"),
	"White":  lipgloss.Color("#f2f2f2"),
}

// PlayerLine renders "Name (⭐⭐⭐)", with a glove after goalkeepers' names.
func PlayerLine(p players.Player) string {
	stars := strings.Repeat(star, max(p.Rating, 0))
	if p.IsGoalkeeper {
		return fmt.Sprintf("%s %s (%s)", p.Name, goalkeeperMark, stars)
	}
	return fmt.Sprintf("%s (%s)", p.Name, stars)
}

// TeamHeader renders the one-based team title with its color and size.
func TeamHeader(idx int, team teams.Team) string {
	return fmt.Sprintf("Team %d %s (%s) - %d players", idx+1, team.Color.Symbol, team.Color.Name, team.Size())
}

// AverageLine renders the team's mean rating to two decimals.
func AverageLine(team teams.Team) string {
	return fmt.Sprintf("Avg Skill: %.2f", team.AverageSkill())
}

// MatchupLine renders the suggested opening game with one-based team numbers.
func MatchupLine(m teams.Matchup) string {
	return fmt.Sprintf("🏟️ First match: Team %d vs Team %d", m.Home+1, m.Away+1)
}

// Text renders lineups with lipgloss styles suited to the destination writer.
// Colors are dropped when the writer is not a terminal.
type Text struct {
	renderer *lipgloss.Renderer
	title    lipgloss.Style
	muted    lipgloss.Style
	matchup  lipgloss.Style
}

// NewText builds a Text renderer for w.
func NewText(w io.Writer) *Text {
	r := lipgloss.NewRenderer(w)
	return &Text{
		renderer: r,
		title:    r.NewStyle().Bold(true).Underline(true),
		muted:    r.NewStyle().Faint(true),
		matchup:  r.NewStyle().Bold(true).Foreground(teamColors["Blue"]),
	}
}

// Lineup renders every team followed by the matchup suggestion and the seed.
func (t *Text) Lineup(l domainlineups.Lineup) string {
	var b strings.Builder
	b.WriteString(t.title.Render("Generated Teams"))
	b.WriteString("\n\n")
	for i, team := range l.Teams {
		b.WriteString(t.Team(i, team))
		b.WriteString("\n")
	}
	if l.Matchup != nil {
		b.WriteString("\n")
		b.WriteString(t.matchup.Render(MatchupLine(*l.Matchup)))
		b.WriteString("\n")
	}
	b.WriteString(t.muted.Render(fmt.Sprintf("seed %d", l.Seed)))
	b.WriteString("\n")
	return b.String()
}

// Team renders one team as a bordered card.
func (t *Text) Team(idx int, team teams.Team) string {
	accent := colorFor(team.Color)
	lines := make([]string, 0, len(team.Players)+2)
	lines = append(lines,
		t.renderer.NewStyle().Bold(true).Foreground(accent).Render(TeamHeader(idx, team)),
		t.muted.Render(AverageLine(team)),
	)
	for _, p := range team.Players {
		lines = append(lines, "• "+PlayerLine(p))
	}

	card := t.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)
	return card.Render(strings.Join(lines, "\n"))
}

func colorFor(c teams.Color) lipgloss.TerminalColor {
	if color, ok := teamColors[c.Name]; ok {
		return color
	}
	return lipgloss.NoColor{}
}
