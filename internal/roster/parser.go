// Package roster turns free-text roster input into players.
//
// The grammar is deliberately forgiving:
//
//	entry       := name [ "(" rating ")" ]
//	rating      := integer literal, surrounding whitespace ignored
//	name-prefix := "GK-" | "PO-"   (case-insensitive, marks a goalkeeper)
//
// Entries are comma separated. Malformed ratings never fail the parse; the
// entry falls back to the default rating and keeps its full text as the name.
package roster

import (
	"errors"
	"strconv"
	"strings"

	"github.com/preston-bernstein/pickup-teams-service/internal/domain/players"
)

const entrySeparator = ","

// Parser converts raw roster text into players.
type Parser interface {
	Parse(text string) []players.Player
}

// FreeText is the default comma-separated grammar.
type FreeText struct{}

// Parse implements Parser.
func (FreeText) Parse(text string) []players.Player {
	return Parse(text)
}

// Parse splits text on commas and parses each non-blank entry. Output order matches input order.
func Parse(text string) []players.Player {
	var result []players.Player
	if strings.TrimSpace(text) == "" {
		return result
	}

	for _, raw := range strings.Split(text, entrySeparator) {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}
		result = append(result, ParseEntry(entry))
	}
	return result
}

// ParseEntry parses a single trimmed entry such as "GK-Bob (4)".
func ParseEntry(entry string) players.Player {
	open := strings.LastIndex(entry, "(")
	closing := strings.LastIndex(entry, ")")
	if open < 0 || closing < 0 {
		return players.New(entry, players.DefaultRating)
	}

	rating, ok := parseRating(entry, open, closing)
	if !ok {
		return players.New(entry, players.DefaultRating)
	}

	name := strings.TrimSpace(entry[:open])
	if name == "" {
		name = entry
	}
	return players.New(name, rating)
}

// parseRating reads the integer between the last "(" and the last ")".
// Out-of-range integers are still numbers and come back saturated so they clamp.
func parseRating(entry string, open, closing int) (int, bool) {
	if closing <= open {
		return 0, false
	}
	raw := strings.TrimSpace(entry[open+1 : closing])
	val, err := strconv.Atoi(raw)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return val, true
}

// Summary counts players by role.
type Summary struct {
	Total       int
	Goalkeepers int
	Field       int
}

// Stats summarizes a parsed roster.
func Stats(roster []players.Player) Summary {
	s := Summary{Total: len(roster)}
	for _, p := range roster {
		if p.IsGoalkeeper {
			s.Goalkeepers++
		}
	}
	s.Field = s.Total - s.Goalkeepers
	return s
}
