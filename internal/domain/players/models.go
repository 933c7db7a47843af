package players

import "strings"

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 3
)

// goalkeeperPrefixes mark a goalkeeper when they lead the player's name.
var goalkeeperPrefixes = []string{"GK-", "PO-"}

// Player is one roster entry for a single generation run.
type Player struct {
	Name         string `json:"name"`
	Rating       int    `json:"rating"`
	IsGoalkeeper bool   `json:"isGoalkeeper"`
}

// New builds a Player, clamping the rating and deriving the goalkeeper flag from the name.
// The goalkeeper prefix stays part of the name.
func New(name string, rating int) Player {
	return Player{
		Name:         name,
		Rating:       ClampRating(rating),
		IsGoalkeeper: HasGoalkeeperPrefix(name),
	}
}

// ClampRating forces a rating into [MinRating, MaxRating].
func ClampRating(rating int) int {
	return max(MinRating, min(MaxRating, rating))
}

// HasGoalkeeperPrefix reports whether name starts with GK- or PO-, ignoring case.
func HasGoalkeeperPrefix(name string) bool {
	upper := strings.ToUpper(name)
	for _, prefix := range goalkeeperPrefixes {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}
