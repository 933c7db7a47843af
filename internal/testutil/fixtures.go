package testutil

import "time"

// ScenarioRoster is the four-player roster used throughout the docs: one goalkeeper, three field players.
const ScenarioRoster = "Joe (5), Jane (3), GK-Bob (4), Frank (2)"

// LeagueNightRoster is a larger mixed roster with goalkeepers, ties, defaults, and a malformed rating.
const LeagueNightRoster = "GK-Ann (4), PO-Ben (2), Cy (5), Di (5), Ed (3), Fi (1), Gus, Hal (4), " +
	"Ivy (2), Jo (Jr) (3), Kai (abc), Lu (5)"

// KickOff is a fixed instant for clock-dependent tests.
var KickOff = time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
