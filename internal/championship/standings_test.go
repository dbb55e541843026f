package championship

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortStandings(t *testing.T) {
	rows := []StandingsRow{
		{TeamName: "Azul", Points: 10, GoalsFor: 12, GoalsAgainst: 8},
		{TeamName: "Verde", Points: 15, GoalsFor: 20, GoalsAgainst: 5},
		{TeamName: "Rubro", Points: 10, GoalsFor: 15, GoalsAgainst: 8},
	}

	SortStandings(rows)

	require.Equal(t, "Verde", rows[0].TeamName)
	require.Equal(t, "Rubro", rows[1].TeamName, "equal points fall back to goal difference")
	require.Equal(t, "Azul", rows[2].TeamName)
}

func TestSortStandingsFullTiebreakChain(t *testing.T) {
	rows := []StandingsRow{
		{TeamName: "Beta", Points: 9, GoalsFor: 10, GoalsAgainst: 5},
		{TeamName: "Alfa", Points: 9, GoalsFor: 10, GoalsAgainst: 5},
		{TeamName: "Gama", Points: 9, GoalsFor: 12, GoalsAgainst: 7},
	}

	SortStandings(rows)

	// Same points and goal difference: more goals scored ranks first, then
	// the name decides.
	require.Equal(t, "Gama", rows[0].TeamName)
	require.Equal(t, "Alfa", rows[1].TeamName)
	require.Equal(t, "Beta", rows[2].TeamName)
}
