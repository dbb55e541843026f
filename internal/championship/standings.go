package championship

import (
	"sort"
)

// SortStandings orders the table: points, then goal difference, then goals
// scored, then name for a stable display order.
func SortStandings(rows []StandingsRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		di := rows[i].GoalsFor - rows[i].GoalsAgainst
		dj := rows[j].GoalsFor - rows[j].GoalsAgainst
		if di != dj {
			return di > dj
		}
		if rows[i].GoalsFor != rows[j].GoalsFor {
			return rows[i].GoalsFor > rows[j].GoalsFor
		}
		return rows[i].TeamName < rows[j].TeamName
	})
}
