package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/plonkout/plonkout/internal/models"
)

// MonthGroup is one calendar-month bucket of workouts, newest first.
type MonthGroup struct {
	// Label is the human-readable month header, e.g. "January 2024".
	Label string `json:"label"`
	// SortDate is the maximum started time among members. It is recomputed
	// on every insertion, so an out-of-order first member can never pin a
	// stale date on the group.
	SortDate time.Time        `json:"sortDate"`
	Workouts []models.Workout `json:"workouts"`
}

// GroupByMonth partitions workouts into calendar month+year groups and
// returns them newest-first, members within each group also newest-first.
// Input order does not matter.
func GroupByMonth(workouts []models.Workout) []MonthGroup {
	type key struct {
		year  int
		month time.Month
	}

	groups := make(map[key]*MonthGroup)
	var order []key
	for _, w := range workouts {
		k := key{w.Started.Year(), w.Started.Month()}
		g, ok := groups[k]
		if !ok {
			g = &MonthGroup{
				Label:    fmt.Sprintf("%s %d", k.month, k.year),
				SortDate: w.Started,
			}
			groups[k] = g
			order = append(order, k)
		}
		if w.Started.After(g.SortDate) {
			g.SortDate = w.Started
		}
		g.Workouts = append(g.Workouts, w)
	}

	result := make([]MonthGroup, 0, len(order))
	for _, k := range order {
		g := groups[k]
		sort.SliceStable(g.Workouts, func(i, j int) bool {
			return g.Workouts[i].Started.After(g.Workouts[j].Started)
		})
		result = append(result, *g)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SortDate.After(result[j].SortDate)
	})
	return result
}

// LogRow is one entry in the flattened display sequence: either a month
// header or a workout.
type LogRow struct {
	Kind    string          `json:"kind"` // "header" or "workout"
	Label   string          `json:"label,omitempty"`
	Count   int             `json:"count,omitempty"`
	Workout *models.Workout `json:"workout,omitempty"`
}

// FlattenLog turns month groups into the display sequence the log view
// renders: one header per group followed by its members in order.
func FlattenLog(groups []MonthGroup) []LogRow {
	var rows []LogRow
	for _, g := range groups {
		rows = append(rows, LogRow{Kind: "header", Label: g.Label, Count: len(g.Workouts)})
		for i := range g.Workouts {
			rows = append(rows, LogRow{Kind: "workout", Workout: &g.Workouts[i]})
		}
	}
	return rows
}
