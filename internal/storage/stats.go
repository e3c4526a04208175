package storage

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// DataStats holds aggregate statistics about all stored data.
type DataStats struct {
	TotalWorkouts   int64             `json:"total_workouts"`
	TotalSets       int64             `json:"total_sets"`
	TotalExercises  int64             `json:"total_exercises"`
	TotalTemplates  int64             `json:"total_templates"`
	EarliestWorkout *time.Time        `json:"earliest_workout"`
	LatestWorkout   *time.Time        `json:"latest_workout"`
	WorkoutsByName  []WorkoutNameStat `json:"workouts_by_name"`
}

// WorkoutNameStat holds summary stats for a single workout name.
type WorkoutNameStat struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// GetDataStats returns aggregate statistics over the whole database. Set
// counts come from the embedded exercise documents, so workouts are decoded
// rather than counted in SQL.
func (s *Store) GetDataStats(ctx context.Context) (*DataStats, error) {
	stats := &DataStats{}

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercises`).Scan(&stats.TotalExercises)
	if err != nil {
		return nil, fmt.Errorf("counting exercises: %w", err)
	}
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM workout_templates`).Scan(&stats.TotalTemplates)
	if err != nil {
		return nil, fmt.Errorf("counting templates: %w", err)
	}

	workouts, err := s.ListWorkouts(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int64)
	for _, w := range workouts {
		stats.TotalWorkouts++
		byName[w.Name]++
		for _, entry := range w.Exercises {
			stats.TotalSets += int64(len(entry.Sets))
		}
		started := w.Started
		if stats.EarliestWorkout == nil || started.Before(*stats.EarliestWorkout) {
			t := started
			stats.EarliestWorkout = &t
		}
		if stats.LatestWorkout == nil || started.After(*stats.LatestWorkout) {
			t := started
			stats.LatestWorkout = &t
		}
	}

	for name, count := range byName {
		stats.WorkoutsByName = append(stats.WorkoutsByName, WorkoutNameStat{Name: name, Count: count})
	}
	sort.Slice(stats.WorkoutsByName, func(i, j int) bool {
		a, b := stats.WorkoutsByName[i], stats.WorkoutsByName[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Name < b.Name
	})

	return stats, nil
}
