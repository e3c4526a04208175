package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plonkout/plonkout/internal/models"
)

// ExportDocument is the portable dump of the entire database: one JSON object
// with top-level arrays, suitable for download and manual re-import.
type ExportDocument struct {
	ExportID   uuid.UUID                  `json:"exportId"`
	ExportedAt time.Time                  `json:"exportedAt"`
	Workouts   []models.Workout           `json:"workouts"`
	Exercises  []models.Exercise          `json:"exercises"`
	Settings   map[string]json.RawMessage `json:"settings"`
	Templates  []models.WorkoutTemplate   `json:"templates"`
}

// ExportAll reads every collection and assembles the export document.
func (s *Store) ExportAll(ctx context.Context) (*ExportDocument, error) {
	workouts, err := s.ListWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("exporting workouts: %w", err)
	}
	exercises, err := s.ListExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("exporting exercises: %w", err)
	}
	templates, err := s.ListWorkoutTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("exporting templates: %w", err)
	}

	settings := make(map[string]json.RawMessage)
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("exporting settings: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}
		settings[key] = json.RawMessage(value)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &ExportDocument{
		ExportID:   uuid.New(),
		ExportedAt: time.Now().UTC(),
		Workouts:   workouts,
		Exercises:  exercises,
		Settings:   settings,
		Templates:  templates,
	}, nil
}

// ResetAll irrecoverably destroys every record in every collection. All
// deletes run in one transaction, so a failure leaves the data intact rather
// than partially wiped. There is no undo; callers must confirm twice before
// invoking this.
func (s *Store) ResetAll(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning reset: %v", ErrWriteFailed, err)
	}
	defer tx.Rollback()

	for _, table := range []string{"workouts", "exercises", "settings", "workout_templates"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("%w: clearing %s: %v", ErrWriteFailed, table, err)
		}
	}
	// Restart the autoincrement counters so a fresh database starts at 1.
	if _, err := tx.ExecContext(ctx, `DELETE FROM sqlite_sequence`); err != nil {
		return fmt.Errorf("%w: resetting sequences: %v", ErrWriteFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing reset: %v", ErrWriteFailed, err)
	}
	return nil
}
