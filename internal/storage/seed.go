package storage

import (
	"context"
	"fmt"

	"github.com/plonkout/plonkout/internal/models"
)

// SeedDefaultExercises inserts the curated default catalog when the exercise
// store is empty. Safe to call on every startup: the count check and inserts
// run inside one transaction, so the catalog is seeded at most once.
func (s *Store) SeedDefaultExercises(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercises`).Scan(&count); err != nil {
		return fmt.Errorf("counting exercises: %w", err)
	}
	if count > 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO exercises (name, muscle_group, single_arm, type, display_type)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing seed insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range defaultExercises {
		if _, err := stmt.ExecContext(ctx, e.Name, e.MuscleGroup, e.SingleArm, e.Type, e.DisplayType); err != nil {
			return fmt.Errorf("%w: seeding exercise %q: %v", ErrWriteFailed, e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing seed: %v", ErrWriteFailed, err)
	}
	return nil
}

func strength(name, group string, singleArm bool) models.Exercise {
	return models.Exercise{Name: name, MuscleGroup: group, SingleArm: singleArm,
		Type: models.ExerciseStrength, DisplayType: models.DisplayReps}
}

func cardio(name, group string, display models.DisplayType) models.Exercise {
	return models.Exercise{Name: name, MuscleGroup: group,
		Type: models.ExerciseCardio, DisplayType: display}
}

// defaultExercises is the curated catalog seeded into an empty database,
// heavy on armwrestling accessories alongside the usual gym staples.
var defaultExercises = []models.Exercise{
	// Armwrestling specific
	strength("Wrist Curl", "Forearm", true),
	strength("Pronation Curl", "Forearm", true),
	strength("Supination Curl", "Forearm", true),
	strength("Side Pressure", "Shoulders", true),
	strength("Hook Training", "Forearm", true),
	strength("Top Roll Training", "Forearm", true),
	strength("Cable Hammer Curl", "Biceps", true),

	// Chest
	strength("Bench Press", "Chest", false),
	strength("Incline Bench Press", "Chest", false),
	strength("Decline Bench Press", "Chest", false),
	strength("Close Grip Bench Press", "Triceps", false),
	strength("Dumbbell Press", "Chest", false),
	strength("Incline Dumbbell Press", "Chest", false),
	strength("Chest Fly", "Chest", false),
	strength("Push-ups", "Chest", false),
	strength("Dips", "Chest", false),

	// Back
	strength("Deadlift", "Back", false),
	strength("Sumo Deadlift", "Back", false),
	strength("Romanian Deadlift", "Back", false),
	strength("Bent Over Row", "Back", false),
	strength("T-Bar Row", "Back", false),
	strength("Cable Row", "Back", false),
	strength("Lat Pulldown", "Back", false),
	strength("Pull-ups", "Back", false),
	strength("Chin-ups", "Back", false),
	strength("Single Arm Row", "Back", true),

	// Shoulders
	strength("Shoulder Press", "Shoulders", false),
	strength("Overhead Press", "Shoulders", false),
	strength("Dumbbell Shoulder Press", "Shoulders", false),
	strength("Lateral Raise", "Shoulders", false),
	strength("Front Raise", "Shoulders", false),
	strength("Rear Delt Fly", "Shoulders", false),
	strength("Upright Row", "Shoulders", false),
	strength("Shrugs", "Shoulders", false),

	// Legs
	strength("Squat", "Legs", false),
	strength("Front Squat", "Legs", false),
	strength("Bulgarian Split Squat", "Legs", false),
	strength("Leg Press", "Legs", false),
	strength("Leg Curl", "Legs", false),
	strength("Leg Extension", "Legs", false),
	strength("Calf Raise", "Legs", false),
	strength("Lunges", "Legs", false),

	// Biceps
	strength("Bicep Curl", "Biceps", false),
	strength("Hammer Curl", "Biceps", false),
	strength("Preacher Curl", "Biceps", false),
	strength("Cable Curl", "Biceps", false),
	strength("Concentration Curl", "Biceps", true),

	// Triceps
	strength("Tricep Extension", "Triceps", false),
	strength("Overhead Tricep Extension", "Triceps", false),
	strength("Tricep Pushdown", "Triceps", false),
	strength("Diamond Push-ups", "Triceps", false),

	// Core
	{Name: "Plank", MuscleGroup: "Abs", Type: models.ExerciseStrength, DisplayType: models.DisplayTime},
	strength("Crunches", "Abs", false),
	strength("Russian Twists", "Abs", false),
	strength("Leg Raises", "Abs", false),
	cardio("Mountain Climbers", "Abs", models.DisplayTime),
	strength("Dead Bug", "Abs", false),

	// Cardio
	cardio("Running", "Legs", models.DisplayTime),
	cardio("Walking", "Legs", models.DisplayTime),
	cardio("Jogging", "Legs", models.DisplayTime),
	cardio("Cycling", "Legs", models.DisplayTime),
	cardio("Rowing Machine", "Back", models.DisplayTime),
	cardio("Elliptical", "Legs", models.DisplayTime),
	cardio("Swimming", "Back", models.DisplayTime),
	cardio("Jumping Jacks", "Legs", models.DisplayReps),
	cardio("Burpees", "Chest", models.DisplayReps),
	cardio("High Knees", "Legs", models.DisplayTime),
}
