package storage

import (
	"context"
	"fmt"

	"github.com/plonkout/plonkout/internal/models"
)

// ListExercises returns the full exercise catalog ordered by ID.
func (s *Store) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, muscle_group, single_arm, type, display_type
		 FROM exercises
		 ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []models.Exercise
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroup, &e.SingleArm, &e.Type, &e.DisplayType); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// SaveExercise creates or updates a catalog entry and returns its ID. Unlike
// workouts, catalog entries carry no created/updated stamps.
func (s *Store) SaveExercise(ctx context.Context, e *models.Exercise) (int64, error) {
	if e.ID != 0 {
		res, err := s.db.ExecContext(ctx,
			`UPDATE exercises
			 SET name = ?, muscle_group = ?, single_arm = ?, type = ?, display_type = ?
			 WHERE id = ?`,
			e.Name, e.MuscleGroup, e.SingleArm, e.Type, e.DisplayType, e.ID)
		if err != nil {
			return 0, fmt.Errorf("%w: updating exercise %d: %v", ErrWriteFailed, e.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("updating exercise %d: %w", e.ID, err)
		}
		if n == 0 {
			return 0, fmt.Errorf("%w: no exercise with id %d", ErrWriteFailed, e.ID)
		}
		return e.ID, nil
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO exercises (name, muscle_group, single_arm, type, display_type)
		 VALUES (?, ?, ?, ?, ?)`,
		e.Name, e.MuscleGroup, e.SingleArm, e.Type, e.DisplayType)
	if err != nil {
		return 0, fmt.Errorf("%w: inserting exercise: %v", ErrWriteFailed, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("inserting exercise: %w", err)
	}
	return id, nil
}
