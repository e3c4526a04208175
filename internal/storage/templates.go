package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/plonkout/plonkout/internal/models"
)

// ListWorkoutTemplates returns all templates ordered by creation time
// ascending, the order the created index stores them in.
func (s *Store) ListWorkoutTemplates(ctx context.Context) ([]models.WorkoutTemplate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, notes, exercises, created, updated
		 FROM workout_templates
		 ORDER BY created ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// GetWorkoutTemplate returns the template with the given ID, or nil when absent.
func (s *Store) GetWorkoutTemplate(ctx context.Context, id int64) (*models.WorkoutTemplate, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, notes, exercises, created, updated
		 FROM workout_templates
		 WHERE id = ?`, id)

	t, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveWorkoutTemplate creates or updates a template and returns its ID. A
// provided created time is preserved; otherwise the first save stamps it.
// Every save stamps updated.
func (s *Store) SaveWorkoutTemplate(ctx context.Context, t *models.WorkoutTemplate) (int64, error) {
	exercisesJSON, err := json.Marshal(exercisesOrEmpty(t.Exercises))
	if err != nil {
		return 0, fmt.Errorf("encoding template exercises: %w", err)
	}

	now := time.Now()
	created := t.Created
	if created.IsZero() {
		created = now
	}

	if t.ID != 0 {
		res, err := s.db.ExecContext(ctx,
			`UPDATE workout_templates
			 SET name = ?, notes = ?, exercises = ?, created = ?, updated = ?
			 WHERE id = ?`,
			t.Name, t.Notes, string(exercisesJSON), formatTime(created), formatTime(now), t.ID)
		if err != nil {
			return 0, fmt.Errorf("%w: updating template %d: %v", ErrWriteFailed, t.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("updating template %d: %w", t.ID, err)
		}
		if n == 0 {
			return 0, fmt.Errorf("%w: no template with id %d", ErrWriteFailed, t.ID)
		}
		return t.ID, nil
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO workout_templates (name, notes, exercises, created, updated)
		 VALUES (?, ?, ?, ?, ?)`,
		t.Name, t.Notes, string(exercisesJSON), formatTime(created), formatTime(now))
	if err != nil {
		return 0, fmt.Errorf("%w: inserting template: %v", ErrWriteFailed, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("inserting template: %w", err)
	}
	return id, nil
}

// DeleteWorkoutTemplate removes a template. Deleting an absent ID is a no-op.
func (s *Store) DeleteWorkoutTemplate(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM workout_templates WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: deleting template %d: %v", ErrWriteFailed, id, err)
	}
	return nil
}

func scanTemplate(row scannable) (models.WorkoutTemplate, error) {
	var (
		t             models.WorkoutTemplate
		exercisesJSON string
		created       string
		updated       string
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Notes, &exercisesJSON, &created, &updated); err != nil {
		if err == sql.ErrNoRows {
			return t, err
		}
		return t, fmt.Errorf("scanning template: %w", err)
	}

	var err error
	if t.Created, err = parseTime(created); err != nil {
		return t, fmt.Errorf("parsing template created: %w", err)
	}
	if t.Updated, err = parseTime(updated); err != nil {
		return t, fmt.Errorf("parsing template updated: %w", err)
	}
	if err := json.Unmarshal([]byte(exercisesJSON), &t.Exercises); err != nil {
		return t, fmt.Errorf("decoding template exercises: %w", err)
	}
	return t, nil
}
