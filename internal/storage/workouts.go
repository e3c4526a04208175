package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/plonkout/plonkout/internal/models"
)

// Times are stored as RFC 3339 text so records survive schema migrations and
// remain readable in the raw file. The fraction is zero-padded to a fixed
// nine digits: SQLite compares these columns as text, and variable-width
// fractions would sort "10:00:00Z" after "10:00:00.5Z".
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime accepts both the fixed-width form and earlier variable-width
// RFC 3339 text.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// ListWorkouts returns every workout ordered by start time ascending, the
// order the started index stores them in. Callers re-sort for display.
func (s *Store) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, started, ended, notes, exercises, created, updated
		 FROM workouts
		 ORDER BY started ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	var result []models.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	return result, rows.Err()
}

// MostRecentWorkoutByName returns the latest workout with the given name,
// optionally excluding one ID (pass 0 for none). The (name, started) index
// serves the lookup, so it stays fast on large histories. Returns nil when
// no workout matches.
func (s *Store) MostRecentWorkoutByName(ctx context.Context, name string, excludeID int64) (*models.Workout, error) {
	if name == "" {
		return nil, nil
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, started, ended, notes, exercises, created, updated
		 FROM workouts
		 WHERE name = ? AND (? = 0 OR id <> ?)
		 ORDER BY started DESC
		 LIMIT 1`,
		name, excludeID, excludeID)

	w, err := scanWorkout(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// GetWorkout returns the workout with the given ID, or nil when absent.
func (s *Store) GetWorkout(ctx context.Context, id int64) (*models.Workout, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, started, ended, notes, exercises, created, updated
		 FROM workouts
		 WHERE id = ?`, id)

	w, err := scanWorkout(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// SaveWorkout creates or updates a workout and returns its ID. A workout with
// an ID updates that exact record in place and stamps updated; a workout
// without one inserts a new record, stamping both created and updated.
func (s *Store) SaveWorkout(ctx context.Context, w *models.Workout) (int64, error) {
	exercisesJSON, err := json.Marshal(exercisesOrEmpty(w.Exercises))
	if err != nil {
		return 0, fmt.Errorf("encoding exercises: %w", err)
	}

	now := time.Now()
	var ended sql.NullString
	if w.Ended != nil {
		ended = sql.NullString{String: formatTime(*w.Ended), Valid: true}
	}

	if w.ID != 0 {
		res, err := s.db.ExecContext(ctx,
			`UPDATE workouts
			 SET name = ?, started = ?, ended = ?, notes = ?, exercises = ?, updated = ?
			 WHERE id = ?`,
			w.Name, formatTime(w.Started), ended, w.Notes, string(exercisesJSON),
			formatTime(now), w.ID)
		if err != nil {
			return 0, fmt.Errorf("%w: updating workout %d: %v", ErrWriteFailed, w.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("updating workout %d: %w", w.ID, err)
		}
		if n == 0 {
			return 0, fmt.Errorf("%w: no workout with id %d", ErrWriteFailed, w.ID)
		}
		return w.ID, nil
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO workouts (name, started, ended, notes, exercises, created, updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		w.Name, formatTime(w.Started), ended, w.Notes, string(exercisesJSON),
		formatTime(now), formatTime(now))
	if err != nil {
		return 0, fmt.Errorf("%w: inserting workout: %v", ErrWriteFailed, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("inserting workout: %w", err)
	}
	return id, nil
}

// DeleteWorkout removes a workout. Deleting an absent ID is a no-op.
func (s *Store) DeleteWorkout(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: deleting workout %d: %v", ErrWriteFailed, id, err)
	}
	return nil
}

// exercisesOrEmpty keeps the stored JSON an array, never null.
func exercisesOrEmpty(entries []models.ExerciseEntry) []models.ExerciseEntry {
	if entries == nil {
		return []models.ExerciseEntry{}
	}
	return entries
}

// scannable covers *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func scanWorkout(row scannable) (models.Workout, error) {
	var (
		w             models.Workout
		started       string
		ended         sql.NullString
		exercisesJSON string
		created       string
		updated       string
	)
	if err := row.Scan(&w.ID, &w.Name, &started, &ended, &w.Notes, &exercisesJSON, &created, &updated); err != nil {
		if err == sql.ErrNoRows {
			return w, err
		}
		return w, fmt.Errorf("scanning workout: %w", err)
	}

	var err error
	if w.Started, err = parseTime(started); err != nil {
		return w, fmt.Errorf("parsing workout started: %w", err)
	}
	if ended.Valid {
		t, err := parseTime(ended.String)
		if err != nil {
			return w, fmt.Errorf("parsing workout ended: %w", err)
		}
		w.Ended = &t
	}
	if w.Created, err = parseTime(created); err != nil {
		return w, fmt.Errorf("parsing workout created: %w", err)
	}
	if w.Updated, err = parseTime(updated); err != nil {
		return w, fmt.Errorf("parsing workout updated: %w", err)
	}
	if err := json.Unmarshal([]byte(exercisesJSON), &w.Exercises); err != nil {
		return w, fmt.Errorf("decoding exercises: %w", err)
	}
	return w, nil
}
