package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/plonkout/plonkout/internal/models"
)

func sampleWorkout(name string) *models.Workout {
	weight := 42.5
	reps := 8
	return &models.Workout{
		Name:    name,
		Started: time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC),
		Exercises: []models.ExerciseEntry{
			{
				Name:        "Bench Press",
				MuscleGroup: "chest",
				Type:        models.ExerciseStrength,
				DisplayType: models.DisplayReps,
				Sets: []models.Set{
					{Type: models.SetRegular, Weight: &weight, Reps: &reps},
				},
			},
		},
	}
}

func TestSaveWorkoutRoundtrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.SaveWorkout(ctx, sampleWorkout("Push Day"))
	if err != nil {
		t.Fatalf("saving workout: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a nonzero id")
	}

	got, err := s.GetWorkout(ctx, id)
	if err != nil {
		t.Fatalf("getting workout: %v", err)
	}
	if got == nil {
		t.Fatal("workout not found after save")
	}
	if got.Name != "Push Day" {
		t.Errorf("name = %q, want %q", got.Name, "Push Day")
	}
	if len(got.Exercises) != 1 || len(got.Exercises[0].Sets) != 1 {
		t.Fatalf("exercises = %+v, want one exercise with one set", got.Exercises)
	}
	set := got.Exercises[0].Sets[0]
	if set.WeightValue() != 42.5 || set.RepsValue() != 8 {
		t.Errorf("set = %.1f x %d, want 42.5 x 8", set.WeightValue(), set.RepsValue())
	}
	if got.Created.IsZero() || got.Updated.IsZero() {
		t.Error("created/updated were not stamped on insert")
	}
}

func TestSaveWorkoutUpdateKeepsIDAndCreated(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.SaveWorkout(ctx, sampleWorkout("Pull Day"))
	if err != nil {
		t.Fatal(err)
	}
	saved, err := s.GetWorkout(ctx, id)
	if err != nil {
		t.Fatal(err)
	}

	saved.Notes = "felt strong"
	gotID, err := s.SaveWorkout(ctx, saved)
	if err != nil {
		t.Fatalf("updating workout: %v", err)
	}
	if gotID != id {
		t.Errorf("update returned id %d, want %d", gotID, id)
	}

	updated, err := s.GetWorkout(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Notes != "felt strong" {
		t.Errorf("notes = %q, want %q", updated.Notes, "felt strong")
	}
	if !updated.Created.Equal(saved.Created) {
		t.Errorf("created changed on update: %v -> %v", saved.Created, updated.Created)
	}
	if updated.Updated.Before(saved.Updated) {
		t.Errorf("updated went backwards: %v -> %v", saved.Updated, updated.Updated)
	}
}

func TestSaveWorkoutUpdateMissingID(t *testing.T) {
	s := testStore(t)

	w := sampleWorkout("Ghost")
	w.ID = 9999
	if _, err := s.SaveWorkout(context.Background(), w); !errors.Is(err, ErrWriteFailed) {
		t.Errorf("err = %v, want ErrWriteFailed", err)
	}
}

func TestGetWorkoutAbsent(t *testing.T) {
	s := testStore(t)

	got, err := s.GetWorkout(context.Background(), 123)
	if err != nil {
		t.Fatalf("getting absent workout: %v", err)
	}
	if got != nil {
		t.Errorf("got = %+v, want nil", got)
	}
}

func TestDeleteWorkout(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.SaveWorkout(ctx, sampleWorkout("Leg Day"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteWorkout(ctx, id); err != nil {
		t.Fatalf("deleting workout: %v", err)
	}
	got, err := s.GetWorkout(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Error("workout still present after delete")
	}

	// Deleting again is a no-op.
	if err := s.DeleteWorkout(ctx, id); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestListWorkoutsOrderedByStart(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	later := sampleWorkout("B")
	later.Started = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	earlier := sampleWorkout("A")
	earlier.Started = time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	if _, err := s.SaveWorkout(ctx, later); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveWorkout(ctx, earlier); err != nil {
		t.Fatal(err)
	}

	all, err := s.ListWorkouts(ctx)
	if err != nil {
		t.Fatalf("listing workouts: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].Name != "A" || all[1].Name != "B" {
		t.Errorf("order = %q, %q; want A then B", all[0].Name, all[1].Name)
	}
}

// Stored text is fixed-width, but records written before the zero-padding
// may carry variable-width fractions; both forms must parse.
func TestParseTimeAcceptsLegacyForms(t *testing.T) {
	want := time.Date(2024, 6, 1, 10, 0, 0, 500_000_000, time.UTC)
	for _, raw := range []string{
		"2024-06-01T10:00:00.500000000Z",
		"2024-06-01T10:00:00.5Z",
	} {
		got, err := parseTime(raw)
		if err != nil {
			t.Errorf("parseTime(%q): %v", raw, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("parseTime(%q) = %v, want %v", raw, got, want)
		}
	}
	if _, err := parseTime("2024-06-01T10:00:00Z"); err != nil {
		t.Errorf("parseTime without fraction: %v", err)
	}
}

// Timestamps inside the same second, with mixed whole-second and fractional
// precision, must still order correctly: the columns compare as text, so the
// stored form has to be order-preserving.
func TestListWorkoutsSubSecondOrdering(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	frac := sampleWorkout("frac")
	frac.Started = time.Date(2024, 6, 1, 10, 0, 0, 500_000_000, time.UTC)
	whole := sampleWorkout("whole")
	whole.Started = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	if _, err := s.SaveWorkout(ctx, frac); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveWorkout(ctx, whole); err != nil {
		t.Fatal(err)
	}

	all, err := s.ListWorkouts(ctx)
	if err != nil {
		t.Fatalf("listing workouts: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].Name != "whole" || all[1].Name != "frac" {
		t.Errorf("mixed-fraction order = %s, %s; want whole, frac", all[0].Name, all[1].Name)
	}
}

func TestMostRecentWorkoutByNameSubSecond(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	earlier := sampleWorkout("Push Day")
	earlier.Started = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	later := sampleWorkout("Push Day")
	later.Started = time.Date(2024, 6, 1, 10, 0, 0, 500_000_000, time.UTC)

	if _, err := s.SaveWorkout(ctx, later); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveWorkout(ctx, earlier); err != nil {
		t.Fatal(err)
	}

	got, err := s.MostRecentWorkoutByName(ctx, "Push Day", 0)
	if err != nil {
		t.Fatalf("looking up most recent: %v", err)
	}
	if got == nil {
		t.Fatal("no workout found")
	}
	if !got.Started.Equal(later.Started) {
		t.Errorf("got started %v, want the fractional-second session %v",
			got.Started, later.Started)
	}
}

func TestMostRecentWorkoutByName(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	old := sampleWorkout("Push Day")
	old.Started = time.Date(2024, 1, 5, 18, 0, 0, 0, time.UTC)
	recent := sampleWorkout("Push Day")
	recent.Started = time.Date(2024, 2, 5, 18, 0, 0, 0, time.UTC)
	other := sampleWorkout("Pull Day")
	other.Started = time.Date(2024, 3, 5, 18, 0, 0, 0, time.UTC)

	if _, err := s.SaveWorkout(ctx, old); err != nil {
		t.Fatal(err)
	}
	recentID, err := s.SaveWorkout(ctx, recent)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveWorkout(ctx, other); err != nil {
		t.Fatal(err)
	}

	got, err := s.MostRecentWorkoutByName(ctx, "Push Day", 0)
	if err != nil {
		t.Fatalf("looking up most recent: %v", err)
	}
	if got == nil || got.ID != recentID {
		t.Fatalf("got %+v, want workout %d", got, recentID)
	}

	// Excluding the most recent falls back to the older one.
	got, err = s.MostRecentWorkoutByName(ctx, "Push Day", recentID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || !got.Started.Equal(old.Started) {
		t.Fatalf("with exclusion got %+v, want the January session", got)
	}

	got, err = s.MostRecentWorkoutByName(ctx, "Never Logged", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("got %+v for unknown name, want nil", got)
	}

	got, err = s.MostRecentWorkoutByName(ctx, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("got %+v for empty name, want nil", got)
	}
}

func TestSaveWorkoutNilExercisesStoredAsEmpty(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	w := sampleWorkout("Rest")
	w.Exercises = nil
	id, err := s.SaveWorkout(ctx, w)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.GetWorkout(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Exercises == nil {
		t.Error("exercises decoded as nil, want empty slice")
	}
	if len(got.Exercises) != 0 {
		t.Errorf("len(exercises) = %d, want 0", len(got.Exercises))
	}
}
