package storage

import (
	"context"
	"testing"
	"time"
)

func populate(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()

	if err := s.SeedDefaultExercises(ctx); err != nil {
		t.Fatalf("seeding: %v", err)
	}
	if _, err := s.SaveWorkout(ctx, sampleWorkout("Push Day")); err != nil {
		t.Fatalf("saving workout: %v", err)
	}
	if _, err := s.SaveWorkoutTemplate(ctx, sampleTemplate("Push Day")); err != nil {
		t.Fatalf("saving template: %v", err)
	}
	if err := s.SaveSetting(ctx, "units", "kg"); err != nil {
		t.Fatalf("saving setting: %v", err)
	}
}

func TestExportAll(t *testing.T) {
	s := testStore(t)
	populate(t, s)

	doc, err := s.ExportAll(context.Background())
	if err != nil {
		t.Fatalf("exporting: %v", err)
	}

	if doc.ExportID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("export id was not generated")
	}
	if doc.ExportedAt.IsZero() {
		t.Error("exportedAt was not stamped")
	}
	if len(doc.Workouts) != 1 {
		t.Errorf("workouts = %d, want 1", len(doc.Workouts))
	}
	if len(doc.Exercises) != len(defaultExercises) {
		t.Errorf("exercises = %d, want %d", len(doc.Exercises), len(defaultExercises))
	}
	if len(doc.Templates) != 1 {
		t.Errorf("templates = %d, want 1", len(doc.Templates))
	}
	if string(doc.Settings["units"]) != `"kg"` {
		t.Errorf("settings[units] = %s, want %q", doc.Settings["units"], `"kg"`)
	}
}

func TestResetAllClearsEverything(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	populate(t, s)

	if err := s.ResetAll(ctx); err != nil {
		t.Fatalf("resetting: %v", err)
	}

	workouts, err := s.ListWorkouts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(workouts) != 0 {
		t.Errorf("workouts survived reset: %d", len(workouts))
	}
	exercises, err := s.ListExercises(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(exercises) != 0 {
		t.Errorf("exercises survived reset: %d", len(exercises))
	}
	templates, err := s.ListWorkoutTemplates(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(templates) != 0 {
		t.Errorf("templates survived reset: %d", len(templates))
	}
	raw, err := s.GetSettingRaw(ctx, "units")
	if err != nil {
		t.Fatal(err)
	}
	if raw != nil {
		t.Errorf("settings survived reset: %s", raw)
	}

	// Autoincrement restarts, so the first workout after a reset gets id 1.
	id, err := s.SaveWorkout(ctx, sampleWorkout("Fresh Start"))
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 {
		t.Errorf("first id after reset = %d, want 1", id)
	}
}

func TestGetDataStats(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	early := sampleWorkout("Push Day")
	early.Started = time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)
	late := sampleWorkout("Push Day")
	late.Started = time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)
	other := sampleWorkout("Pull Day")
	other.Started = time.Date(2024, 2, 10, 18, 0, 0, 0, time.UTC)

	if _, err := s.SaveWorkout(ctx, early); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveWorkout(ctx, late); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveWorkout(ctx, other); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveWorkoutTemplate(ctx, sampleTemplate("Push Day")); err != nil {
		t.Fatal(err)
	}

	stats, err := s.GetDataStats(ctx)
	if err != nil {
		t.Fatalf("reading stats: %v", err)
	}

	if stats.TotalWorkouts != 3 {
		t.Errorf("TotalWorkouts = %d, want 3", stats.TotalWorkouts)
	}
	if stats.TotalSets != 3 {
		t.Errorf("TotalSets = %d, want 3", stats.TotalSets)
	}
	if stats.TotalTemplates != 1 {
		t.Errorf("TotalTemplates = %d, want 1", stats.TotalTemplates)
	}
	if stats.EarliestWorkout == nil || !stats.EarliestWorkout.Equal(early.Started) {
		t.Errorf("EarliestWorkout = %v, want %v", stats.EarliestWorkout, early.Started)
	}
	if stats.LatestWorkout == nil || !stats.LatestWorkout.Equal(late.Started) {
		t.Errorf("LatestWorkout = %v, want %v", stats.LatestWorkout, late.Started)
	}
	if len(stats.WorkoutsByName) != 2 {
		t.Fatalf("WorkoutsByName = %+v, want 2 entries", stats.WorkoutsByName)
	}
	if stats.WorkoutsByName[0].Name != "Push Day" || stats.WorkoutsByName[0].Count != 2 {
		t.Errorf("top name = %+v, want Push Day x2", stats.WorkoutsByName[0])
	}
}
