package models

import "time"

// Exercise is a reusable catalog entry. Entries are created by the user or
// seeded once from the default catalog; they are never auto-deleted.
type Exercise struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	MuscleGroup string       `json:"muscleGroup"`
	SingleArm   bool         `json:"singleArm"`
	Type        ExerciseType `json:"type"`
	DisplayType DisplayType  `json:"displayType"`
}

// WorkoutTemplate is a named, reusable exercise/set skeleton. It shares the
// workout shape minus started/ended semantics.
type WorkoutTemplate struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Notes     string          `json:"notes"`
	Exercises []ExerciseEntry `json:"exercises"`
	Created   time.Time       `json:"created"`
	Updated   time.Time       `json:"updated"`
}
