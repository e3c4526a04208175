package models

import "time"

// Arm records which arm(s) performed a set. Empty means unspecified or not
// applicable (two-handed exercises usually leave it blank).
type Arm string

const (
	ArmNone  Arm = ""
	ArmLeft  Arm = "left"
	ArmRight Arm = "right"
	ArmBoth  Arm = "both"
)

// SetType distinguishes working sets from warmups. Warmup sets never count
// toward max, record, or volume calculations.
type SetType string

const (
	SetRegular SetType = "regular"
	SetWarmup  SetType = "warmup"
)

// ExerciseType selects the broad category of an exercise.
type ExerciseType string

const (
	ExerciseStrength ExerciseType = "strength"
	ExerciseCardio   ExerciseType = "cardio"
)

// DisplayType selects which input field a set uses in the UI.
type DisplayType string

const (
	DisplayReps DisplayType = "reps"
	DisplayTime DisplayType = "time"
)

// Set is one performed unit of work within an exercise entry.
type Set struct {
	Type     SetType  `json:"type"`
	Weight   *float64 `json:"weight"`
	Reps     *int     `json:"reps"`
	Distance *float64 `json:"distance"`
	Time     string   `json:"time"`
	RPE      *string  `json:"rpe"`
	Arm      Arm      `json:"arm"`
	Notes    string   `json:"notes"`
}

// WeightValue returns the set's weight, or 0 when unset.
func (s Set) WeightValue() float64 {
	if s.Weight == nil {
		return 0
	}
	return *s.Weight
}

// RepsValue returns the set's reps, or 0 when unset.
func (s Set) RepsValue() int {
	if s.Reps == nil {
		return 0
	}
	return *s.Reps
}

// ExerciseEntry is one exercise performed within a workout. Name and muscle
// group are denormalized copies from the catalog at the time the entry was
// added, not live references.
type ExerciseEntry struct {
	Name        string       `json:"name"`
	MuscleGroup string       `json:"muscleGroup"`
	SingleArm   bool         `json:"singleArm"`
	Type        ExerciseType `json:"type"`
	DisplayType DisplayType  `json:"displayType"`
	Sets        []Set        `json:"sets"`
}

// Workout is one logged (or still-open) training session. Exercises are
// embedded and owned by the workout; they are not independently addressable.
type Workout struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Started   time.Time       `json:"started"`
	Ended     *time.Time      `json:"ended"`
	Notes     string          `json:"notes"`
	Exercises []ExerciseEntry `json:"exercises"`
	Created   time.Time       `json:"created"`
	Updated   time.Time       `json:"updated"`
}

// EffectiveDate is the timestamp a workout sorts by when looking for the most
// recent session of a name: the end time when present, else the start time.
func (w Workout) EffectiveDate() time.Time {
	if w.Ended != nil {
		return *w.Ended
	}
	return w.Started
}
