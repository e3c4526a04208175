package analysis

import (
	"fmt"
	"math"

	"github.com/plonkout/plonkout/internal/models"
)

// forEachRegularSet visits every regular (non-warmup) set of the named
// exercise across all workouts whose arm is compatible with arm.
func forEachRegularSet(exerciseName string, arm models.Arm, workouts []models.Workout, visit func(models.Set)) {
	for _, w := range workouts {
		for _, entry := range w.Exercises {
			if entry.Name != exerciseName {
				continue
			}
			for _, set := range entry.Sets {
				if set.Type != models.SetRegular {
					continue
				}
				if !IsArmCompatible(arm, set.Arm) {
					continue
				}
				visit(set)
			}
		}
	}
}

// MaxWeight returns the heaviest compatible regular set ever logged for the
// exercise, or 0 when there is no history.
func MaxWeight(exerciseName string, arm models.Arm, workouts []models.Workout) float64 {
	var max float64
	forEachRegularSet(exerciseName, arm, workouts, func(set models.Set) {
		if set.WeightValue() > max {
			max = set.WeightValue()
		}
	})
	return max
}

// MaxPercentage formats currentWeight as a percentage of the historical max,
// rounded half-up. Returns "-" when the weight is non-positive or there is
// no compatible history.
func MaxPercentage(exerciseName string, currentWeight float64, arm models.Arm, workouts []models.Workout) string {
	if currentWeight <= 0 {
		return "-"
	}
	max := MaxWeight(exerciseName, arm, workouts)
	if max == 0 {
		return "-"
	}
	return fmt.Sprintf("%d%%", int(math.Round(currentWeight/max*100)))
}

// PreviousReps returns the best rep count among compatible regular sets at
// exactly the given weight. The second return is false when no such set
// exists (or the weight is non-positive). A matching set with no reps logged
// still counts as history, with a best of zero.
func PreviousReps(exerciseName string, weight float64, arm models.Arm, workouts []models.Workout) (int, bool) {
	if weight <= 0 {
		return 0, false
	}
	var (
		best  int
		found bool
	)
	forEachRegularSet(exerciseName, arm, workouts, func(set models.Set) {
		if set.WeightValue() != weight {
			return
		}
		found = true
		if set.RepsValue() > best {
			best = set.RepsValue()
		}
	})
	return best, found
}

// IsRepRecord reports whether performing reps at weight would set a new rep
// record: either the weight has never been attempted, or reps beats the
// previous best at that exact weight.
func IsRepRecord(exerciseName string, weight float64, reps int, arm models.Arm, workouts []models.Workout) bool {
	if weight <= 0 || reps <= 0 {
		return false
	}
	best, ok := PreviousReps(exerciseName, weight, arm, workouts)
	return !ok || reps > best
}

// IsWeightRecord reports whether weight exceeds every compatible regular set
// in the history. No history counts as a max of 0, so any positive weight is
// a record on a fresh exercise.
func IsWeightRecord(exerciseName string, weight float64, arm models.Arm, workouts []models.Workout) bool {
	if weight <= 0 {
		return false
	}
	return weight > MaxWeight(exerciseName, arm, workouts)
}
