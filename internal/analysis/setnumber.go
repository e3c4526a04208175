package analysis

import (
	"fmt"

	"github.com/plonkout/plonkout/internal/models"
)

// SetNumber produces the display label for the set at index, counting
// 1-based occurrences up to and including the set itself. Warmup sets share
// one counter across arms ("W1", "W2", ...), with an L/R suffix on
// single-arm exercises. Regular sets on a single-arm exercise count each arm
// separately ("1L", "1R", "2L"). Everything else shares a plain counter.
func SetNumber(sets []models.Set, index int, singleArm bool) string {
	set := sets[index]

	if set.Type == models.SetWarmup {
		n := 0
		for _, s := range sets[:index+1] {
			if s.Type == models.SetWarmup {
				n++
			}
		}
		label := fmt.Sprintf("W%d", n)
		if singleArm {
			label += armSuffix(set.Arm)
		}
		return label
	}

	if suffix := armSuffix(set.Arm); singleArm && suffix != "" {
		n := 0
		for _, s := range sets[:index+1] {
			if s.Type == models.SetRegular && s.Arm == set.Arm {
				n++
			}
		}
		return fmt.Sprintf("%d%s", n, suffix)
	}

	n := 0
	for _, s := range sets[:index+1] {
		if s.Type == models.SetRegular {
			n++
		}
	}
	return fmt.Sprintf("%d", n)
}

// armSuffix maps left/right to their one-letter labels; "both" and
// unspecified arms get no suffix.
func armSuffix(arm models.Arm) string {
	switch arm {
	case models.ArmLeft:
		return "L"
	case models.ArmRight:
		return "R"
	default:
		return ""
	}
}
