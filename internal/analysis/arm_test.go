package analysis

import (
	"testing"

	"github.com/plonkout/plonkout/internal/models"
)

// TestIsArmCompatible walks the full comparison table: exact matches and
// unspecified arms are compatible, a bilateral historical set supports either
// single arm, and neither the reverse nor left/right crossover holds.
func TestIsArmCompatible(t *testing.T) {
	cases := []struct {
		current    models.Arm
		historical models.Arm
		want       bool
	}{
		// Exact matches
		{models.ArmLeft, models.ArmLeft, true},
		{models.ArmRight, models.ArmRight, true},
		{models.ArmBoth, models.ArmBoth, true},

		// Unspecified on either side
		{models.ArmNone, models.ArmLeft, true},
		{models.ArmLeft, models.ArmNone, true},
		{models.ArmNone, models.ArmBoth, true},
		{models.ArmBoth, models.ArmNone, true},
		{models.ArmNone, models.ArmNone, true},

		// Bilateral history supports single-arm comparisons
		{models.ArmLeft, models.ArmBoth, true},
		{models.ArmRight, models.ArmBoth, true},

		// ...but not the reverse
		{models.ArmBoth, models.ArmLeft, false},
		{models.ArmBoth, models.ArmRight, false},

		// Left and right never match
		{models.ArmLeft, models.ArmRight, false},
		{models.ArmRight, models.ArmLeft, false},
	}

	for _, c := range cases {
		if got := IsArmCompatible(c.current, c.historical); got != c.want {
			t.Errorf("IsArmCompatible(%q, %q) = %v, want %v", c.current, c.historical, got, c.want)
		}
	}
}
