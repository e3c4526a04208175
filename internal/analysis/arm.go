// Package analysis holds the pure derived-view functions that run over
// workouts already loaded from the store: personal-record detection,
// max-percentage calculation, set display numbering, and chronological
// grouping.
package analysis

import "github.com/plonkout/plonkout/internal/models"

// IsArmCompatible reports whether a historical set's arm may serve as
// comparison evidence for the current arm. A bilateral ("both") historical
// set counts for either single arm, since both arms together might be
// stronger. The reverse does not hold: a single-arm set never supports a
// both-arm comparison, and left never matches right. An unspecified arm on
// either side is always compatible.
func IsArmCompatible(current, historical models.Arm) bool {
	if current == models.ArmNone || historical == models.ArmNone {
		return true
	}
	if current == historical {
		return true
	}
	if historical == models.ArmBoth && (current == models.ArmLeft || current == models.ArmRight) {
		return true
	}
	return false
}
