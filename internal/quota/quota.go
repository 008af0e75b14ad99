// Package quota holds the plan quota policy: a pure predicate plus the
// tier-to-limit table. No rollover or time-window reset exists; usage is
// monotonic for the lifetime of the session.
package quota

import "brandstudio/internal/types"

// Default monthly generation limits per plan tier.
const (
	DefaultFreeLimit  = 5
	DefaultBasicLimit = 50
	DefaultProLimit   = 500
)

// Limits maps plan tiers to monthly generation caps. The zero value is not
// useful; use DefaultLimits or load overrides from config.
type Limits struct {
	Free  int
	Basic int
	Pro   int
}

// DefaultLimits returns the built-in tier table.
func DefaultLimits() Limits {
	return Limits{
		Free:  DefaultFreeLimit,
		Basic: DefaultBasicLimit,
		Pro:   DefaultProLimit,
	}
}

// ForTier returns the cap for the given tier. Unknown tiers get the free
// limit, the most restrictive choice.
func (l Limits) ForTier(tier types.PlanTier) int {
	switch tier {
	case types.PlanBasic:
		return l.Basic
	case types.PlanPro:
		return l.Pro
	default:
		return l.Free
	}
}

// CanGenerate reports whether a school with the given usage may generate
// another post: usage < limit, nothing more.
func CanGenerate(usage, limit int) bool {
	return usage < limit
}

// SchoolCanGenerate applies CanGenerate to a school record.
func SchoolCanGenerate(school *types.School) bool {
	if school == nil {
		return false
	}
	return CanGenerate(school.PostsGeneratedThisMonth, school.PlanLimit)
}
