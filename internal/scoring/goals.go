package scoring

import (
	"math"

	"github.com/2beens/smarttrack/internal/tracking"
)

const (
	DefaultWaterGoalMl = 3000

	waterMlPerKg     = 35
	proteinGramPerKg = 2
)

var DefaultEnabledActivities = []tracking.Activity{
	tracking.ActivityPushups,
	tracking.ActivitySports,
	tracking.ActivityWater,
	tracking.ActivityProtein,
}

// clamp bounds v to [lo, hi]; non finite values become lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func isPositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// ResolveWaterGoal returns the daily water goal in ml: the explicit user goal,
// else 35 ml per kg of body weight, else 3000 ml.
func ResolveWaterGoal(user *tracking.User) float64 {
	if user != nil && isPositive(user.HydrationGoalLiters) {
		return math.Round(user.HydrationGoalLiters * 1000)
	}
	if user != nil && isPositive(user.Weight) {
		return math.Round(user.Weight * waterMlPerKg)
	}
	return DefaultWaterGoalMl
}

// ResolveProteinGoal returns the daily protein goal in grams: the explicit
// user goal, else 2 g per kg of body weight, else 0 (no goal).
func ResolveProteinGoal(user *tracking.User) float64 {
	if user != nil && isPositive(user.ProteinGoalGrams) {
		return math.Round(user.ProteinGoalGrams)
	}
	if user != nil && isPositive(user.Weight) {
		return math.Round(user.Weight * proteinGramPerKg)
	}
	return 0
}

// ResolveEnabledActivities picks the override when given, then the user's
// own list, then the defaults.
func ResolveEnabledActivities(user *tracking.User, override []tracking.Activity) []tracking.Activity {
	if len(override) > 0 {
		return override
	}
	if user != nil && len(user.EnabledActivities) > 0 {
		return user.EnabledActivities
	}
	return DefaultEnabledActivities
}

// activitySet answers enablement questions. A nil set enables everything.
type activitySet map[tracking.Activity]struct{}

func newActivitySet(activities []tracking.Activity) activitySet {
	if activities == nil {
		return nil
	}
	set := make(activitySet, len(activities))
	for _, a := range activities {
		set[a] = struct{}{}
	}
	return set
}

func (s activitySet) enabled(a tracking.Activity) bool {
	if s == nil {
		return true
	}
	_, ok := s[a]
	return ok
}

func (s activitySet) movementEnabled() bool {
	return s.enabled(tracking.ActivityPushups) || s.enabled(tracking.ActivitySports)
}

func pushupsDone(t *tracking.DailyTracking) bool {
	return t != nil && t.Pushups != nil && t.Pushups.Total != nil && *t.Pushups.Total > 0
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Max(v, 0)
}
