package scoring

import (
	"math"

	"github.com/2beens/smarttrack/internal/tracking"
)

const (
	completionWeightWater    = 0.4
	completionWeightProtein  = 0.4
	completionWeightMovement = 0.2
	completionWeightWeight   = 0.2
)

type CategoryValues struct {
	Water    float64 `json:"water"`
	Protein  float64 `json:"protein"`
	Movement float64 `json:"movement"`
	Weight   float64 `json:"weight"`
}

func (c CategoryValues) sum() float64 {
	return c.Water + c.Protein + c.Movement + c.Weight
}

type CompletionTotals struct {
	Water   float64  `json:"water"`
	Protein float64  `json:"protein"`
	Weight  *float64 `json:"weight"`
}

type Goals struct {
	Water   float64 `json:"water"`
	Protein float64 `json:"protein"`
}

type MovementSummary struct {
	PushupsDone bool `json:"pushupsDone"`
	SportsCount int  `json:"sportsCount"`
}

type WeightSummary struct {
	Logged bool `json:"logged"`
}

type DayCompletionResult struct {
	Percent  int              `json:"percent"`
	Weights  CategoryValues   `json:"weights"`
	Ratios   CategoryValues   `json:"ratios"`
	Totals   CompletionTotals `json:"totals"`
	Goals    Goals            `json:"goals"`
	Movement MovementSummary  `json:"movement"`
	Weight   WeightSummary    `json:"weight"`
}

// GetDayCompletion scores how much of the day's goals were reached.
// Categories of disabled activities drop out and the remaining weights are
// renormalized. A nil enabledActivities enables everything, with weight
// counting only when the day carries a weight record.
func GetDayCompletion(t *tracking.DailyTracking, user *tracking.User, enabledActivities []tracking.Activity) DayCompletionResult {
	day := tracking.DailyTracking{}
	if t != nil {
		day = *t
	}
	activities := newActivitySet(enabledActivities)

	waterGoal := ResolveWaterGoal(user)
	proteinGoal := ResolveProteinGoal(user)

	waterValue := nonNegative(day.Water)
	proteinValue := nonNegative(day.Protein)

	var weightValue *float64
	if day.Weight != nil && day.Weight.Value != nil && !math.IsNaN(*day.Weight.Value) && !math.IsInf(*day.Weight.Value, 0) {
		v := math.Max(*day.Weight.Value, 0)
		weightValue = &v
	}

	movement := MovementSummary{
		PushupsDone: pushupsDone(&day),
		SportsCount: tracking.CountActiveSports(day.Sports),
	}
	movementDone := movement.PushupsDone || movement.SportsCount > 0

	waterEnabled := activities.enabled(tracking.ActivityWater)
	hasProteinGoal := activities.enabled(tracking.ActivityProtein) && proteinGoal > 0
	weightEnabled := activities.enabled(tracking.ActivityWeight)
	if enabledActivities == nil {
		weightEnabled = day.Weight != nil
	}

	base := CategoryValues{}
	if waterEnabled {
		base.Water = completionWeightWater
	}
	if hasProteinGoal {
		base.Protein = completionWeightProtein
	}
	if activities.movementEnabled() {
		base.Movement = completionWeightMovement
	}
	if weightEnabled {
		base.Weight = completionWeightWeight
	}

	weights := CategoryValues{}
	if total := base.sum(); total > 0 {
		weights = CategoryValues{
			Water:    base.Water / total,
			Protein:  base.Protein / total,
			Movement: base.Movement / total,
			Weight:   base.Weight / total,
		}
	}

	ratios := CategoryValues{}
	if waterGoal > 0 {
		ratios.Water = clamp(waterValue/waterGoal, 0, 1)
	}
	if proteinGoal > 0 {
		ratios.Protein = clamp(proteinValue/proteinGoal, 0, 1)
	}
	if movementDone {
		ratios.Movement = 1
	}
	if weightEnabled && weightValue != nil {
		ratios.Weight = 1
	}

	completion := ratios.Water*weights.Water +
		ratios.Protein*weights.Protein +
		ratios.Movement*weights.Movement +
		ratios.Weight*weights.Weight

	goals := Goals{}
	if waterEnabled {
		goals.Water = waterGoal
	}
	if hasProteinGoal {
		goals.Protein = proteinGoal
	}

	return DayCompletionResult{
		Percent: int(math.Round(clamp(completion, 0, 1) * 100)),
		Weights: weights,
		Ratios:  ratios,
		Totals: CompletionTotals{
			Water:   waterValue,
			Protein: proteinValue,
			Weight:  weightValue,
		},
		Goals:    goals,
		Movement: movement,
		Weight: WeightSummary{
			Logged: weightValue != nil,
		},
	}
}
