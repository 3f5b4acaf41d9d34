package trainingload

import (
	"math"
)

const (
	MaxLoad = 1000

	pushupAdjustmentCap = 0.2

	wellnessBase           = 0.6
	wellnessRecoveryFactor = 0.04
	wellnessSleepFactor    = 0.02
	wellnessSickPenalty    = 0.3
	wellnessMin            = 0.4
	wellnessMax            = 1.4

	minScore = 1
	maxScore = 10
)

type Workout struct {
	DurationMinutes float64 `json:"durationMinutes"`
	Intensity       float64 `json:"intensity"`
}

type Input struct {
	Workouts      []Workout `json:"workouts"`
	PushupsReps   float64   `json:"pushupsReps"`
	SleepScore    float64   `json:"sleepScore"`
	RecoveryScore float64   `json:"recoveryScore"`
	Sick          bool      `json:"sick"`
}

// Components break the load down. ModifierSleep, ModifierRecovery and
// ModifierSick always carry the wellness modifier.
type Components struct {
	BaseFromWorkouts float64 `json:"baseFromWorkouts"`
	PushupAdjustment float64 `json:"pushupAdjustment"`
	WellnessModifier float64 `json:"wellnessModifier"`
	ModifierSleep    float64 `json:"modifierSleep"`
	ModifierRecovery float64 `json:"modifierRecovery"`
	ModifierSick     float64 `json:"modifierSick"`
}

type Inputs struct {
	SleepScore    float64 `json:"sleepScore"`
	RecoveryScore float64 `json:"recoveryScore"`
	Sick          bool    `json:"sick"`
}

type Result struct {
	Load       int        `json:"load"`
	Components Components `json:"components"`
	Inputs     Inputs     `json:"inputs"`
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// ComputeDailyTrainingLoadV1 computes a day's training load in [0, 1000].
// Sessions add duration times intensity. Pushups add up to 20% of that base,
// and the sum is scaled by a wellness modifier built from sleep, recovery
// and sickness.
func ComputeDailyTrainingLoadV1(input Input) Result {
	base := 0.0
	for _, w := range input.Workouts {
		base += clamp(clamp(w.DurationMinutes, 0, math.Inf(1))*clamp(w.Intensity, 0, math.Inf(1)), 0, math.MaxFloat64)
	}
	// keeps the components JSON encodable
	base = clamp(base, 0, math.MaxFloat64)

	reps := clamp(input.PushupsReps, 0, math.Inf(1))
	adjustment := math.Min(reps/100*base, pushupAdjustmentCap*base)

	sleep := clamp(math.Round(input.SleepScore), minScore, maxScore)
	recovery := clamp(math.Round(input.RecoveryScore), minScore, maxScore)

	wellness := wellnessBase + wellnessRecoveryFactor*recovery + wellnessSleepFactor*sleep
	if input.Sick {
		wellness -= wellnessSickPenalty
	}
	wellness = clamp(wellness, wellnessMin, wellnessMax)

	load := math.Round(clamp((base+adjustment)*wellness, 0, MaxLoad))

	return Result{
		Load: int(load),
		Components: Components{
			BaseFromWorkouts: base,
			PushupAdjustment: adjustment,
			WellnessModifier: wellness,
			ModifierSleep:    wellness,
			ModifierRecovery: wellness,
			ModifierSick:     wellness,
		},
		Inputs: Inputs{
			SleepScore:    sleep,
			RecoveryScore: recovery,
			Sick:          input.Sick,
		},
	}
}
