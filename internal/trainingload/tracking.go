package trainingload

import (
	"github.com/2beens/smarttrack/internal/tracking"
)

// DefaultIntensity is used for sessions logged without an intensity,
// the same value a "moderate" workout maps to.
const DefaultIntensity = 6

// BuildWorkoutsFromTracking turns the day's active sports with a positive
// duration into workout sessions, in sport key order.
func BuildWorkoutsFromTracking(t *tracking.DailyTracking) []Workout {
	if t == nil {
		return nil
	}

	var workouts []Workout
	for _, key := range tracking.SportKeys {
		entry, ok := t.Sports[key]
		if !ok || !entry.Active || entry.Duration == nil || *entry.Duration <= 0 {
			continue
		}

		intensity := float64(DefaultIntensity)
		if entry.Intensity != nil {
			intensity = *entry.Intensity
		}
		workouts = append(workouts, Workout{
			DurationMinutes: *entry.Duration,
			Intensity:       intensity,
		})
	}

	return workouts
}

// ResolvePushupsFromTracking returns the pushups total, falling back to the
// sum of the logged workout reps.
func ResolvePushupsFromTracking(t *tracking.DailyTracking) float64 {
	if t == nil || t.Pushups == nil {
		return 0
	}
	if t.Pushups.Total != nil {
		return *t.Pushups.Total
	}
	if t.Pushups.Workout == nil {
		return 0
	}

	total := 0.0
	for _, reps := range t.Pushups.Workout.Reps {
		total += reps
	}
	return total
}

// ComputeForDay computes the training load of a tracked day as of its
// check-in.
func ComputeForDay(t *tracking.DailyTracking, checkIn tracking.DailyCheckIn) Result {
	return ComputeDailyTrainingLoadV1(Input{
		Workouts:      BuildWorkoutsFromTracking(t),
		PushupsReps:   ResolvePushupsFromTracking(t),
		SleepScore:    checkIn.SleepScore,
		RecoveryScore: checkIn.RecoveryScore,
		Sick:          checkIn.Sick,
	})
}
