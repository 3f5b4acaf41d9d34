package scoring

import (
	"math"
	"time"

	"github.com/2beens/smarttrack/internal/tracking"
)

const (
	StreakThreshold = 70
	MaxStreakDays   = 365
)

type StreakWeights struct {
	Movement float64 `json:"movement"`
	Water    float64 `json:"water"`
	Protein  float64 `json:"protein"`
	CheckIn  float64 `json:"checkin"`
}

type StreakRatios struct {
	Movement float64 `json:"movement"`
	Water    float64 `json:"water"`
	Protein  float64 `json:"protein"`
	CheckIn  float64 `json:"checkin"`
}

var (
	streakWeightsBase = StreakWeights{
		Movement: 0.4,
		Water:    0.3,
		Protein:  0.3,
	}
	streakWeightsWithCheckIn = StreakWeights{
		Movement: 0.35,
		Water:    0.25,
		Protein:  0.25,
		CheckIn:  0.15,
	}
)

type DayStreakScoreResult struct {
	Score      int           `json:"score"`
	StreakMet  bool          `json:"streakMet"`
	HasCheckIn bool          `json:"hasCheckIn"`
	Weights    StreakWeights `json:"weights"`
	Ratios     StreakRatios  `json:"ratios"`
	Goals      Goals         `json:"goals"`
}

// GetDayStreakScore scores a day for streak purposes. The weight table is
// fixed and switches to the check-in variant when the check-in has a usable
// sleep or recovery score. Days without a tracking record score 0.
func GetDayStreakScore(
	t *tracking.DailyTracking,
	checkIn *tracking.DailyCheckIn,
	user *tracking.User,
	enabledActivities []tracking.Activity,
) DayStreakScoreResult {
	activities := newActivitySet(enabledActivities)
	goals := Goals{
		Water:   ResolveWaterGoal(user),
		Protein: ResolveProteinGoal(user),
	}

	hasCheckIn := checkIn != nil && (isRecorded(checkIn.SleepScore) || isRecorded(checkIn.RecoveryScore))
	weights := streakWeightsBase
	if hasCheckIn {
		weights = streakWeightsWithCheckIn
	}

	result := DayStreakScoreResult{
		HasCheckIn: hasCheckIn,
		Weights:    weights,
		Goals:      goals,
	}
	if t == nil {
		return result
	}

	ratios := StreakRatios{}
	if activities.movementEnabled() && (pushupsDone(t) || tracking.CountActiveSports(t.Sports) > 0) {
		ratios.Movement = 1
	}
	if activities.enabled(tracking.ActivityWater) && goals.Water > 0 {
		ratios.Water = clamp(nonNegative(t.Water)/goals.Water, 0, 1)
	}
	if activities.enabled(tracking.ActivityProtein) && goals.Protein > 0 {
		ratios.Protein = clamp(nonNegative(t.Protein)/goals.Protein, 0, 1)
	}
	if hasCheckIn {
		ratios.CheckIn = checkInRatio(checkIn)
	}

	score := ratios.Movement*weights.Movement +
		ratios.Water*weights.Water +
		ratios.Protein*weights.Protein +
		ratios.CheckIn*weights.CheckIn

	result.Ratios = ratios
	result.Score = int(clamp(math.Round(100*score), 0, 100))
	result.StreakMet = result.Score >= StreakThreshold
	return result
}

// isRecorded treats any non-zero score as entered, even out of range; the
// ratio clamps it later.
func isRecorded(score float64) bool {
	return score != 0 && !math.IsNaN(score)
}

func checkInRatio(checkIn *tracking.DailyCheckIn) float64 {
	sleep := clamp(checkIn.SleepScore, 0, 10)
	recovery := clamp(checkIn.RecoveryScore, 0, 10)
	ratio := (sleep/10)*0.5 + (recovery/10)*0.5
	if checkIn.Sick {
		ratio *= 0.5
	}
	return ratio
}

// CalculateCompletionStreak counts the consecutive days, ending with today,
// whose streak score meets the threshold. The walk stops at the first day
// that misses it or has no tracking record, and never goes back more than
// a year.
func CalculateCompletionStreak(
	trackingByDay map[string]tracking.DailyTracking,
	checkInsByDay map[string]tracking.DailyCheckIn,
	user *tracking.User,
	enabledActivities []tracking.Activity,
	today time.Time,
) int {
	// noon keeps AddDate away from DST edges
	cursor := time.Date(today.Year(), today.Month(), today.Day(), 12, 0, 0, 0, today.Location())

	streak := 0
	for i := 0; i < MaxStreakDays; i++ {
		dateKey := cursor.Format("2006-01-02")

		day, ok := trackingByDay[dateKey]
		if !ok {
			break
		}
		var checkIn *tracking.DailyCheckIn
		if c, ok := checkInsByDay[dateKey]; ok {
			checkIn = &c
		}

		if !GetDayStreakScore(&day, checkIn, user, enabledActivities).StreakMet {
			break
		}

		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak
}
