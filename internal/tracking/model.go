package tracking

import "errors"

var ErrContributionNotFound = errors.New("contribution not found")

type Activity string

const (
	ActivityPushups Activity = "pushups"
	ActivitySports  Activity = "sports"
	ActivityWater   Activity = "water"
	ActivityProtein Activity = "protein"
	ActivityWeight  Activity = "weight"
)

type SportEntry struct {
	Active    bool     `json:"active"`
	Duration  *float64 `json:"duration,omitempty"`
	Intensity *float64 `json:"intensity,omitempty"`
}

// WeightEntry is partial: merging only overwrites the fields present.
type WeightEntry struct {
	Value   *float64 `json:"value,omitempty"`
	BodyFat *float64 `json:"bodyFat,omitempty"`
}

// Contribution holds one day of totals derived from smart note events.
type Contribution struct {
	Water    *float64                `json:"water,omitempty"`
	Protein  *float64                `json:"protein,omitempty"`
	CarbsG   *float64                `json:"carbsG,omitempty"`
	FatG     *float64                `json:"fatG,omitempty"`
	Calories *float64                `json:"calories,omitempty"`
	Pushups  *int                    `json:"pushups,omitempty"`
	Sports   map[SportKey]SportEntry `json:"sports,omitempty"`
	Weight   *WeightEntry            `json:"weight,omitempty"`
}

func (c *Contribution) IsEmpty() bool {
	return c.Water == nil &&
		c.Protein == nil &&
		c.CarbsG == nil &&
		c.FatG == nil &&
		c.Calories == nil &&
		c.Pushups == nil &&
		len(c.Sports) == 0 &&
		c.Weight == nil
}

type PushupsWorkout struct {
	Reps []float64 `json:"reps,omitempty"`
}

type PushupsTracking struct {
	Total   *float64        `json:"total,omitempty"`
	Workout *PushupsWorkout `json:"workout,omitempty"`
}

type BodyWeight struct {
	Value   *float64 `json:"value,omitempty"`
	BodyFat *float64 `json:"bodyFat,omitempty"`
	BMI     *float64 `json:"bmi,omitempty"`
}

// DailyTracking is the canonical per day record kept by the tracking store.
// Scorers only read it.
type DailyTracking struct {
	Date      string                  `json:"date"`
	Water     float64                 `json:"water"`
	Protein   float64                 `json:"protein"`
	Pushups   *PushupsTracking        `json:"pushups,omitempty"`
	Sports    map[SportKey]SportEntry `json:"sports,omitempty"`
	Weight    *BodyWeight             `json:"weight,omitempty"`
	Completed bool                    `json:"completed"`
}

type DailyCheckIn struct {
	Date          string  `json:"date,omitempty"`
	SleepScore    float64 `json:"sleepScore"`
	RecoveryScore float64 `json:"recoveryScore"`
	Sick          bool    `json:"sick"`
}

// User carries the goal inputs the scorers need.
type User struct {
	Weight              float64    `json:"weight,omitempty"`
	HydrationGoalLiters float64    `json:"hydrationGoalLiters,omitempty"`
	ProteinGoalGrams    float64    `json:"proteinGoalGrams,omitempty"`
	EnabledActivities   []Activity `json:"enabledActivities,omitempty"`
}
