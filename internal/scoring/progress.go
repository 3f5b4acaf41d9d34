package scoring

import (
	"math"

	"github.com/2beens/smarttrack/internal/tracking"
)

type DayProgressSummary struct {
	TasksCompleted int  `json:"tasksCompleted"`
	TasksTotal     int  `json:"tasksTotal"`
	Percent        int  `json:"percent"`
	StreakMet      bool `json:"streakMet"`
}

// GetDayProgressSummary counts the day's tasks (water, protein, movement)
// as done or not. Enablement resolves through ResolveEnabledActivities.
func GetDayProgressSummary(t *tracking.DailyTracking, user *tracking.User, enabledActivities []tracking.Activity) DayProgressSummary {
	day := tracking.DailyTracking{}
	if t != nil {
		day = *t
	}
	activities := newActivitySet(ResolveEnabledActivities(user, enabledActivities))
	waterGoal := ResolveWaterGoal(user)
	proteinGoal := ResolveProteinGoal(user)
	movementEnabled := activities.movementEnabled()

	tasks := []struct {
		enabled   bool
		completed bool
	}{
		{
			enabled:   activities.enabled(tracking.ActivityWater),
			completed: waterGoal > 0 && day.Water >= waterGoal,
		},
		{
			enabled:   activities.enabled(tracking.ActivityProtein) && proteinGoal > 0,
			completed: proteinGoal > 0 && day.Protein >= proteinGoal,
		},
		{
			enabled:   movementEnabled,
			completed: pushupsDone(&day) || tracking.CountActiveSports(day.Sports) > 0,
		},
	}

	summary := DayProgressSummary{}
	for _, task := range tasks {
		if !task.enabled {
			continue
		}
		summary.TasksTotal++
		if task.completed {
			summary.TasksCompleted++
		}
	}

	summary.Percent = int(math.Round(float64(summary.TasksCompleted) / math.Max(1, float64(summary.TasksTotal)) * 100))
	summary.StreakMet = summary.Percent >= StreakThreshold
	return summary
}
