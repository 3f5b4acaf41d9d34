package scoring

import (
	"testing"

	"github.com/2beens/smarttrack/internal/tracking"

	"github.com/stretchr/testify/assert"
)

func TestGetDayProgressSummary(t *testing.T) {
	user := &tracking.User{Weight: 80}
	day := &tracking.DailyTracking{
		Water:   2800,
		Protein: 100,
		Sports: map[tracking.SportKey]tracking.SportEntry{
			tracking.SportGym: {Active: true},
		},
	}

	summary := GetDayProgressSummary(day, user, nil)
	assert.Equal(t, DayProgressSummary{
		TasksCompleted: 2,
		TasksTotal:     3,
		Percent:        67,
		StreakMet:      false,
	}, summary)

	day.Protein = 160
	summary = GetDayProgressSummary(day, user, nil)
	assert.Equal(t, 100, summary.Percent)
	assert.True(t, summary.StreakMet)
}

func TestGetDayProgressSummary_NoProteinGoal(t *testing.T) {
	summary := GetDayProgressSummary(&tracking.DailyTracking{Water: 3000}, nil, nil)
	assert.Equal(t, 2, summary.TasksTotal)
	assert.Equal(t, 1, summary.TasksCompleted)
	assert.Equal(t, 50, summary.Percent)
}

func TestGetDayProgressSummary_NothingTracked(t *testing.T) {
	summary := GetDayProgressSummary(nil, nil, []tracking.Activity{tracking.ActivityWeight})
	assert.Equal(t, DayProgressSummary{}, summary)
}
