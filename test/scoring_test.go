//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/smarttrack/internal/misc"
	"github.com/2beens/smarttrack/internal/scoring"
	"github.com/2beens/smarttrack/internal/tracking"
	"github.com/2beens/smarttrack/internal/trainingload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func (s *IntegrationTestSuite) TestHealth() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	status, body := s.doRequest(ctx, "GET", "/health", nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))

	var health misc.HealthResponse
	require.NoError(s.T(), json.Unmarshal(body, &health))
	assert.Equal(s.T(), "ok", health.Status)
	assert.Equal(s.T(), "ok", health.Checks["db"])
	assert.Equal(s.T(), "ok", health.Checks["redis"])
}

func (s *IntegrationTestSuite) TestScoring() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t := s.T()
	user := &tracking.User{Weight: 80}
	day := tracking.DailyTracking{
		Water:   3000,
		Protein: 160,
		Pushups: &tracking.PushupsTracking{Total: floatPtr(25)},
	}

	status, body := s.doRequest(ctx, "POST", "/scoring/day", scoring.DayRequest{
		Tracking: &day,
		User:     user,
	})
	require.Equal(t, http.StatusOK, status, string(body))
	var dayResp scoring.DayResponse
	require.NoError(t, json.Unmarshal(body, &dayResp))
	assert.Equal(t, 100, dayResp.Completion.Percent)
	assert.True(t, dayResp.Streak.StreakMet)

	status, body = s.doRequest(ctx, "POST", "/scoring/streak", scoring.StreakRequest{
		TrackingByDay: map[string]tracking.DailyTracking{
			"2024-05-10": day,
			"2024-05-09": day,
			"2024-05-08": day,
		},
		User:  user,
		Today: "2024-05-10",
	})
	require.Equal(t, http.StatusOK, status, string(body))
	var streakResp scoring.StreakResponse
	require.NoError(t, json.Unmarshal(body, &streakResp))
	assert.Equal(t, 3, streakResp.Streak)
}

func (s *IntegrationTestSuite) TestTrainingLoad() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t := s.T()
	status, body := s.doRequest(ctx, "POST", "/training-load", trainingload.LoadRequest{
		Input: trainingload.Input{
			Workouts:      []trainingload.Workout{{DurationMinutes: 60, Intensity: 8}},
			PushupsReps:   100,
			SleepScore:    8,
			RecoveryScore: 8,
		},
	})
	require.Equal(t, http.StatusOK, status, string(body))

	var result trainingload.Result
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, 622, result.Load)
}
