package main

import (
	"time"

	"github.com/2beens/smarttrack/internal/scoring"

	"github.com/spf13/cobra"
)

var scoreInputPath string

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single day",
	Long:  "Score a day for completion, streak and progress from a JSON object with tracking, checkIn, user and enabledActivities.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var req scoring.DayRequest
		if err := readJSONInput(cmd, scoreInputPath, &req); err != nil {
			return err
		}

		return writeJSONOutput(cmd, scoring.DayResponse{
			Completion: scoring.GetDayCompletion(req.Tracking, req.User, req.EnabledActivities),
			Streak:     scoring.GetDayStreakScore(req.Tracking, req.CheckIn, req.User, req.EnabledActivities),
			Progress:   scoring.GetDayProgressSummary(req.Tracking, req.User, req.EnabledActivities),
		})
	},
}

var (
	streakInputPath string
	streakToday     string
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Count the current completion streak",
	Long:  "Count the consecutive qualifying days ending today from a JSON object with trackingByDay, checkInsByDay, user and enabledActivities.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		loc, err := location()
		if err != nil {
			return err
		}

		var req scoring.StreakRequest
		if err := readJSONInput(cmd, streakInputPath, &req); err != nil {
			return err
		}
		if streakToday != "" {
			req.Today = streakToday
		}

		resp, err := req.Evaluate(time.Now(), loc)
		if err != nil {
			return err
		}
		return writeJSONOutput(cmd, resp)
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreInputPath, "input", "-", "Path to the day JSON")
	streakCmd.Flags().StringVar(&streakInputPath, "input", "-", "Path to the streak JSON")
	streakCmd.Flags().StringVar(&streakToday, "today", "", "Override today (YYYY-MM-DD)")
	rootCmd.AddCommand(scoreCmd, streakCmd)
}
