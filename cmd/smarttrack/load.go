package main

import (
	"github.com/2beens/smarttrack/internal/trainingload"

	"github.com/spf13/cobra"
)

var loadInputPath string

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Compute the daily training load",
	Long: "Compute the daily training load from workouts, pushupsReps, sleepScore, recoveryScore and sick, " +
		"or from a tracked day given as tracking plus checkIn.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var req trainingload.LoadRequest
		if err := readJSONInput(cmd, loadInputPath, &req); err != nil {
			return err
		}

		return writeJSONOutput(cmd, req.Compute())
	},
}

func init() {
	loadCmd.Flags().StringVar(&loadInputPath, "input", "-", "Path to the training load JSON")
	rootCmd.AddCommand(loadCmd)
}
