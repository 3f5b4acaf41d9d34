package main

import (
	"github.com/2beens/smarttrack/internal/smartnotes"
	"github.com/2beens/smarttrack/internal/tracking"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	collectNotesPath    string
	collectTrackingPath string
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect notes into daily contributions",
	Long: "Collect a JSON array of smart notes into per day contributions. With --tracking, " +
		"the contributions are merged into the given manual tracking days instead.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		loc, err := location()
		if err != nil {
			return err
		}

		var notes []smartnotes.SmartNote
		if err := readJSONInput(cmd, collectNotesPath, &notes); err != nil {
			return err
		}

		contributions := tracking.CollectContributions(notes, loc)
		log.Debugf("collected %d notes into %d days", len(notes), len(contributions))

		if collectTrackingPath == "" {
			return writeJSONOutput(cmd, contributions)
		}

		var manual map[string]tracking.DailyTracking
		if err := readJSONInput(cmd, collectTrackingPath, &manual); err != nil {
			return err
		}
		return writeJSONOutput(cmd, tracking.CombineTrackingWithSmart(manual, contributions))
	},
}

func init() {
	collectCmd.Flags().StringVar(&collectNotesPath, "notes", "-", "Path to a JSON array of notes")
	collectCmd.Flags().StringVar(&collectTrackingPath, "tracking", "", "Path to manual tracking days keyed by date")
	rootCmd.AddCommand(collectCmd)
}
