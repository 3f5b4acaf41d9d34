package main

import (
	"fmt"
	"os"
	"time"

	"github.com/2beens/smarttrack/internal/logging"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	timeZone string
)

var rootCmd = &cobra.Command{
	Use:   "smarttrack",
	Short: "smarttrack extracts and scores fitness notes from your terminal",
	Long: "smarttrack runs the smart notes pipeline locally: extract events from raw notes, " +
		"collect them into daily contributions, score days and streaks, and compute training load. " +
		"Inputs are JSON files, or stdin when the path is - or empty.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		log.SetOutput(cmd.ErrOrStderr())
		log.SetLevel(logging.GetLevel(logLevel))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level [trace | debug | info | warn | error]")
	rootCmd.PersistentFlags().StringVar(&timeZone, "tz", "Local", "IANA time zone used for calendar days")
}

func location() (*time.Location, error) {
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone [%s]: %w", timeZone, err)
	}
	return loc, nil
}
