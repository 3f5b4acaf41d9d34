package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/2beens/smarttrack/internal/smartnotes"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [note text]",
	Short: "Extract events from a raw note",
	Long:  "Extract events from a raw note given as arguments, or read from stdin when no arguments are given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := strings.Join(args, " ")
		if len(args) == 0 {
			in, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read note: %w", err)
			}
			raw = string(in)
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return smartnotes.ErrEmptyNote
		}

		result := smartnotes.Extract(raw)
		log.Debugf("extracted %d events", len(result.Candidates))

		return writeJSONOutput(cmd, smartnotes.ExtractResponse{
			ExtractResult: result,
			Summary:       smartnotes.BuildSummary(raw, result.Candidates),
		})
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
