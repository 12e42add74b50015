package commands

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/spf13/cobra"
)

var reportSettings = &ReportSettings{}

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize the output of a check run",
	Long: `Reads the JSON lines produced by the check command from stdin and prints
aggregate statistics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isStdinPiped() {
			return errors.New("expecting the output of a check run on stdin")
		}

		stats := ReportStats{}
		if reportSettings.Details == "full" {
			stats.ByCode = make(map[string]uint64)
		}

		start := time.Now()

		decoder := json.NewDecoder(cmd.InOrStdin())
		for {
			var record CheckResult

			err := decoder.Decode(&record)
			if err == io.EOF {
				break
			}

			if err != nil {
				return err
			}

			if record.Valid {
				stats.Passed++
				continue
			}

			stats.Rejected++
			if stats.ByCode != nil && record.Code != "" {
				stats.ByCode[record.Code]++
			}
		}

		stats.Duration = time.Since(start).Milliseconds()

		jsonEncoder := json.NewEncoder(cmd.OutOrStdout())
		if !isStdoutPiped() {
			jsonEncoder.SetIndent("", "  ")
		}

		return jsonEncoder.Encode(stats)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportSettings.Details, "details", "full", "Type of report, full includes a per-code breakdown, summary does not")
}
