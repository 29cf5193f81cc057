package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/blackwell-systems/usagelens/internal/config"
	"github.com/blackwell-systems/usagelens/internal/output"
	"github.com/blackwell-systems/usagelens/internal/stats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate usage records into basic statistics",
	Long: `Load usage records from local exports (or the configured usage command)
and aggregate them into basic statistics: sessions, active time, tokens,
cost, files touched, and tool/model usage.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyOutputConfig(cfg)

	records, err := loadRecords(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	basic := stats.FromRecords(records)
	validation := stats.ValidateAndCorrect(basic)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(validation)
	}

	printBasicStats(validation.Corrected)

	for _, issue := range validation.Issues {
		fmt.Println(output.StyleWarning.Render("warning: " + issue))
	}

	return nil
}

func printBasicStats(s stats.BasicStats) {
	fmt.Println(output.StyleHeader.Render("Usage summary"))
	fmt.Println()

	table := output.NewTable("Metric", "Value")
	table.AddRow("Sessions", fmt.Sprintf("%d", s.SessionCount))
	table.AddRow("Active time", fmt.Sprintf("%.1f h", s.TotalTimeHours))
	table.AddRow("Tokens", fmt.Sprintf("%d", s.TotalTokens))
	table.AddRow("Cost", fmt.Sprintf("$%.2f", s.TotalCostUSD))
	table.AddRow("Files modified", fmt.Sprintf("%d", s.FilesModifiedCount))
	table.Print()
}
