package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/blackwell-systems/usagelens/internal/config"
	"github.com/blackwell-systems/usagelens/internal/output"
	"github.com/blackwell-systems/usagelens/internal/stats"
	"github.com/blackwell-systems/usagelens/internal/store"
	"github.com/spf13/cobra"
)

var trackCompare int

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Snapshot metrics and compare runs over time",
	Long: `Run the analysis, store a new snapshot in the local SQLite database, and
compare against a previous snapshot to show metric deltas.`,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().IntVar(&trackCompare, "compare", 1, "Compare against Nth previous snapshot (1 = most recent)")
	rootCmd.AddCommand(trackCmd)
}

// trackOutput is the JSON-serializable output for the track command.
type trackOutput struct {
	SnapshotID int64              `json:"snapshot_id"`
	Metrics    map[string]float64 `json:"metrics"`
	Previous   map[string]float64 `json:"previous,omitempty"`
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyOutputConfig(cfg)

	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	records, err := loadRecords(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	calc := newCalculator(cfg)
	basic := stats.ValidateAndCorrect(stats.FromRecords(records)).Corrected
	efficiency := calc.Calculate(basic)

	periods := groupByDate(records)
	timeframe := fmt.Sprintf("%d periods", len(periods))
	trends := calc.AnalyzeTrends(periods, timeframe)

	// Read the comparison snapshot before inserting the new one, so
	// --compare 1 means "the run before this one".
	previous, err := db.GetSnapshotN(trackCompare)
	if err != nil {
		return fmt.Errorf("reading previous snapshot: %w", err)
	}

	snapshotID, err := db.CreateSnapshot(timeframe, appVersion)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}

	metrics := map[string]float64{
		"sessions":           float64(basic.SessionCount),
		"total_hours":        basic.TotalTimeHours,
		"total_tokens":       float64(basic.TotalTokens),
		"total_cost":         basic.TotalCostUSD,
		"tokens_per_hour":    efficiency.TokensPerHour,
		"lines_per_hour":     efficiency.LinesPerHour,
		"cost_per_hour":      efficiency.CostPerHour,
		"productivity_score": efficiency.ProductivityScore,
	}
	for name, value := range metrics {
		if err := db.InsertMetric(snapshotID, name, value); err != nil {
			return fmt.Errorf("storing metric %s: %w", name, err)
		}
	}

	for date, dm := range trends.DailyMetrics {
		err := db.InsertDailyMetric(&store.DailyMetric{
			SnapshotID:   snapshotID,
			Date:         date,
			Tokens:       dm.Tokens,
			TimeHours:    dm.TimeHours,
			Productivity: dm.ProductivityScore,
			Cost:         dm.Cost,
		})
		if err != nil {
			return fmt.Errorf("storing daily metric %s: %w", date, err)
		}
	}

	var prevMetrics map[string]float64
	if previous != nil {
		prevMetrics, err = db.GetMetrics(previous.ID)
		if err != nil {
			return fmt.Errorf("reading previous metrics: %w", err)
		}
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(trackOutput{
			SnapshotID: snapshotID,
			Metrics:    metrics,
			Previous:   prevMetrics,
		})
	}

	printTrackComparison(metrics, prevMetrics)
	return nil
}

// lowerIsBetterMetrics flips the trend arrow color for metrics where a drop
// is an improvement.
var lowerIsBetterMetrics = map[string]bool{
	"total_cost":    true,
	"cost_per_hour": true,
}

func printTrackComparison(current, previous map[string]float64) {
	fmt.Println(output.StyleHeader.Render("Snapshot stored"))
	fmt.Println()

	names := make([]string, 0, len(current))
	for name := range current {
		names = append(names, name)
	}
	sort.Strings(names)

	table := output.NewTable("Metric", "Value", "Change")
	for _, name := range names {
		change := output.StyleMuted.Render("new")
		if previous != nil {
			prev, ok := previous[name]
			if ok && prev != 0 {
				delta := (current[name] - prev) / prev
				change = output.TrendArrow(delta, !lowerIsBetterMetrics[name])
			}
		}
		table.AddRow(name, fmt.Sprintf("%.1f", current[name]), change)
	}
	table.Print()
}
