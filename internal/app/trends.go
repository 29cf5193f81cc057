package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/blackwell-systems/usagelens/internal/analyzer"
	"github.com/blackwell-systems/usagelens/internal/config"
	"github.com/blackwell-systems/usagelens/internal/output"
	"github.com/spf13/cobra"
)

var trendsAdvanced bool

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Multi-period trend analysis with charts",
	Long: `Group usage records into per-day periods and compare the first half of
the window against the second. The advanced analyzer smooths the series and
down-weights anomalous days before comparing.`,
	RunE: runTrends,
}

func init() {
	trendsCmd.Flags().BoolVar(&trendsAdvanced, "advanced", false, "Use the smoothing/anomaly-aware trend analyzer")
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyOutputConfig(cfg)

	records, err := loadRecords(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	calc := newCalculator(cfg)
	periods := groupByDate(records)
	timeframe := fmt.Sprintf("%d periods", len(periods))

	var trends analyzer.TrendAnalysis
	if trendsAdvanced {
		trends = calc.AnalyzeTrendsAdvanced(periods, timeframe)
	} else {
		trends = calc.AnalyzeTrends(periods, timeframe)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(trends)
	}

	printTrendSummary(trends)

	if chart := tokenChart(trends, cfg.Output.Width); chart != "" {
		fmt.Println()
		fmt.Println(chart)
	}

	return nil
}

// tokenChart renders the per-day token series as an ascii line chart sized
// to the configured output width.
func tokenChart(t analyzer.TrendAnalysis, width int) string {
	if len(t.DailyMetrics) < 2 {
		return ""
	}

	dates := make([]string, 0, len(t.DailyMetrics))
	for date := range t.DailyMetrics {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]float64, 0, len(dates))
	for _, date := range dates {
		series = append(series, float64(t.DailyMetrics[date].Tokens))
	}

	caption := fmt.Sprintf("tokens/day (%s … %s)", dates[0], dates[len(dates)-1])
	return output.Chart(series, 8, width, caption)
}
