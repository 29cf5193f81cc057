package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/blackwell-systems/usagelens/internal/analyzer"
	"github.com/blackwell-systems/usagelens/internal/config"
	"github.com/blackwell-systems/usagelens/internal/insights"
	"github.com/blackwell-systems/usagelens/internal/output"
	"github.com/blackwell-systems/usagelens/internal/stats"
	"github.com/spf13/cobra"
)

var analyzeAdvanced bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Full report: efficiency, cost, trends, insights",
	Long: `Run the full analysis pipeline: aggregate records, derive efficiency
metrics and cost analysis, compute per-day trends, and generate insights
and recommendations in the selected language.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeAdvanced, "advanced", false, "Use the smoothing/anomaly-aware trend analyzer")
	rootCmd.AddCommand(analyzeCmd)
}

// analyzeOutput is the JSON-serializable output for the analyze command.
type analyzeOutput struct {
	Stats           stats.BasicStats              `json:"stats"`
	Efficiency      analyzer.EfficiencyMetrics    `json:"efficiency"`
	Tools           []analyzer.ToolUsageAnalysis  `json:"tools"`
	Cost            analyzer.CostAnalysis         `json:"cost"`
	Trends          analyzer.TrendAnalysis        `json:"trends"`
	Insights        []insights.Insight            `json:"insights"`
	Recommendations insights.RecommendationBundle `json:"recommendations"`
	Language        insights.Language             `json:"language"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
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
	lang := reportLanguage(cfg)

	basic := stats.ValidateAndCorrect(stats.FromRecords(records)).Corrected
	efficiency := calc.Calculate(basic)
	tools := calc.AnalyzeToolUsage(basic.ToolUsage, basic.TotalTimeHours)
	cost := calc.CalculateCostAnalysis(basic)

	periods := groupByDate(records)
	timeframe := fmt.Sprintf("%d periods", len(periods))
	var trends analyzer.TrendAnalysis
	if analyzeAdvanced {
		trends = calc.AnalyzeTrendsAdvanced(periods, timeframe)
	} else {
		trends = calc.AnalyzeTrends(periods, timeframe)
	}

	levels := insightThresholds(cfg)
	insightList := insights.NewGeneratorWith(levels).Generate(basic, efficiency, trends, lang)
	recs := insights.NewRecommenderWith(levels).Generate(insights.Context{
		Stats:      basic,
		Efficiency: efficiency,
		Trends:     trends,
	}, lang)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analyzeOutput{
			Stats:           basic,
			Efficiency:      efficiency,
			Tools:           tools,
			Cost:            cost,
			Trends:          trends,
			Insights:        insightList,
			Recommendations: recs,
			Language:        lang,
		})
	}

	printBasicStats(basic)
	fmt.Println()
	printEfficiency(efficiency)
	fmt.Println()
	printTools(tools)
	fmt.Println()
	printCost(cost)
	fmt.Println()
	printTrendSummary(trends)
	fmt.Println()
	printInsights(insightList)
	fmt.Println()
	printRecommendations(recs)

	return nil
}

func printEfficiency(m analyzer.EfficiencyMetrics) {
	fmt.Println(output.StyleHeader.Render("Efficiency"))
	fmt.Println()

	if m.EfficiencyRating == analyzer.RatingNoData {
		fmt.Println(output.StyleMuted.Render("no active time recorded"))
		return
	}

	fmt.Println("  " + output.ScoreBar(m.ProductivityScore, 20))
	fmt.Println()

	table := output.NewTable("Metric", "Value")
	table.AddRow("Tokens/hour", fmt.Sprintf("%.1f", m.TokensPerHour))
	table.AddRow("Lines/hour", fmt.Sprintf("%.1f", m.LinesPerHour))
	table.AddRow("Est. lines changed", fmt.Sprintf("%d", m.EstimatedLinesChanged))
	table.AddRow("Cost/hour", fmt.Sprintf("$%.2f", m.CostPerHour))
	table.AddRow("Rating", string(m.EfficiencyRating))
	table.Print()
}

func printTools(tools []analyzer.ToolUsageAnalysis) {
	if len(tools) == 0 {
		return
	}

	fmt.Println(output.StyleHeader.Render("Tool usage"))
	fmt.Println()

	table := output.NewTable("Tool", "Count", "Rate/h", "Est. lines", "Score")
	for _, t := range tools {
		table.AddRow(
			t.ToolName,
			fmt.Sprintf("%d", t.UsageCount),
			fmt.Sprintf("%.1f", t.UsageRate),
			fmt.Sprintf("%d", t.EstimatedLines),
			fmt.Sprintf("%.1f", t.EfficiencyScore),
		)
	}
	table.Print()
}

func printCost(c analyzer.CostAnalysis) {
	fmt.Println(output.StyleHeader.Render("Cost"))
	fmt.Println()

	table := output.NewTable("Metric", "Value")
	table.AddRow("Cost/hour", fmt.Sprintf("$%.2f", c.CostPerHour))
	table.AddRow("Cost/line", fmt.Sprintf("$%.4f", c.CostPerLine))
	table.Print()

	for _, s := range c.OptimizationSuggestions {
		fmt.Println(output.StyleWarning.Render("  • " + s))
	}
}

func printTrendSummary(t analyzer.TrendAnalysis) {
	fmt.Println(output.StyleHeader.Render("Trends (" + t.Timeframe + ")"))
	fmt.Println()

	if t.Message != "" {
		fmt.Println(output.StyleMuted.Render(t.Message))
		return
	}

	fmt.Printf("  %s %s\n", output.StyleLabel.Render("Productivity"), output.TrendArrow(t.ProductivityTrend, true))
	fmt.Printf("  %s %s\n", output.StyleLabel.Render("Tokens"), output.TrendArrow(t.TokenTrend, false))
	fmt.Printf("  %s %s\n", output.StyleLabel.Render("Active time"), output.TrendArrow(t.TimeTrend, true))
}

func printInsights(list []insights.Insight) {
	fmt.Println(output.StyleHeader.Render("Insights"))
	fmt.Println()

	for _, ins := range list {
		fmt.Println("  " + output.StyleBold.Render(ins.Title))
		fmt.Println("    " + ins.Content)
	}
}

func printRecommendations(bundle insights.RecommendationBundle) {
	fmt.Println(output.StyleHeader.Render("Recommendations") +
		output.StyleMuted.Render("  ["+string(bundle.Priority)+" priority]"))
	fmt.Println()

	for _, s := range bundle.Suggestions {
		fmt.Println("  • " + s)
	}
}
