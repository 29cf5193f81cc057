package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/blackwell-systems/usagelens/internal/analyzer"
	"github.com/blackwell-systems/usagelens/internal/config"
	"github.com/blackwell-systems/usagelens/internal/insights"
	"github.com/blackwell-systems/usagelens/internal/output"
	"github.com/blackwell-systems/usagelens/internal/source"
	"github.com/blackwell-systems/usagelens/internal/stats"
)

// loadRecords gathers usage records, preferring local exports and falling
// back to the configured cost-accounting command.
func loadRecords(ctx context.Context, cfg *config.Config) ([]*source.UsageRecord, error) {
	records, err := source.LoadDir(ctx, cfg.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("loading exports from %s: %w", cfg.SourceDir, err)
	}
	if len(records) > 0 {
		logger.Debug("loaded usage exports", "dir", cfg.SourceDir, "records", len(records))
		return records, nil
	}

	if cfg.UsageCommand == "" {
		return nil, nil
	}

	logger.Debug("fetching usage data", "command", cfg.UsageCommand)
	records, err = source.FetchCommand(ctx, cfg.UsageCommand, cfg.UsageArgs...)
	if err != nil {
		return nil, fmt.Errorf("fetching usage data: %w", err)
	}
	return records, nil
}

// groupByDate buckets records into per-day periods ordered by date, the
// input shape the trends analyzers expect.
func groupByDate(records []*source.UsageRecord) []analyzer.Period {
	byDate := make(map[string][]*source.UsageRecord)
	for _, rec := range records {
		if rec == nil {
			continue
		}
		date := rec.Date()
		if date == "" {
			continue
		}
		byDate[date] = append(byDate[date], rec)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	periods := make([]analyzer.Period, 0, len(dates))
	for _, date := range dates {
		periods = append(periods, analyzer.Period{
			Date:  date,
			Stats: stats.FromRecords(byDate[date]),
		})
	}
	return periods
}

// newCalculator builds the efficiency calculator from configuration,
// applying any configured tool weight overrides.
func newCalculator(cfg *config.Config) *analyzer.Calculator {
	var estimator *analyzer.CodeEstimator
	if len(cfg.ToolWeights) > 0 {
		weights := make(map[string]float64, len(analyzer.DefaultToolWeights)+len(cfg.ToolWeights))
		for tool, w := range analyzer.DefaultToolWeights {
			weights[tool] = w
		}
		for tool, w := range cfg.ToolWeights {
			weights[tool] = w
		}
		estimator = analyzer.NewCodeEstimator(weights)
	}
	calc := analyzer.NewCalculator(estimator)
	calc.SetCostThreshold(cfg.Thresholds.HighCostPerHour)
	return calc
}

// insightThresholds maps the configured threshold levels onto the insight
// rule tables. Unset levels fall back to the built-in defaults.
func insightThresholds(cfg *config.Config) insights.Thresholds {
	return insights.Thresholds{
		TrendSensitivity: cfg.Thresholds.TrendSensitivity,
		HighCostPerHour:  cfg.Thresholds.HighCostPerHour,
	}
}

// applyOutputConfig disables styling when asked to by either the --no-color
// flag or the configured color preference.
func applyOutputConfig(cfg *config.Config) {
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}
}

// reportLanguage resolves the output language from the --lang flag and the
// configured default.
func reportLanguage(cfg *config.Config) insights.Language {
	lang := flagLang
	if lang == "" {
		lang = cfg.Language
	}
	return insights.NormalizeLanguage(insights.Language(lang))
}
