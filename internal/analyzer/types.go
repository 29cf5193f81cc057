// Package analyzer derives efficiency metrics, code-change estimates, cost
// analysis, and multi-period trends from aggregated usage statistics.
package analyzer

import "github.com/blackwell-systems/usagelens/internal/stats"

// Rating is one of the six ordered efficiency buckets, or the "no data"
// sentinel used when no active time was recorded.
type Rating string

const (
	RatingExcellent        Rating = "excellent"
	RatingGood             Rating = "good"
	RatingFair             Rating = "fair"
	RatingAverage          Rating = "average"
	RatingNeedsImprovement Rating = "needs_improvement"
	RatingPoor             Rating = "poor"
	RatingNoData           Rating = "no_data"
)

// EfficiencyMetrics captures normalized productivity indicators derived from
// a BasicStats.
type EfficiencyMetrics struct {
	// TokensPerHour is total tokens divided by active hours, rounded to
	// one decimal place.
	TokensPerHour float64 `json:"tokens_per_hour"`

	// LinesPerHour is the estimated lines changed divided by active hours.
	LinesPerHour float64 `json:"lines_per_hour"`

	// EstimatedLinesChanged is the heuristic lines-of-code estimate derived
	// from tool invocation counts.
	EstimatedLinesChanged int `json:"estimated_lines_changed"`

	// ProductivityScore is a composite 0-10 rating of development efficiency.
	ProductivityScore float64 `json:"productivity_score"`

	// CostPerHour is total cost divided by active hours, rounded to cents.
	CostPerHour float64 `json:"cost_per_hour"`

	// EfficiencyRating buckets ProductivityScore, or RatingNoData when no
	// active time was recorded.
	EfficiencyRating Rating `json:"efficiency_rating"`
}

// ToolUsageAnalysis describes usage and efficiency of a single tool.
type ToolUsageAnalysis struct {
	ToolName        string  `json:"tool_name"`
	UsageCount      int     `json:"usage_count"`
	UsageRate       float64 `json:"usage_rate"`
	EstimatedLines  int     `json:"estimated_lines"`
	EfficiencyScore float64 `json:"efficiency_score"`
}

// CostAnalysis breaks down spend relative to time and estimated output.
type CostAnalysis struct {
	CostPerHour float64 `json:"cost_per_hour"`

	// CostPerLine is total cost divided by estimated lines changed, 0 when
	// no lines were estimated.
	CostPerLine float64 `json:"cost_per_line"`

	// ModelCosts attributes total cost to each model proportionally to its
	// token share.
	ModelCosts map[string]float64 `json:"model_costs"`

	// OptimizationSuggestions lists rule-triggered cost observations.
	OptimizationSuggestions []string `json:"optimization_suggestions"`
}

// Period is one sub-period in a time-ordered series handed to the trends
// analyzers, labeled by date.
type Period struct {
	Date  string           `json:"date"`
	Stats stats.BasicStats `json:"stats"`
}

// DailyMetric holds the per-period values surfaced in a TrendAnalysis.
type DailyMetric struct {
	Tokens            int64   `json:"tokens"`
	TimeHours         float64 `json:"time_hours"`
	ProductivityScore float64 `json:"productivity_score"`
	Cost              float64 `json:"cost"`
}

// TrendAnalysis holds signed fractional deltas between the first and second
// halves of a period series (0.15 means +15%). With fewer than two periods
// all trend fields are zero and Message explains why.
type TrendAnalysis struct {
	ProductivityTrend float64                `json:"productivity_trend"`
	TokenTrend        float64                `json:"token_trend"`
	TimeTrend         float64                `json:"time_trend"`
	DailyMetrics      map[string]DailyMetric `json:"daily_metrics"`
	Timeframe         string                 `json:"timeframe"`
	Message           string                 `json:"message,omitempty"`
}
