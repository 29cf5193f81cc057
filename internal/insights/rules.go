package insights

import (
	"math"

	"github.com/blackwell-systems/usagelens/internal/analyzer"
)

// trendThreshold is the minimum |trend| before a trend insight fires.
const trendThreshold = 0.1

// Token and cost rate extremes.
const (
	tokenRateHigh = 2500.0
	tokenRateLow  = 200.0
	costRateHigh  = 5.0
	costRateLow   = 0.5
)

// Thresholds are the tunable levels the rule tables evaluate against.
type Thresholds struct {
	// TrendSensitivity is the minimum |trend| before a trend rule fires.
	TrendSensitivity float64

	// HighCostPerHour is the spend rate treated as high.
	HighCostPerHour float64
}

// DefaultThresholds returns the built-in levels.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TrendSensitivity: trendThreshold,
		HighCostPerHour:  costRateHigh,
	}
}

// normalize replaces non-positive levels with the defaults.
func (t Thresholds) normalize() Thresholds {
	if t.TrendSensitivity <= 0 {
		t.TrendSensitivity = trendThreshold
	}
	if t.HighCostPerHour <= 0 {
		t.HighCostPerHour = costRateHigh
	}
	return t
}

// ratingRule builds one insight rule for a single efficiency rating bucket.
func ratingRule(key string, rating analyzer.Rating, priority int) Rule {
	return Rule{
		Name:     key,
		Priority: priority,
		When: func(ctx *Context) bool {
			return ctx.Efficiency.EfficiencyRating == rating
		},
		Args: func(ctx *Context) []any {
			return []any{ctx.Efficiency.ProductivityScore}
		},
	}
}

// defaultRules is the ordered rule table evaluated by the generator, built
// against the given threshold levels. Order is part of the contract:
// identical input yields identically ordered output.
func defaultRules(t Thresholds) []Rule {
	return []Rule{
		ratingRule("rating_excellent", analyzer.RatingExcellent, PriorityInfo),
		ratingRule("rating_good", analyzer.RatingGood, PriorityInfo),
		ratingRule("rating_fair", analyzer.RatingFair, PriorityNotable),
		ratingRule("rating_average", analyzer.RatingAverage, PriorityNotable),
		ratingRule("rating_needs_improvement", analyzer.RatingNeedsImprovement, PriorityAttention),
		ratingRule("rating_poor", analyzer.RatingPoor, PriorityAttention),
		{
			Name:     "no_data",
			Priority: PriorityInfo,
			When: func(ctx *Context) bool {
				return ctx.Efficiency.EfficiencyRating == analyzer.RatingNoData
			},
		},
		{
			Name:     "productivity_rising",
			Priority: PriorityInfo,
			When: func(ctx *Context) bool {
				return ctx.Trends.ProductivityTrend > t.TrendSensitivity
			},
			Args: func(ctx *Context) []any {
				return []any{ctx.Trends.ProductivityTrend * 100}
			},
		},
		{
			Name:     "productivity_falling",
			Priority: PriorityAttention,
			When: func(ctx *Context) bool {
				return ctx.Trends.ProductivityTrend < -t.TrendSensitivity
			},
			Args: func(ctx *Context) []any {
				return []any{math.Abs(ctx.Trends.ProductivityTrend) * 100}
			},
		},
		{
			Name:     "tokens_rising",
			Priority: PriorityNotable,
			When: func(ctx *Context) bool {
				return ctx.Trends.TokenTrend > t.TrendSensitivity
			},
			Args: func(ctx *Context) []any {
				return []any{ctx.Trends.TokenTrend * 100}
			},
		},
		{
			Name:     "tokens_falling",
			Priority: PriorityInfo,
			When: func(ctx *Context) bool {
				return ctx.Trends.TokenTrend < -t.TrendSensitivity
			},
			Args: func(ctx *Context) []any {
				return []any{math.Abs(ctx.Trends.TokenTrend) * 100}
			},
		},
		{
			Name:     "time_rising",
			Priority: PriorityInfo,
			When: func(ctx *Context) bool {
				return ctx.Trends.TimeTrend > t.TrendSensitivity
			},
			Args: func(ctx *Context) []any {
				return []any{ctx.Trends.TimeTrend * 100}
			},
		},
		{
			Name:     "dominant_tool",
			Priority: PriorityInfo,
			When: func(ctx *Context) bool {
				_, count := ctx.DominantTool()
				return count > 0
			},
			Args: func(ctx *Context) []any {
				tool, count := ctx.DominantTool()
				return []any{tool, count}
			},
		},
		{
			Name:     "token_rate_high",
			Priority: PriorityNotable,
			When: func(ctx *Context) bool {
				return ctx.Efficiency.TokensPerHour > tokenRateHigh
			},
			Args: func(ctx *Context) []any {
				return []any{ctx.Efficiency.TokensPerHour}
			},
		},
		{
			Name:     "token_rate_low",
			Priority: PriorityNotable,
			When: func(ctx *Context) bool {
				return ctx.Stats.TotalTimeHours > 0 &&
					ctx.Efficiency.TokensPerHour > 0 &&
					ctx.Efficiency.TokensPerHour < tokenRateLow
			},
			Args: func(ctx *Context) []any {
				return []any{ctx.Efficiency.TokensPerHour}
			},
		},
		{
			Name:     "cost_rate_high",
			Priority: PriorityAttention,
			When: func(ctx *Context) bool {
				return ctx.Efficiency.CostPerHour > t.HighCostPerHour
			},
			Args: func(ctx *Context) []any {
				return []any{ctx.Efficiency.CostPerHour}
			},
		},
		{
			Name:     "cost_rate_low",
			Priority: PriorityInfo,
			When: func(ctx *Context) bool {
				return ctx.Efficiency.CostPerHour > 0 &&
					ctx.Efficiency.CostPerHour < costRateLow
			},
			Args: func(ctx *Context) []any {
				return []any{ctx.Efficiency.CostPerHour}
			},
		},
	}
}
