package analyzer

import (
	"math"

	"github.com/blackwell-systems/usagelens/internal/stats"
)

// Productivity score normalization anchors: throughput at or above these
// rates earns the full component weight.
const (
	fullTokensPerHour = 1500.0
	fullLinesPerHour  = 200.0
	longSessionHours  = 2.0
)

// Rating bucket lower bounds, inclusive.
var ratingBuckets = []struct {
	min    float64
	rating Rating
}{
	{8.5, RatingExcellent},
	{7.0, RatingGood},
	{5.5, RatingFair},
	{4.0, RatingAverage},
	{2.5, RatingNeedsImprovement},
}

// Calculator derives efficiency metrics, tool analysis, cost analysis, and
// trends from basic statistics. The zero-configuration calculator uses the
// default estimator weights and cost threshold.
type Calculator struct {
	estimator *CodeEstimator
	highCost  float64
}

// NewCalculator creates a calculator backed by the given estimator. A nil
// estimator selects the default weight table.
func NewCalculator(estimator *CodeEstimator) *Calculator {
	if estimator == nil {
		estimator = NewCodeEstimator(nil)
	}
	return &Calculator{estimator: estimator, highCost: highCostPerHour}
}

// Estimator returns the calculator's code change estimator.
func (c *Calculator) Estimator() *CodeEstimator {
	return c.estimator
}

// SetCostThreshold overrides the cost-per-hour level above which the cost
// analysis suggests optimizations. Non-positive values keep the default.
func (c *Calculator) SetCostThreshold(v float64) {
	if v > 0 {
		c.highCost = v
	}
}

// Calculate derives efficiency metrics from a BasicStats. When no active
// time was recorded it returns the "no data" sentinel result instead of
// dividing by zero.
func (c *Calculator) Calculate(s stats.BasicStats) EfficiencyMetrics {
	if s.TotalTimeHours <= 0 {
		return EfficiencyMetrics{EfficiencyRating: RatingNoData}
	}

	hours := s.TotalTimeHours
	lines := c.estimator.Estimate(s.ToolUsage)

	metrics := EfficiencyMetrics{
		TokensPerHour:         round1(float64(s.TotalTokens) / hours),
		EstimatedLinesChanged: lines,
		LinesPerHour:          round1(float64(lines) / hours),
		CostPerHour:           round2(s.TotalCostUSD / hours),
	}

	metrics.ProductivityScore = productivityScore(
		metrics.TokensPerHour, metrics.LinesPerHour, s.SessionCount, hours)
	metrics.EfficiencyRating = RatingForScore(metrics.ProductivityScore)

	return metrics
}

// productivityScore combines normalized token throughput, normalized line
// throughput, a penalty for long average sessions, and a consistency bonus
// into a 0-10 composite.
func productivityScore(tokensPerHour, linesPerHour float64, sessions int, hours float64) float64 {
	tokenScore := math.Min(tokensPerHour/fullTokensPerHour, 1.0) * 4.5
	lineScore := math.Min(linesPerHour/fullLinesPerHour, 1.0) * 4.0

	penalty := 0.0
	if sessions > 0 {
		avgSession := hours / float64(sessions)
		if avgSession > longSessionHours {
			penalty = math.Min(2.5, (avgSession-longSessionHours)*0.75)
		}
	}

	bonus := math.Min(float64(sessions)/3.0, 1.0) * 1.5

	score := tokenScore + lineScore - penalty + bonus
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return round1(score)
}

// RatingForScore buckets a 0-10 productivity score into the six fixed
// rating categories.
func RatingForScore(score float64) Rating {
	for _, bucket := range ratingBuckets {
		if score >= bucket.min {
			return bucket.rating
		}
	}
	return RatingPoor
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
