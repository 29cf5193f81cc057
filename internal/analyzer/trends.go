package analyzer

// insufficientPeriodsMessage is attached when fewer than two periods are
// available for trend comparison.
const insufficientPeriodsMessage = "at least two periods are required for trend analysis"

// TrendRatio returns the signed fractional change from a to b, guarding the
// zero baseline: TrendRatio(0, x) is 0 for any x.
func TrendRatio(a, b float64) float64 {
	if a == 0 {
		return 0
	}
	return (b - a) / a
}

// AnalyzeTrends computes basic trend deltas over a time-ordered period
// series. The series is split into two halves and each trend is the
// fractional change between the half averages. With an odd period count the
// middle period belongs to the second half.
func (c *Calculator) AnalyzeTrends(periods []Period, timeframe string) TrendAnalysis {
	analysis := TrendAnalysis{
		DailyMetrics: map[string]DailyMetric{},
		Timeframe:    timeframe,
	}

	if len(periods) < 2 {
		analysis.Message = insufficientPeriodsMessage
		return analysis
	}

	c.fillDailyMetrics(&analysis, periods)

	proxy := productivitySeries(periods)
	tokens := tokenSeries(periods)
	hours := hourSeries(periods)

	split := len(periods) / 2
	analysis.ProductivityTrend = TrendRatio(mean(proxy[:split]), mean(proxy[split:]))
	analysis.TokenTrend = TrendRatio(mean(tokens[:split]), mean(tokens[split:]))
	analysis.TimeTrend = TrendRatio(mean(hours[:split]), mean(hours[split:]))

	return analysis
}

// fillDailyMetrics populates one DailyMetric entry per input period.
func (c *Calculator) fillDailyMetrics(analysis *TrendAnalysis, periods []Period) {
	for _, p := range periods {
		analysis.DailyMetrics[p.Date] = DailyMetric{
			Tokens:            p.Stats.TotalTokens,
			TimeHours:         p.Stats.TotalTimeHours,
			ProductivityScore: c.Calculate(p.Stats).ProductivityScore,
			Cost:              p.Stats.TotalCostUSD,
		}
	}
}

// productivitySeries maps each period to its tokens-per-hour proxy, 0 when
// the period recorded no time.
func productivitySeries(periods []Period) []float64 {
	series := make([]float64, len(periods))
	for i, p := range periods {
		if p.Stats.TotalTimeHours > 0 {
			series[i] = float64(p.Stats.TotalTokens) / p.Stats.TotalTimeHours
		}
	}
	return series
}

func tokenSeries(periods []Period) []float64 {
	series := make([]float64, len(periods))
	for i, p := range periods {
		series[i] = float64(p.Stats.TotalTokens)
	}
	return series
}

func hourSeries(periods []Period) []float64 {
	series := make([]float64, len(periods))
	for i, p := range periods {
		series[i] = p.Stats.TotalTimeHours
	}
	return series
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
