package analyzer

import "math"

// Advanced analyzer tuning.
const (
	// anomalyStdDevs is how many standard deviations from the smoothed
	// value a point must sit to be flagged as an anomaly.
	anomalyStdDevs = 2.0

	// anomalyWeight down-weights flagged points in half averages.
	anomalyWeight = 0.25

	// smoothingWindow is the default moving-average window.
	smoothingWindow = 3

	// weeklyWindow replaces the default window when a weekly cycle is
	// detected on longer series.
	weeklyWindow = 7

	// seasonalityMinPeriods is the minimum series length before the weekly
	// seasonality check runs.
	seasonalityMinPeriods = 14
)

// AnalyzeTrendsAdvanced computes the same trend deltas as AnalyzeTrends but
// smooths each series with a moving average first and down-weights anomalous
// points, so a single outlier period does not dominate the comparison. The
// returned schema is identical to the basic analyzer's, and both agree in
// the sign of each trend for well-formed data.
func (c *Calculator) AnalyzeTrendsAdvanced(periods []Period, timeframe string) TrendAnalysis {
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
	window := smoothingWindow
	if len(proxy) >= seasonalityMinPeriods && hasWeeklyCycle(proxy) {
		window = weeklyWindow
	}

	weights := anomalyWeights(proxy, window)
	split := len(periods) / 2

	analysis.ProductivityTrend = weightedTrend(movingAverage(proxy, window), weights, split)
	analysis.TokenTrend = weightedTrend(movingAverage(tokenSeries(periods), window), weights, split)
	analysis.TimeTrend = weightedTrend(movingAverage(hourSeries(periods), window), weights, split)

	return analysis
}

// weightedTrend compares the weighted averages of the two halves of a
// smoothed series.
func weightedTrend(series, weights []float64, split int) float64 {
	first := weightedMean(series[:split], weights[:split])
	second := weightedMean(series[split:], weights[split:])
	return TrendRatio(first, second)
}

// movingAverage smooths a series with a trailing window of the given size.
func movingAverage(series []float64, window int) []float64 {
	if window <= 1 || len(series) < 2 {
		out := make([]float64, len(series))
		copy(out, series)
		return out
	}

	out := make([]float64, len(series))
	for i := range series {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		out[i] = mean(series[start : i+1])
	}
	return out
}

// anomalyWeights flags points beyond anomalyStdDevs of the rolling mean and
// assigns them a reduced weight; all other points weigh 1.
func anomalyWeights(series []float64, window int) []float64 {
	weights := make([]float64, len(series))
	for i := range weights {
		weights[i] = 1.0
	}

	sd := stdDev(series)
	if sd == 0 {
		return weights
	}

	rolling := movingAverage(series, window)
	for i, v := range series {
		if math.Abs(v-rolling[i]) > anomalyStdDevs*sd {
			weights[i] = anomalyWeight
		}
	}
	return weights
}

// hasWeeklyCycle looks for a weekly rhythm by bucketing the series on a
// seven-period cycle and checking whether any bucket deviates strongly from
// the overall mean.
func hasWeeklyCycle(series []float64) bool {
	overall := mean(series)
	if overall == 0 {
		return false
	}

	var sums [7]float64
	var counts [7]int
	for i, v := range series {
		sums[i%7] += v
		counts[i%7]++
	}

	for i := range sums {
		if counts[i] < 2 {
			continue
		}
		bucketMean := sums[i] / float64(counts[i])
		if math.Abs(bucketMean-overall) > 0.3*overall {
			return true
		}
	}
	return false
}

func stdDev(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}
	m := mean(series)
	var sum float64
	for _, v := range series {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(series)))
}

func weightedMean(values, weights []float64) float64 {
	var sum, weightSum float64
	for i, v := range values {
		w := 1.0
		if i < len(weights) {
			w = weights[i]
		}
		sum += v * w
		weightSum += w
	}
	if weightSum == 0 {
		return 0
	}
	return sum / weightSum
}
