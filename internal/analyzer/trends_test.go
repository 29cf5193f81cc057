package analyzer

import (
	"math"
	"testing"

	"github.com/blackwell-systems/usagelens/internal/stats"
)

func period(date string, tokens int64, hours float64) Period {
	s := stats.New()
	s.SessionCount = 1
	s.TotalTokens = tokens
	s.TotalTimeHours = hours
	s.TotalTimeSeconds = hours * 3600
	return Period{Date: date, Stats: s}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTrendRatio(t *testing.T) {
	cases := []struct {
		a, b, want float64
	}{
		{100, 150, 0.5},
		{100, 50, -0.5},
		{100, 100, 0},
		{0, 500, 0}, // zero baseline is guarded
		{0, 0, 0},
	}
	for _, tc := range cases {
		if got := TrendRatio(tc.a, tc.b); !almostEqual(got, tc.want) {
			t.Errorf("TrendRatio(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestAnalyzeTrends_InsufficientPeriods(t *testing.T) {
	c := NewCalculator(nil)

	for _, periods := range [][]Period{nil, {period("2026-08-01", 100, 1)}} {
		a := c.AnalyzeTrends(periods, "test")
		if a.Message == "" {
			t.Error("expected a message with fewer than two periods")
		}
		if a.ProductivityTrend != 0 || a.TokenTrend != 0 || a.TimeTrend != 0 {
			t.Errorf("expected zero trends, got %+v", a)
		}
		if a.DailyMetrics == nil {
			t.Error("DailyMetrics should be initialized, not nil")
		}
	}
}

func TestAnalyzeTrends_TwoPeriods(t *testing.T) {
	c := NewCalculator(nil)

	periods := []Period{
		period("2026-08-01", 500, 2),
		period("2026-08-02", 1000, 2),
	}

	a := c.AnalyzeTrends(periods, "2 days")

	if !almostEqual(a.TokenTrend, 1.0) {
		t.Errorf("TokenTrend = %v, want 1.0", a.TokenTrend)
	}
	if !almostEqual(a.TimeTrend, 0) {
		t.Errorf("TimeTrend = %v, want 0", a.TimeTrend)
	}
	// Tokens-per-hour proxy went 250 -> 500.
	if !almostEqual(a.ProductivityTrend, 1.0) {
		t.Errorf("ProductivityTrend = %v, want 1.0", a.ProductivityTrend)
	}
	if a.Message != "" {
		t.Errorf("Message = %q, want empty", a.Message)
	}
	if a.Timeframe != "2 days" {
		t.Errorf("Timeframe = %q, want %q", a.Timeframe, "2 days")
	}
}

func TestAnalyzeTrends_OddCountMiddleInSecondHalf(t *testing.T) {
	c := NewCalculator(nil)

	periods := []Period{
		period("2026-08-01", 100, 1),
		period("2026-08-02", 100, 1),
		period("2026-08-03", 400, 1),
	}

	a := c.AnalyzeTrends(periods, "3 days")

	// First half is the first period only; second half averages 100 and 400.
	if !almostEqual(a.TokenTrend, 1.5) {
		t.Errorf("TokenTrend = %v, want 1.5", a.TokenTrend)
	}
}

func TestAnalyzeTrends_DailyMetricsPerPeriod(t *testing.T) {
	c := NewCalculator(nil)

	periods := []Period{
		period("2026-08-01", 500, 1),
		period("2026-08-02", 1000, 2),
	}
	periods[1].Stats.TotalCostUSD = 3.5

	a := c.AnalyzeTrends(periods, "2 days")

	if len(a.DailyMetrics) != 2 {
		t.Fatalf("len(DailyMetrics) = %d, want 2", len(a.DailyMetrics))
	}
	day2 := a.DailyMetrics["2026-08-02"]
	if day2.Tokens != 1000 {
		t.Errorf("day2.Tokens = %d, want 1000", day2.Tokens)
	}
	if day2.TimeHours != 2 {
		t.Errorf("day2.TimeHours = %v, want 2", day2.TimeHours)
	}
	if day2.Cost != 3.5 {
		t.Errorf("day2.Cost = %v, want 3.5", day2.Cost)
	}
	if day2.ProductivityScore <= 0 {
		t.Errorf("day2.ProductivityScore = %v, want > 0", day2.ProductivityScore)
	}
}

func TestAnalyzeTrends_ZeroHourPeriodsDoNotPanic(t *testing.T) {
	c := NewCalculator(nil)

	periods := []Period{
		period("2026-08-01", 0, 0),
		period("2026-08-02", 0, 0),
	}

	a := c.AnalyzeTrends(periods, "2 days")

	if a.ProductivityTrend != 0 || a.TokenTrend != 0 || a.TimeTrend != 0 {
		t.Errorf("expected zero trends for zero activity, got %+v", a)
	}
}

func TestAnalyzeTrendsAdvanced_InsufficientPeriods(t *testing.T) {
	c := NewCalculator(nil)

	a := c.AnalyzeTrendsAdvanced([]Period{period("2026-08-01", 100, 1)}, "test")
	if a.Message == "" {
		t.Error("expected a message with fewer than two periods")
	}
	if a.TokenTrend != 0 {
		t.Errorf("TokenTrend = %v, want 0", a.TokenTrend)
	}
}

func TestAnalyzeTrendsAdvanced_SignAgreesWithBasic(t *testing.T) {
	c := NewCalculator(nil)

	// Steadily rising series: both analyzers must report a positive trend.
	var periods []Period
	tokens := []int64{100, 200, 300, 400, 500, 600}
	for i, tk := range tokens {
		periods = append(periods, period(day(i), tk, 1))
	}

	basic := c.AnalyzeTrends(periods, "6 days")
	advanced := c.AnalyzeTrendsAdvanced(periods, "6 days")

	if basic.TokenTrend <= 0 || advanced.TokenTrend <= 0 {
		t.Errorf("TokenTrend basic = %v, advanced = %v, want both > 0", basic.TokenTrend, advanced.TokenTrend)
	}
	if basic.ProductivityTrend <= 0 || advanced.ProductivityTrend <= 0 {
		t.Errorf("ProductivityTrend basic = %v, advanced = %v, want both > 0",
			basic.ProductivityTrend, advanced.ProductivityTrend)
	}
}

func TestAnalyzeTrendsAdvanced_OutlierDampened(t *testing.T) {
	c := NewCalculator(nil)

	// A flat series with one extreme spike at the end. Smoothing plus
	// anomaly down-weighting must keep the advanced trend well below the
	// basic one.
	var periods []Period
	tokens := []int64{100, 100, 100, 100, 100, 100, 100, 10000}
	for i, tk := range tokens {
		periods = append(periods, period(day(i), tk, 1))
	}

	basic := c.AnalyzeTrends(periods, "8 days")
	advanced := c.AnalyzeTrendsAdvanced(periods, "8 days")

	if advanced.TokenTrend <= 0 {
		t.Errorf("advanced TokenTrend = %v, want > 0", advanced.TokenTrend)
	}
	if advanced.TokenTrend >= basic.TokenTrend {
		t.Errorf("advanced TokenTrend = %v, want below basic %v", advanced.TokenTrend, basic.TokenTrend)
	}
}

func TestMovingAverage_TrailingWindow(t *testing.T) {
	series := []float64{10, 20, 30, 40}

	got := movingAverage(series, 3)

	want := []float64{10, 15, 20, 30}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("movingAverage[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMovingAverage_WindowOneIsIdentity(t *testing.T) {
	series := []float64{5, 7, 9}

	got := movingAverage(series, 1)

	for i := range series {
		if got[i] != series[i] {
			t.Errorf("movingAverage[%d] = %v, want %v", i, got[i], series[i])
		}
	}
}

func TestStdDev(t *testing.T) {
	if got := stdDev([]float64{5}); got != 0 {
		t.Errorf("stdDev(single) = %v, want 0", got)
	}
	if got := stdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}); !almostEqual(got, 2) {
		t.Errorf("stdDev = %v, want 2", got)
	}
}

func TestWeightedMean(t *testing.T) {
	got := weightedMean([]float64{10, 20}, []float64{1, 0.25})
	if !almostEqual(got, 12) {
		t.Errorf("weightedMean = %v, want 12", got)
	}
	if got := weightedMean(nil, nil); got != 0 {
		t.Errorf("weightedMean(empty) = %v, want 0", got)
	}
}

func day(i int) string {
	days := []string{
		"2026-08-01", "2026-08-02", "2026-08-03", "2026-08-04",
		"2026-08-05", "2026-08-06", "2026-08-07", "2026-08-08",
	}
	return days[i]
}
