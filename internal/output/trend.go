package output

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// ScoreBar renders a visual bar for a 0-10 score.
// Example: "████████░░ 8.2/10"
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((score / 10.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := ""
	for i := 0; i < filled; i++ {
		bar += "█"
	}
	for i := filled; i < width; i++ {
		bar += "░"
	}

	var styled string
	switch {
	case score >= 7:
		styled = StyleSuccess.Render(bar)
	case score >= 4:
		styled = StyleWarning.Render(bar)
	default:
		styled = StyleError.Render(bar)
	}

	return fmt.Sprintf("%s %s", styled, StyleMuted.Render(fmt.Sprintf("%.1f/10", score)))
}

// TrendArrow returns a styled indicator for a signed fractional trend.
// Positive trends show an up arrow, negative show down, zero shows a dash.
// The higherIsBetter parameter picks the success/error color.
func TrendArrow(trend float64, higherIsBetter bool) string {
	if trend == 0 {
		return StyleMuted.Render("─")
	}

	var arrow string
	if trend > 0 {
		arrow = fmt.Sprintf("▲ +%.0f%%", trend*100)
	} else {
		arrow = fmt.Sprintf("▼ %.0f%%", trend*100)
	}

	improved := (trend > 0) == higherIsBetter
	if improved {
		return StyleSuccess.Render(arrow)
	}
	return StyleError.Render(arrow)
}

// Chart renders a compact line chart for a metric series. Series shorter
// than two points render as an empty string. A non-positive width lets the
// plot size itself to the series.
func Chart(series []float64, height, width int, caption string) string {
	if len(series) < 2 {
		return ""
	}
	if height <= 0 {
		height = 8
	}
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	return asciigraph.Plot(series, opts...)
}
