package analyzer

import (
	"fmt"

	"github.com/blackwell-systems/usagelens/internal/stats"
)

// Cost suggestion thresholds.
const (
	highCostPerHour      = 5.0
	readEditRatioCeiling = 2.0
	manySessionsCeiling  = 10
)

// CalculateCostAnalysis breaks down spend for a BasicStats and attaches
// rule-triggered optimization suggestions. It never fails: with zero hours
// or zero estimated lines the respective rates are simply zero.
func (c *Calculator) CalculateCostAnalysis(s stats.BasicStats) CostAnalysis {
	analysis := CostAnalysis{
		ModelCosts:              map[string]float64{},
		OptimizationSuggestions: []string{},
	}

	if s.TotalTimeHours > 0 {
		analysis.CostPerHour = round2(s.TotalCostUSD / s.TotalTimeHours)
	}

	lines := c.estimator.Estimate(s.ToolUsage)
	if lines > 0 {
		analysis.CostPerLine = round4(s.TotalCostUSD / float64(lines))
	}

	// Attribute total cost to each model in proportion to its token share.
	var modelTokens int64
	for _, tokens := range s.ModelUsage {
		if tokens > 0 {
			modelTokens += tokens
		}
	}
	if modelTokens > 0 && s.TotalCostUSD > 0 {
		for model, tokens := range s.ModelUsage {
			if tokens <= 0 {
				continue
			}
			analysis.ModelCosts[model] = round4(s.TotalCostUSD * float64(tokens) / float64(modelTokens))
		}
	}

	analysis.OptimizationSuggestions = costSuggestions(s, analysis.CostPerHour, c.highCost)

	return analysis
}

// costSuggestions evaluates the cost optimization rules in a fixed order so
// identical input always produces identical output.
func costSuggestions(s stats.BasicStats, costPerHour, highCost float64) []string {
	suggestions := []string{}

	if costPerHour > highCost {
		suggestions = append(suggestions, fmt.Sprintf(
			"Cost per hour is $%.2f. Review model selection and prompt caching to bring spend down.",
			costPerHour))
	}

	var reads, edits int
	for tool, count := range s.ToolUsage {
		if count <= 0 {
			continue
		}
		if readTools[tool] {
			reads += count
		}
		if editTools[tool] {
			edits += count
		}
	}
	if reads > 0 && float64(reads) > readEditRatioCeiling*float64(edits) {
		suggestions = append(suggestions, fmt.Sprintf(
			"Read-class calls outnumber edit-class calls %d to %d. Batching file lookups reduces redundant reads.",
			reads, edits))
	}

	if s.SessionCount > manySessionsCeiling {
		suggestions = append(suggestions, fmt.Sprintf(
			"%d sessions recorded in this window. Consolidating related work into fewer sessions cuts repeated context cost.",
			s.SessionCount))
	}

	return suggestions
}
