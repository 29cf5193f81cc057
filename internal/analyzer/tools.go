package analyzer

import (
	"math"
	"sort"
)

// Per-tool base efficiency ranks. Edit-class tools outrank read-class tools;
// everything else sits in between.
const (
	baseRankEdit    = 8.0
	baseRankExec    = 6.0
	baseRankDefault = 5.0
	baseRankRead    = 4.0
)

// AnalyzeToolUsage breaks down per-tool usage for the given invocation
// counts over the given active hours. Results are sorted by usage count
// descending, with tool name as the tiebreaker for deterministic output.
func (c *Calculator) AnalyzeToolUsage(toolUsage map[string]int, hours float64) []ToolUsageAnalysis {
	model := c.estimator.Model()

	var analyses []ToolUsageAnalysis
	for tool, count := range toolUsage {
		if tool == "" || count <= 0 {
			continue
		}

		weight, known := model[tool]
		if !known {
			weight = DefaultUnknownWeight
		}

		entry := ToolUsageAnalysis{
			ToolName:        tool,
			UsageCount:      count,
			EstimatedLines:  int(math.Round(float64(count) * weight)),
			EfficiencyScore: toolEfficiencyScore(tool, count),
		}
		if hours > 0 {
			entry.UsageRate = round1(float64(count) / hours)
		}
		analyses = append(analyses, entry)
	}

	sort.Slice(analyses, func(i, j int) bool {
		if analyses[i].UsageCount != analyses[j].UsageCount {
			return analyses[i].UsageCount > analyses[j].UsageCount
		}
		return analyses[i].ToolName < analyses[j].ToolName
	})

	return analyses
}

// toolEfficiencyScore ranks a tool by its class and scales by usage volume,
// clamped to [0, 10].
func toolEfficiencyScore(tool string, count int) float64 {
	base := baseRankDefault
	switch {
	case editTools[tool]:
		base = baseRankEdit
	case readTools[tool]:
		base = baseRankRead
	case tool == "Bash":
		base = baseRankExec
	}

	volume := math.Min(1.0, 0.5+float64(count)/20.0)

	score := base * volume
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return round1(score)
}
