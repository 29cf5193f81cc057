package stats

import (
	"fmt"
	"math"

	"github.com/blackwell-systems/usagelens/internal/source"
)

// FromRecords aggregates raw usage records into a BasicStats. Nil and
// malformed records are skipped, negative numeric fields are clamped to zero
// before summation, and duplicate session IDs count once toward SessionCount
// while still contributing to every total.
func FromRecords(records []*source.UsageRecord) BasicStats {
	result := New()

	sessions := make(map[string]bool)
	seenFiles := make(map[string]bool)

	for _, rec := range records {
		if rec == nil || rec.SessionID == "" {
			continue
		}

		sessions[rec.SessionID] = true

		result.TotalTimeSeconds += clampF(rec.ActiveTimeSeconds)
		result.TotalCostUSD += clampF(rec.CostUSD)

		tokens := clampI(rec.TokenUsage.TotalTokens)
		if tokens == 0 {
			tokens = clampI(rec.TokenUsage.InputTokens) + clampI(rec.TokenUsage.OutputTokens)
		}
		result.TotalTokens += tokens

		for tool, count := range rec.ToolUsage {
			if tool == "" || count <= 0 {
				continue
			}
			result.ToolUsage[tool] += count
		}

		for model, modelTokens := range rec.ModelUsage {
			if model == "" || modelTokens <= 0 {
				continue
			}
			result.ModelUsage[model] += modelTokens
		}

		for _, path := range rec.FilesModified {
			if path == "" || seenFiles[path] {
				continue
			}
			seenFiles[path] = true
			result.FilesModified = append(result.FilesModified, path)
		}
	}

	result.SessionCount = len(sessions)
	result.FilesModifiedCount = len(result.FilesModified)
	result.TotalTimeHours = HoursFromSeconds(result.TotalTimeSeconds)

	return result
}

// FromSummary converts one pre-aggregated summary into a BasicStats. The
// summary duration is given in minutes. A summary reporting zero sessions
// but nonzero activity is treated as a single session.
func FromSummary(summary *source.AggregatedSummary) BasicStats {
	result := New()
	if summary == nil {
		return result
	}

	result.TotalTimeSeconds = clampF(summary.Timespan.DurationMinutes) * 60
	result.TotalTimeHours = HoursFromSeconds(result.TotalTimeSeconds)
	result.TotalCostUSD = clampF(summary.Costs.TotalUSD)

	result.TotalTokens = clampI(summary.Tokens.TotalTokens)
	if result.TotalTokens == 0 {
		result.TotalTokens = clampI(summary.Tokens.InputTokens) + clampI(summary.Tokens.OutputTokens)
	}

	for tool, count := range summary.Activity.ToolUsage {
		if tool == "" || count <= 0 {
			continue
		}
		result.ToolUsage[tool] += count
	}
	for model, tokens := range summary.Activity.ModelUsage {
		if model == "" || tokens <= 0 {
			continue
		}
		result.ModelUsage[model] += tokens
	}

	seen := make(map[string]bool)
	for _, path := range summary.Activity.FilesModified {
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true
		result.FilesModified = append(result.FilesModified, path)
	}
	result.FilesModifiedCount = len(result.FilesModified)

	result.SessionCount = summary.Timespan.Sessions
	if result.SessionCount < 0 {
		result.SessionCount = 0
	}
	if result.SessionCount == 0 && hasActivity(result) {
		result.SessionCount = 1
	}

	return result
}

// Merge combines multiple BasicStats into one: numeric fields are summed,
// file lists are unioned and deduplicated, and tool/model maps are summed
// key-wise. Merge(nil) yields an all-zero result; merging a single stats
// value yields an equivalent copy.
func Merge(parts []BasicStats) BasicStats {
	result := New()

	seen := make(map[string]bool)
	for _, part := range parts {
		result.SessionCount += part.SessionCount
		result.TotalTimeSeconds += clampF(part.TotalTimeSeconds)
		result.TotalTokens += clampI(part.TotalTokens)
		result.TotalCostUSD += clampF(part.TotalCostUSD)

		for tool, count := range part.ToolUsage {
			if count > 0 {
				result.ToolUsage[tool] += count
			}
		}
		for model, tokens := range part.ModelUsage {
			if tokens > 0 {
				result.ModelUsage[model] += tokens
			}
		}
		for _, path := range part.FilesModified {
			if path == "" || seen[path] {
				continue
			}
			seen[path] = true
			result.FilesModified = append(result.FilesModified, path)
		}
	}

	result.FilesModifiedCount = len(result.FilesModified)
	result.TotalTimeHours = HoursFromSeconds(result.TotalTimeSeconds)

	return result
}

// ValidateAndCorrect checks a BasicStats against its invariants and returns
// the violations found alongside a corrected copy. An empty issue list means
// the input was already valid.
func ValidateAndCorrect(s BasicStats) ValidationResult {
	result := ValidationResult{Issues: []string{}}
	corrected := s

	if corrected.ToolUsage == nil {
		corrected.ToolUsage = make(map[string]int)
	}
	if corrected.ModelUsage == nil {
		corrected.ModelUsage = make(map[string]int64)
	}
	if corrected.FilesModified == nil {
		corrected.FilesModified = []string{}
	}

	if s.TotalTimeSeconds < 0 {
		result.Issues = append(result.Issues, fmt.Sprintf("total_time_seconds is negative (%.1f)", s.TotalTimeSeconds))
		corrected.TotalTimeSeconds = 0
	}
	if s.TotalTokens < 0 {
		result.Issues = append(result.Issues, fmt.Sprintf("total_tokens is negative (%d)", s.TotalTokens))
		corrected.TotalTokens = 0
	}
	if s.TotalCostUSD < 0 {
		result.Issues = append(result.Issues, fmt.Sprintf("total_cost_usd is negative (%.4f)", s.TotalCostUSD))
		corrected.TotalCostUSD = 0
	}

	if s.FilesModifiedCount != len(corrected.FilesModified) {
		result.Issues = append(result.Issues, fmt.Sprintf(
			"files_modified_count (%d) does not match files_modified length (%d)",
			s.FilesModifiedCount, len(corrected.FilesModified)))
		corrected.FilesModifiedCount = len(corrected.FilesModified)
	}

	if s.SessionCount <= 0 && hasActivity(corrected) {
		result.Issues = append(result.Issues, fmt.Sprintf(
			"session_count is %d but activity was recorded", s.SessionCount))
		corrected.SessionCount = 1
	}
	if corrected.SessionCount < 0 {
		corrected.SessionCount = 0
	}

	wantHours := HoursFromSeconds(corrected.TotalTimeSeconds)
	if math.Abs(s.TotalTimeHours-wantHours) > 0.05 {
		result.Issues = append(result.Issues, fmt.Sprintf(
			"total_time_hours (%.1f) inconsistent with total_time_seconds (%.0f)",
			s.TotalTimeHours, corrected.TotalTimeSeconds))
	}
	corrected.TotalTimeHours = wantHours

	result.Valid = len(result.Issues) == 0
	result.Corrected = corrected
	return result
}

// hasActivity reports whether any activity at all was recorded.
func hasActivity(s BasicStats) bool {
	return s.TotalTokens > 0 || s.TotalTimeSeconds > 0 || s.TotalCostUSD > 0 ||
		len(s.ToolUsage) > 0 || len(s.FilesModified) > 0
}
