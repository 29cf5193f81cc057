// Package stats aggregates raw usage records into basic statistics and
// provides merge and validation helpers over the aggregated values.
package stats

import "math"

// BasicStats holds the aggregated totals for a set of usage records. All
// numeric fields are non-negative; instances are constructed fresh per call
// and owned by the caller.
type BasicStats struct {
	// SessionCount is the number of distinct session IDs observed.
	SessionCount int `json:"session_count"`

	// TotalTimeSeconds is the summed active time across all records.
	TotalTimeSeconds float64 `json:"total_time_seconds"`

	// TotalTimeHours is TotalTimeSeconds converted to hours, rounded to
	// one decimal place.
	TotalTimeHours float64 `json:"total_time_hours"`

	// TotalTokens is the summed token count across all records.
	TotalTokens int64 `json:"total_tokens"`

	// TotalCostUSD is the summed dollar cost across all records.
	TotalCostUSD float64 `json:"total_cost_usd"`

	// FilesModifiedCount equals len(FilesModified).
	FilesModifiedCount int `json:"files_modified_count"`

	// FilesModified lists the distinct file paths touched, in first-seen order.
	FilesModified []string `json:"files_modified"`

	// ToolUsage maps tool name to summed invocation count.
	ToolUsage map[string]int `json:"tool_usage"`

	// ModelUsage maps model name to summed token count.
	ModelUsage map[string]int64 `json:"model_usage"`
}

// ValidationResult reports invariant violations found in a BasicStats along
// with a corrected copy. Issues are data, not errors: callers decide whether
// to surface them.
type ValidationResult struct {
	Valid     bool       `json:"valid"`
	Issues    []string   `json:"issues"`
	Corrected BasicStats `json:"corrected"`
}

// New returns an empty BasicStats with initialized maps.
func New() BasicStats {
	return BasicStats{
		FilesModified: []string{},
		ToolUsage:     make(map[string]int),
		ModelUsage:    make(map[string]int64),
	}
}

// HoursFromSeconds converts seconds to hours rounded to one decimal place.
func HoursFromSeconds(seconds float64) float64 {
	return math.Round(seconds/3600.0*10) / 10
}

// clampF returns v, or 0 when v is negative or not a finite number.
func clampF(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// clampI returns v, or 0 when v is negative.
func clampI(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
