// Package source provides data-source adapters that fetch and parse raw
// usage records for the analytics engine. Records come from ccusage-style
// JSON exports, JSONL streams, or the cost-accounting command itself.
package source

// TokenUsage breaks a record's token count into input and output components.
type TokenUsage struct {
	InputTokens  int64 `json:"input"`
	OutputTokens int64 `json:"output"`
	TotalTokens  int64 `json:"total"`
}

// UsageRecord is one raw per-session usage record as produced by a
// data-source adapter. It is immutable once parsed; the stats calculator
// consumes it exactly once per aggregation call.
type UsageRecord struct {
	// SessionID identifies the session this record belongs to. Multiple
	// records may share a session ID.
	SessionID string `json:"session_id"`

	// Timestamp is the record time in RFC3339 (or YYYY-MM-DD for daily
	// rollups).
	Timestamp string `json:"timestamp"`

	// ActiveTimeSeconds is the active working time covered by this record.
	ActiveTimeSeconds float64 `json:"active_time_seconds"`

	// TokenUsage holds the token counts for this record.
	TokenUsage TokenUsage `json:"token_usage"`

	// ToolUsage maps tool name to invocation count.
	ToolUsage map[string]int `json:"tool_usage"`

	// FilesModified lists paths touched during this record's span.
	FilesModified []string `json:"files_modified"`

	// ModelUsage maps model name to tokens consumed by that model.
	ModelUsage map[string]int64 `json:"model_usage"`

	// CostUSD is the dollar cost attributed to this record.
	CostUSD float64 `json:"cost_usd"`
}

// Date returns the YYYY-MM-DD portion of the record timestamp, or the
// timestamp unchanged when it is already a bare date.
func (r *UsageRecord) Date() string {
	if len(r.Timestamp) >= 10 {
		return r.Timestamp[:10]
	}
	return r.Timestamp
}

// AggregatedSummary is the alternate pre-aggregated input shape: one object
// summarizing a whole analysis window, as emitted by cost-accounting tools
// that roll up on their side.
type AggregatedSummary struct {
	Timespan SummaryTimespan `json:"timespan"`
	Tokens   TokenUsage      `json:"tokens"`
	Costs    SummaryCosts    `json:"costs"`
	Activity SummaryActivity `json:"activity"`
}

// SummaryTimespan covers the duration and session count of a summary.
type SummaryTimespan struct {
	DurationMinutes float64 `json:"duration_minutes"`
	Sessions        int     `json:"sessions"`
}

// SummaryCosts covers the cost fields of a summary.
type SummaryCosts struct {
	TotalUSD float64 `json:"total_usd"`
}

// SummaryActivity covers the activity fields of a summary.
type SummaryActivity struct {
	ToolUsage     map[string]int   `json:"tool_usage"`
	ModelUsage    map[string]int64 `json:"model_usage"`
	FilesModified []string         `json:"files_modified"`
}
