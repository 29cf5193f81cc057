package source

import (
	"strings"
	"testing"
)

func TestParseReport_Sessions(t *testing.T) {
	input := `{
		"sessions": [
			{
				"sessionId": "s1",
				"lastActivity": "2026-08-01T10:30:00Z",
				"inputTokens": 300,
				"outputTokens": 200,
				"totalTokens": 500,
				"totalCost": 0.42,
				"durationSeconds": 1800,
				"toolUsage": {"Edit": 3, "Read": 7},
				"filesModified": ["main.go"],
				"modelBreakdowns": [
					{"modelName": "claude-sonnet", "inputTokens": 300, "outputTokens": 200}
				]
			}
		]
	}`

	records, err := ParseReport(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseReport: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	rec := records[0]
	if rec.SessionID != "s1" {
		t.Errorf("SessionID = %q, want s1", rec.SessionID)
	}
	if rec.Date() != "2026-08-01" {
		t.Errorf("Date() = %q, want 2026-08-01", rec.Date())
	}
	if rec.TokenUsage.TotalTokens != 500 {
		t.Errorf("TotalTokens = %d, want 500", rec.TokenUsage.TotalTokens)
	}
	if rec.ActiveTimeSeconds != 1800 {
		t.Errorf("ActiveTimeSeconds = %v, want 1800", rec.ActiveTimeSeconds)
	}
	if rec.ToolUsage["Edit"] != 3 {
		t.Errorf("ToolUsage[Edit] = %d, want 3", rec.ToolUsage["Edit"])
	}
	if rec.ModelUsage["claude-sonnet"] != 500 {
		t.Errorf("ModelUsage = %v, want claude-sonnet: 500", rec.ModelUsage)
	}
}

func TestParseReport_DailyFallback(t *testing.T) {
	input := `{
		"daily": [
			{"date": "2026-08-01", "totalTokens": 1000, "durationSeconds": 3600},
			{"date": "2026-08-02", "totalTokens": 2000, "durationSeconds": 7200}
		]
	}`

	records, err := ParseReport(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseReport: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].SessionID != "2026-08-01" {
		t.Errorf("daily record SessionID = %q, want the date", records[0].SessionID)
	}
	if records[0].Timestamp != "2026-08-01" {
		t.Errorf("daily record Timestamp = %q, want the date", records[0].Timestamp)
	}
}

func TestParseReport_SessionsPreferredOverDaily(t *testing.T) {
	input := `{
		"sessions": [{"sessionId": "s1", "totalTokens": 100}],
		"daily": [{"date": "2026-08-01", "totalTokens": 999}]
	}`

	records, err := ParseReport(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseReport: %v", err)
	}
	if len(records) != 1 || records[0].SessionID != "s1" {
		t.Errorf("got %+v, want the single session entry", records)
	}
}

func TestParseReport_DropsEntriesWithoutIdentity(t *testing.T) {
	input := `{"sessions": [{"totalTokens": 100}, {"sessionId": "s1"}]}`

	records, err := ParseReport(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseReport: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
}

func TestParseReport_TokenFallback(t *testing.T) {
	input := `{"sessions": [{"sessionId": "s1", "inputTokens": 60, "outputTokens": 40}]}`

	records, err := ParseReport(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseReport: %v", err)
	}
	if records[0].TokenUsage.TotalTokens != 100 {
		t.Errorf("TotalTokens = %d, want 100", records[0].TokenUsage.TotalTokens)
	}
}

func TestParseReport_InvalidJSON(t *testing.T) {
	_, err := ParseReport(strings.NewReader("not json"))
	if err == nil {
		t.Fatal("expected an error for invalid JSON")
	}
}

func TestParseRecords_SkipsMalformedLines(t *testing.T) {
	input := `{"session_id": "s1", "timestamp": "2026-08-01T10:00:00Z", "token_usage": {"total": 100}}
not json at all

{"session_id": "s2", "timestamp": "2026-08-02T10:00:00Z", "token_usage": {"total": 200}}`

	records, err := ParseRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].SessionID != "s1" || records[1].SessionID != "s2" {
		t.Errorf("got sessions %q and %q", records[0].SessionID, records[1].SessionID)
	}
}

func TestParseSummary(t *testing.T) {
	input := `{
		"timespan": {"duration_minutes": 90, "sessions": 3},
		"tokens": {"input": 1000, "output": 500, "total": 1500},
		"costs": {"total_usd": 2.5}
	}`

	summary, err := ParseSummary(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseSummary: %v", err)
	}
	if summary.Timespan.DurationMinutes != 90 {
		t.Errorf("DurationMinutes = %v, want 90", summary.Timespan.DurationMinutes)
	}
	if summary.Timespan.Sessions != 3 {
		t.Errorf("Sessions = %d, want 3", summary.Timespan.Sessions)
	}
	if summary.Tokens.TotalTokens != 1500 {
		t.Errorf("TotalTokens = %d, want 1500", summary.Tokens.TotalTokens)
	}
}

func TestDate_BareDatePassesThrough(t *testing.T) {
	rec := &UsageRecord{Timestamp: "2026-08-01"}
	if got := rec.Date(); got != "2026-08-01" {
		t.Errorf("Date() = %q, want 2026-08-01", got)
	}

	short := &UsageRecord{Timestamp: "bad"}
	if got := short.Date(); got != "bad" {
		t.Errorf("Date() = %q, want unchanged", got)
	}
}
