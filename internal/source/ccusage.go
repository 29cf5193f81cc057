package source

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// ccusageReport mirrors the JSON shape emitted by ccusage-style cost
// accounting commands with --json. Session and daily reports carry the same
// per-entry fields under different top-level keys.
type ccusageReport struct {
	Sessions []ccusageEntry `json:"sessions"`
	Daily    []ccusageEntry `json:"daily"`
}

type ccusageEntry struct {
	SessionID      string           `json:"sessionId"`
	Date           string           `json:"date"`
	LastActivity   string           `json:"lastActivity"`
	InputTokens    int64            `json:"inputTokens"`
	OutputTokens   int64            `json:"outputTokens"`
	TotalTokens    int64            `json:"totalTokens"`
	TotalCost      float64          `json:"totalCost"`
	DurationSec    float64          `json:"durationSeconds"`
	ToolUsage      map[string]int   `json:"toolUsage"`
	FilesModified  []string         `json:"filesModified"`
	ModelBreakdown []modelBreakdown `json:"modelBreakdowns"`
}

type modelBreakdown struct {
	ModelName    string `json:"modelName"`
	InputTokens  int64  `json:"inputTokens"`
	OutputTokens int64  `json:"outputTokens"`
}

// ParseReport decodes a ccusage-style JSON report into usage records.
// Session entries are preferred; daily entries are used when the report
// contains no sessions. Entries that carry neither a session ID nor a date
// are dropped.
func ParseReport(r io.Reader) ([]*UsageRecord, error) {
	var report ccusageReport
	if err := json.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("decoding usage report: %w", err)
	}

	entries := report.Sessions
	if len(entries) == 0 {
		entries = report.Daily
	}

	records := make([]*UsageRecord, 0, len(entries))
	for _, e := range entries {
		rec := entryToRecord(e)
		if rec == nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// entryToRecord converts one report entry to a UsageRecord, or nil when the
// entry has no usable identity.
func entryToRecord(e ccusageEntry) *UsageRecord {
	id := e.SessionID
	ts := e.LastActivity
	if id == "" {
		// Daily rollups identify by date instead of session.
		id = e.Date
		ts = e.Date
	}
	if id == "" {
		return nil
	}

	total := e.TotalTokens
	if total == 0 {
		total = e.InputTokens + e.OutputTokens
	}

	rec := &UsageRecord{
		SessionID:         id,
		Timestamp:         ts,
		ActiveTimeSeconds: e.DurationSec,
		TokenUsage: TokenUsage{
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			TotalTokens:  total,
		},
		ToolUsage:     e.ToolUsage,
		FilesModified: e.FilesModified,
		CostUSD:       e.TotalCost,
	}

	if len(e.ModelBreakdown) > 0 {
		rec.ModelUsage = make(map[string]int64, len(e.ModelBreakdown))
		for _, mb := range e.ModelBreakdown {
			if mb.ModelName == "" {
				continue
			}
			rec.ModelUsage[mb.ModelName] += mb.InputTokens + mb.OutputTokens
		}
	}

	return rec
}

// ParseRecords decodes a JSONL stream with one UsageRecord per line.
// Blank lines and lines that fail to decode are skipped; a malformed line
// never aborts the batch.
func ParseRecords(r io.Reader) ([]*UsageRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var records []*UsageRecord
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec UsageRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		records = append(records, &rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	return records, nil
}

// ParseSummary decodes a single pre-aggregated summary object.
func ParseSummary(r io.Reader) (*AggregatedSummary, error) {
	var summary AggregatedSummary
	if err := json.NewDecoder(r).Decode(&summary); err != nil {
		return nil, fmt.Errorf("decoding summary: %w", err)
	}
	return &summary, nil
}

// FetchCommand runs the configured cost-accounting command (e.g.
// "ccusage session --json") and parses its stdout as a usage report.
func FetchCommand(ctx context.Context, command string, args ...string) ([]*UsageRecord, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running %s: %w", command, err)
	}
	return ParseReport(&stdout)
}
