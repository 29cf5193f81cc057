// Package store provides SQLite persistence for analysis snapshots, letting
// the track command compare runs over time.
package store

import "time"

// Snapshot is one point-in-time capture of an analysis run.
type Snapshot struct {
	ID        int64     `json:"id"`
	TakenAt   time.Time `json:"taken_at"`
	Timeframe string    `json:"timeframe"`
	Version   string    `json:"version"`
}

// DailyMetric is one per-period row stored with a snapshot.
type DailyMetric struct {
	SnapshotID   int64   `json:"snapshot_id"`
	Date         string  `json:"date"`
	Tokens       int64   `json:"tokens"`
	TimeHours    float64 `json:"time_hours"`
	Productivity float64 `json:"productivity"`
	Cost         float64 `json:"cost"`
}
