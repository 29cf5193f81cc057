package store

import (
	"database/sql"
	"time"
)

// CreateSnapshot inserts a new snapshot and returns its ID.
func (db *DB) CreateSnapshot(timeframe, version string) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO snapshots (taken_at, timeframe, version) VALUES (?, ?, ?)",
		time.Now().UTC().Format(time.RFC3339), timeframe, version,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetSnapshotN returns the Nth most recent snapshot (1 = latest, 2 =
// previous, ...), or nil if it does not exist.
func (db *DB) GetSnapshotN(n int) (*Snapshot, error) {
	row := db.conn.QueryRow(
		"SELECT id, taken_at, timeframe, version FROM snapshots ORDER BY id DESC LIMIT 1 OFFSET ?",
		n-1,
	)
	return scanSnapshot(row)
}

func scanSnapshot(row *sql.Row) (*Snapshot, error) {
	var s Snapshot
	var takenAt string
	err := row.Scan(&s.ID, &takenAt, &s.Timeframe, &s.Version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &s, nil
}

// InsertMetric stores a named aggregate value for a snapshot.
func (db *DB) InsertMetric(snapshotID int64, name string, value float64) error {
	_, err := db.conn.Exec(
		"INSERT INTO snapshot_metrics (snapshot_id, metric_name, metric_value) VALUES (?, ?, ?)",
		snapshotID, name, value,
	)
	return err
}

// GetMetrics returns all aggregate metrics for a snapshot keyed by name.
func (db *DB) GetMetrics(snapshotID int64) (map[string]float64, error) {
	rows, err := db.conn.Query(
		"SELECT metric_name, metric_value FROM snapshot_metrics WHERE snapshot_id = ?",
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	metrics := make(map[string]float64)
	for rows.Next() {
		var name string
		var value float64
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		metrics[name] = value
	}
	return metrics, rows.Err()
}

// InsertDailyMetric stores one per-period row for a snapshot.
func (db *DB) InsertDailyMetric(m *DailyMetric) error {
	_, err := db.conn.Exec(
		`INSERT INTO daily_metrics (snapshot_id, date, tokens, time_hours, productivity, cost)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.SnapshotID, m.Date, m.Tokens, m.TimeHours, m.Productivity, m.Cost,
	)
	return err
}

// GetDailyMetrics returns the per-period rows for a snapshot ordered by date.
func (db *DB) GetDailyMetrics(snapshotID int64) ([]DailyMetric, error) {
	rows, err := db.conn.Query(
		`SELECT snapshot_id, date, tokens, time_hours, productivity, cost
		 FROM daily_metrics WHERE snapshot_id = ? ORDER BY date`,
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var metrics []DailyMetric
	for rows.Next() {
		var m DailyMetric
		if err := rows.Scan(&m.SnapshotID, &m.Date, &m.Tokens, &m.TimeHours, &m.Productivity, &m.Cost); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}
