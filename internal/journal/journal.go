// Package journal persists emitted snapshots to SQLite for later
// inspection. It is observability for the embedding application, not engine
// persistence: the engine still starts fresh every process.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/conscious-field/go-core/internal/engine"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS step_log (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	step_id          TEXT NOT NULL,
	source           TEXT NOT NULL,
	step_time        REAL NOT NULL,
	pulse            REAL NOT NULL,
	attention_level  REAL NOT NULL,
	echo_count       INTEGER NOT NULL,
	internal_state   REAL NOT NULL,
	external_signal  REAL NOT NULL,
	total_state      REAL NOT NULL,
	direction        REAL NOT NULL,
	delta            REAL NOT NULL,
	irregular        INTEGER NOT NULL,
	awareness        INTEGER NOT NULL,
	reason           TEXT NOT NULL,
	awareness_total  INTEGER NOT NULL,
	created_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_step_log_reason ON step_log(reason);
`

// #endregion schema

// #region types

// Entry is one journaled snapshot row.
type Entry struct {
	StepID    string
	Source    string
	Snapshot  engine.Snapshot
	CreatedAt time.Time
}

// #endregion types

// #region journal-struct

// Journal manages the step log in SQLite.
type Journal struct {
	db *sql.DB
}

// Open opens a SQLite database and runs migrations.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close closes the underlying database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// #endregion journal-struct

// #region record

// Record appends a snapshot row. source names the caller that drove the
// step ("heartbeat", "input", "simulator").
func (j *Journal) Record(source string, s engine.Snapshot) error {
	_, err := j.db.Exec(
		`INSERT INTO step_log (step_id, source, step_time, pulse, attention_level, echo_count,
		 internal_state, external_signal, total_state, direction, delta,
		 irregular, awareness, reason, awareness_total, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), source, s.Time, s.Pulse, s.AttentionLevel, s.EchoCount,
		s.InternalState, s.ExternalSignal, s.TotalState, s.Direction, s.Delta,
		boolInt(s.IrregularRhythm), boolInt(s.ActOfAwareness), string(s.Reason),
		s.AwarenessTotal, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record step: %w", err)
	}
	return nil
}

// #endregion record

// #region queries

// Recent returns the most recent entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	rows, err := j.db.Query(selectCols+` ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ByReason returns the most recent entries with the given reason.
func (j *Journal) ByReason(reason string, limit int) ([]Entry, error) {
	rows, err := j.db.Query(selectCols+` WHERE reason = ? ORDER BY id DESC LIMIT ?`, reason, limit)
	if err != nil {
		return nil, fmt.Errorf("by reason: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// CountByReason returns row counts grouped by reason.
func (j *Journal) CountByReason() (map[string]int, error) {
	rows, err := j.db.Query(`SELECT reason, COUNT(*) FROM step_log GROUP BY reason`)
	if err != nil {
		return nil, fmt.Errorf("count by reason: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var reason string
		var n int
		if err := rows.Scan(&reason, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[reason] = n
	}
	return counts, rows.Err()
}

// #endregion queries

// #region scan-helpers

const selectCols = `SELECT step_id, source, step_time, pulse, attention_level, echo_count,
 internal_state, external_signal, total_state, direction, delta,
 irregular, awareness, reason, awareness_total, created_at FROM step_log`

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var irregular, awareness int
		var reason, createdStr string

		err := rows.Scan(&e.StepID, &e.Source, &e.Snapshot.Time, &e.Snapshot.Pulse,
			&e.Snapshot.AttentionLevel, &e.Snapshot.EchoCount,
			&e.Snapshot.InternalState, &e.Snapshot.ExternalSignal, &e.Snapshot.TotalState,
			&e.Snapshot.Direction, &e.Snapshot.Delta,
			&irregular, &awareness, &reason, &e.Snapshot.AwarenessTotal, &createdStr)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		e.Snapshot.IrregularRhythm = irregular != 0
		e.Snapshot.ActOfAwareness = awareness != 0
		e.Snapshot.Reason = engine.Reason(reason)
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion scan-helpers
