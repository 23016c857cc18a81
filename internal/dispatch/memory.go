package dispatch

// #region imports
import (
	"database/sql"
	"fmt"
	"math"
	"time"

	_ "modernc.org/sqlite"
)

// #endregion

// #region schema

const routeSchema = `
CREATE TABLE IF NOT EXISTS route_outcomes (
	turn_id      TEXT PRIMARY KEY,
	identity     TEXT NOT NULL,
	confidence   TEXT NOT NULL,
	responder    TEXT NOT NULL,
	auto_routed  INTEGER NOT NULL,
	escalated    INTEGER NOT NULL,
	reason       TEXT,
	created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_route_outcomes_responder
ON route_outcomes(responder, escalated);
`

// #endregion

// #region open

// OpenDB opens the routing telemetry database with WAL enabled.
func OpenDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	return db, nil
}

// #endregion

// #region memory

// OutcomeRecord is one routing decision: which responder handled a turn,
// at what detected identity and confidence, and whether it escalated.
// Deliberately no query or reply text here, only routing telemetry.
type OutcomeRecord struct {
	TurnID     string    `json:"turn_id"`
	Identity   string    `json:"identity"`
	Confidence string    `json:"confidence"`
	Responder  string    `json:"responder"`
	AutoRouted bool      `json:"auto_routed"`
	Escalated  bool      `json:"escalated"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// RouteMemory persists routing outcomes in SQLite.
type RouteMemory struct {
	db *sql.DB
}

// NewRouteMemory initializes the route_outcomes table and returns a RouteMemory.
func NewRouteMemory(db *sql.DB) (*RouteMemory, error) {
	if _, err := db.Exec(routeSchema); err != nil {
		return nil, fmt.Errorf("migrate route_outcomes: %w", err)
	}
	return &RouteMemory{db: db}, nil
}

// Record persists a single routing outcome row.
func (m *RouteMemory) Record(rec OutcomeRecord) error {
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := m.db.Exec(`
		INSERT INTO route_outcomes
		(turn_id, identity, confidence, responder, auto_routed, escalated, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.TurnID, rec.Identity, rec.Confidence, rec.Responder,
		boolInt(rec.AutoRouted), boolInt(rec.Escalated), rec.Reason,
		created.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert route outcome: %w", err)
	}
	return nil
}

// EscalationRate returns the decay-weighted fraction of a responder's turns
// that escalated. Recent turns count more, with a 7-day half-life, so an
// old run of escalations fades out of the rate.
func (m *RouteMemory) EscalationRate(responderName string) (float64, error) {
	rows, err := m.db.Query(`
		SELECT escalated, created_at
		FROM route_outcomes WHERE responder = ?`, responderName)
	if err != nil {
		return 0, fmt.Errorf("escalation rate: %w", err)
	}
	defer rows.Close()

	now := time.Now()
	halfLife := 7.0 * 24.0 // hours

	var weightedSum, totalWeight float64
	for rows.Next() {
		var escalated int
		var createdAtStr string
		if err := rows.Scan(&escalated, &createdAtStr); err != nil {
			return 0, fmt.Errorf("scan escalation row: %w", err)
		}
		createdAt, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			continue
		}
		ageHours := now.Sub(createdAt).Hours()
		weight := math.Exp(-ageHours / halfLife)
		weightedSum += float64(escalated) * weight
		totalWeight += weight
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("escalation rate: %w", err)
	}
	if totalWeight == 0 {
		return 0, nil
	}
	return weightedSum / totalWeight, nil
}

// Recent returns the newest outcomes, most recent first.
func (m *RouteMemory) Recent(limit int) ([]OutcomeRecord, error) {
	rows, err := m.db.Query(`
		SELECT turn_id, identity, confidence, responder, auto_routed, escalated, reason, created_at
		FROM route_outcomes ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent outcomes: %w", err)
	}
	defer rows.Close()

	var out []OutcomeRecord
	for rows.Next() {
		var rec OutcomeRecord
		var auto, esc int
		var created string
		if err := rows.Scan(&rec.TurnID, &rec.Identity, &rec.Confidence, &rec.Responder, &auto, &esc, &rec.Reason, &created); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		rec.AutoRouted = auto != 0
		rec.Escalated = esc != 0
		if ts, perr := time.Parse(time.RFC3339, created); perr == nil {
			rec.CreatedAt = ts
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion
