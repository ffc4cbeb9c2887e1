package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists the admin/report/feedback records that live outside the
// pairing core: the core never writes here, it only reads the word blacklist
// through BlacklistCache.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store over an existing connection pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Report is a user-submitted report about a chat partner.
type Report struct {
	ID        int64     `json:"id"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// Feedback is a user-submitted product feedback entry.
type Feedback struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminRecord is the single admin configuration row.
type AdminRecord struct {
	Password           string
	MaintenanceMode    string
	MaintenanceMessage string
	// WordBlacklist is a comma-separated list of terms to mask in chat.
	WordBlacklist string
}

// MaintenanceEvent is one entry of the maintenance change history.
type MaintenanceEvent struct {
	ID        int64     `json:"id"`
	Mode      string    `json:"mode"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS reports (
		id BIGSERIAL PRIMARY KEY,
		reason TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS admin (
		id BIGSERIAL PRIMARY KEY,
		password TEXT NOT NULL,
		maintenance_mode TEXT NOT NULL DEFAULT 'off',
		maintenance_message TEXT NOT NULL DEFAULT '',
		word_blacklist TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS maintenance_history (
		id BIGSERIAL PRIMARY KEY,
		mode TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin inserts the admin record with the given password if none exists.
func (s *Store) SeedAdmin(ctx context.Context, password string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO admin (password)
		 SELECT $1 WHERE NOT EXISTS (SELECT 1 FROM admin)`, password)
	return err
}

// CreateReport stores a report.
func (s *Store) CreateReport(ctx context.Context, reason string) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO reports (reason) VALUES ($1)`, reason)
	return err
}

// Reports returns all reports, newest first.
func (s *Store) Reports(ctx context.Context) ([]Report, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, reason, created_at FROM reports ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		var r Report
		if err := rows.Scan(&r.ID, &r.Reason, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CreateFeedback stores a feedback entry.
func (s *Store) CreateFeedback(ctx context.Context, name, message string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO feedback (name, message) VALUES ($1, $2)`, name, message)
	return err
}

// ListFeedback returns all feedback, newest first.
func (s *Store) ListFeedback(ctx context.Context) ([]Feedback, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, message, created_at FROM feedback ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Feedback
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.Name, &f.Message, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Admin returns the admin record, or nil when none has been seeded.
func (s *Store) Admin(ctx context.Context) (*AdminRecord, error) {
	var a AdminRecord
	err := s.pool.QueryRow(ctx,
		`SELECT password, maintenance_mode, maintenance_message, word_blacklist
		 FROM admin ORDER BY id LIMIT 1`).
		Scan(&a.Password, &a.MaintenanceMode, &a.MaintenanceMessage, &a.WordBlacklist)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateMaintenance sets the maintenance flags and appends a history row.
func (s *Store) UpdateMaintenance(ctx context.Context, mode, message string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE admin SET maintenance_mode = $1, maintenance_message = $2`,
		mode, message); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO maintenance_history (mode, message) VALUES ($1, $2)`,
		mode, message); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// MaintenanceHistory returns maintenance changes, newest first.
func (s *Store) MaintenanceHistory(ctx context.Context) ([]MaintenanceEvent, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, mode, message, created_at FROM maintenance_history ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MaintenanceEvent
	for rows.Next() {
		var m MaintenanceEvent
		if err := rows.Scan(&m.ID, &m.Mode, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// UpdateWordBlacklist replaces the stored comma-separated blacklist.
func (s *Store) UpdateWordBlacklist(ctx context.Context, list string) error {
	_, err := s.pool.Exec(ctx, `UPDATE admin SET word_blacklist = $1`, list)
	return err
}

// Ping checks database reachability for the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
