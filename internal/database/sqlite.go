// Package database provides SQLite implementation of the Store interface.
package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tshehlatshego/checkmate/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Migrate runs database migrations.
func (s *SQLiteStore) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS fact_checks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			claim TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			verdict TEXT,
			credibility INTEGER,
			analysis TEXT,
			sources TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreatePending inserts a new fact-check row with only the claim set.
func (s *SQLiteStore) CreatePending(ctx context.Context, claim string) (int64, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO fact_checks (claim, status, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		claim, models.StatusPending, now, now,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Complete updates a pending row with the final verdict fields.
func (s *SQLiteStore) Complete(ctx context.Context, id int64, verdict models.Verdict, analysis string, credibility int, sources []models.Source) error {
	sourcesJSON, err := json.Marshal(sources)
	if err != nil {
		return fmt.Errorf("failed to serialize sources: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE fact_checks
		SET status = ?, verdict = ?, analysis = ?, credibility = ?, sources = ?, updated_at = ?
		WHERE id = ?`,
		models.StatusCompleted, verdict, analysis, credibility, string(sourcesJSON), time.Now().UTC(), id,
	)
	return err
}

// GetFactCheck retrieves a row by id.
func (s *SQLiteStore) GetFactCheck(ctx context.Context, id int64) (*models.FactCheck, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, claim, status, verdict, credibility, analysis, sources, created_at, updated_at
		FROM fact_checks WHERE id = ?`, id)

	fc, err := scanFactCheck(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// ListFactChecks returns rows newest-first, optionally filtered by status.
func (s *SQLiteStore) ListFactChecks(ctx context.Context, status models.CheckStatus, limit, offset int) ([]*models.FactCheck, error) {
	query := `
		SELECT id, claim, status, verdict, credibility, analysis, sources, created_at, updated_at
		FROM fact_checks`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY id DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checks []*models.FactCheck
	for rows.Next() {
		fc, err := scanFactCheck(rows.Scan)
		if err != nil {
			return nil, err
		}
		checks = append(checks, fc)
	}
	return checks, rows.Err()
}

func scanFactCheck(scan func(...interface{}) error) (*models.FactCheck, error) {
	var fc models.FactCheck
	var verdict, analysis, sourcesJSON sql.NullString
	var credibility sql.NullInt64

	err := scan(&fc.ID, &fc.Claim, &fc.Status, &verdict, &credibility,
		&analysis, &sourcesJSON, &fc.CreatedAt, &fc.UpdatedAt)
	if err != nil {
		return nil, err
	}

	fc.Verdict = models.Verdict(verdict.String)
	fc.Credibility = int(credibility.Int64)
	fc.Analysis = analysis.String
	if sourcesJSON.Valid && sourcesJSON.String != "" {
		json.Unmarshal([]byte(sourcesJSON.String), &fc.Sources)
	}
	return &fc, nil
}
