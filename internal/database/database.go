// Package database provides the data access layer.
package database

import (
	"context"

	"github.com/tshehlatshego/checkmate/internal/models"
)

// Store defines the interface for fact-check persistence.
//
// Writes are two-phase: CreatePending inserts the claim and returns its id,
// Complete fills in the verdict fields later. The two writes are deliberately
// not wrapped in one transaction; a crash in between leaves a pending row.
type Store interface {
	// CreatePending inserts a new fact-check row with only the claim set.
	CreatePending(ctx context.Context, claim string) (int64, error)

	// Complete updates a pending row with the final verdict fields.
	Complete(ctx context.Context, id int64, verdict models.Verdict, analysis string, credibility int, sources []models.Source) error

	// GetFactCheck retrieves a row by id, or nil if it does not exist.
	GetFactCheck(ctx context.Context, id int64) (*models.FactCheck, error)

	// ListFactChecks returns rows newest-first, optionally filtered by status.
	ListFactChecks(ctx context.Context, status models.CheckStatus, limit, offset int) ([]*models.FactCheck, error)

	// Lifecycle
	Close() error
	Migrate() error
}
