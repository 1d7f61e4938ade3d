package repository

import (
	"context"
	"fmt"

	"github.com/entropass/entropass/internal/database"
	"github.com/entropass/entropass/internal/model"
)

// AuditRepository handles generation audit persistence
type AuditRepository struct {
	db *database.Postgres
}

// NewAuditRepository creates a new AuditRepository
func NewAuditRepository(db *database.Postgres) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create inserts a new generation audit entry
func (r *AuditRepository) Create(ctx context.Context, a *model.GenerationAudit) error {
	if err := validateAudit(a); err != nil {
		return err
	}

	query := `
		INSERT INTO generation_audits (id, request_id, source, letters, symbols, numbers,
		    exclude_ambiguous, min_entropy_bits, entropy_bits, secure, attempts,
		    client_ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.RequestID,
		a.Source,
		a.Letters,
		a.Symbols,
		a.Numbers,
		a.ExcludeAmbiguous,
		a.MinEntropyBits,
		a.EntropyBits,
		a.Secure,
		a.Attempts,
		a.ClientIP,
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create generation audit: %w", err)
	}
	return nil
}

func validateAudit(a *model.GenerationAudit) error {
	if a == nil {
		return fmt.Errorf("%w: nil audit", ErrInvalidInput)
	}
	if a.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidInput)
	}
	if a.Source == "" {
		return fmt.Errorf("%w: missing source", ErrInvalidInput)
	}
	if a.CreatedAt.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrInvalidInput)
	}
	return nil
}
