// Package documents is the persistence bridge for generated report PDFs:
// base64-encoded blob plus structured metadata in Postgres, with an archive
// copy in object storage.
package documents

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roofscope_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Record is the database model for a persisted report document.
type Record struct {
	ID          uuid.UUID `db:"id"`
	OwnerID     uuid.UUID `db:"owner_id"`
	FileName    string    `db:"file_name"`
	FileSize    int64     `db:"file_size"`
	PDFBase64   string    `db:"pdf_base64"`
	GeneratedAt time.Time `db:"generated_at"`
	ProjectType string    `db:"project_type"`
	Metadata    []byte    `db:"metadata"`
	CreatedAt   time.Time `db:"created_at"`
}

// ListParams controls the owner-scoped report listing.
type ListParams struct {
	OwnerID  uuid.UUID
	Page     int
	PageSize int
}

// ListResult is the paginated listing outcome.
type ListResult struct {
	Items      []Record
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

const reportNotFoundMsg = "report not found"

// Repository provides database operations for report documents.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new documents repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts one report record.
func (r *Repository) Create(ctx context.Context, rec *Record) error {
	query := `
		INSERT INTO reports (
			id, owner_id, file_name, file_size, pdf_base64,
			generated_at, project_type, metadata, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if _, err := r.pool.Exec(ctx, query,
		rec.ID, rec.OwnerID, rec.FileName, rec.FileSize, rec.PDFBase64,
		rec.GeneratedAt, rec.ProjectType, rec.Metadata, rec.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	return nil
}

// GetByID fetches one report record.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	query := `
		SELECT id, owner_id, file_name, file_size, pdf_base64,
		       generated_at, project_type, metadata, created_at
		FROM reports
		WHERE id = $1`

	var rec Record
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.OwnerID, &rec.FileName, &rec.FileSize, &rec.PDFBase64,
		&rec.GeneratedAt, &rec.ProjectType, &rec.Metadata, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(reportNotFoundMsg)
		}
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}
	return &rec, nil
}

// ListByOwner returns the owner's reports, newest first, without blobs.
func (r *Repository) ListByOwner(ctx context.Context, params ListParams) (*ListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM reports WHERE owner_id = $1`
	if err := r.pool.QueryRow(ctx, countQuery, params.OwnerID).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}

	query := `
		SELECT id, owner_id, file_name, file_size, '',
		       generated_at, project_type, metadata, created_at
		FROM reports
		WHERE owner_id = $1
		ORDER BY generated_at DESC
		LIMIT $2 OFFSET $3`

	offset := (params.Page - 1) * params.PageSize
	rows, err := r.pool.Query(ctx, query, params.OwnerID, params.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	items := make([]Record, 0, params.PageSize)
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.OwnerID, &rec.FileName, &rec.FileSize, &rec.PDFBase64,
			&rec.GeneratedAt, &rec.ProjectType, &rec.Metadata, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read report rows: %w", err)
	}

	totalPages := (total + params.PageSize - 1) / params.PageSize
	return &ListResult{
		Items:      items,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	}, nil
}

// Delete removes a report owned by the given user. Deleting someone else's
// report reports not-found rather than leaking its existence.
func (r *Repository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reports WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(reportNotFoundMsg)
	}
	return nil
}
