package documents

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"roofscope_backend/platform/apperr"
	"roofscope_backend/platform/logger"

	"github.com/google/uuid"
)

// Archiver keeps a second copy of the PDF bytes in object storage. Both
// operations are best effort: archival never blocks delivery and a failed
// archive removal never blocks record deletion.
type Archiver interface {
	StoreReportPDF(ctx context.Context, objectName string, data []byte) error
	DeleteReportPDF(ctx context.Context, objectName string) error
}

// Generated describes one rendered document handed to Save. ID may be
// pre-assigned by the caller (the report pipeline embeds it in the rendered
// document's view link); a zero ID gets a fresh one.
type Generated struct {
	ID          uuid.UUID
	FileName    string
	PDF         []byte
	ProjectType string
	GeneratedAt time.Time
}

// Service bridges generated documents to their persisted records.
type Service struct {
	repo    *Repository
	archive Archiver
	log     *logger.Logger
}

// NewService creates the documents service. archive may be nil when object
// storage is not configured.
func NewService(repo *Repository, archive Archiver, log *logger.Logger) *Service {
	return &Service{repo: repo, archive: archive, log: log}
}

// Save persists the document for an authenticated owner. With a nil owner it
// logs and skips: the caller still gets their document, no record exists.
// Metadata nils are stripped before marshaling.
func (s *Service) Save(ctx context.Context, ownerID *uuid.UUID, doc Generated, metadata map[string]any) (*uuid.UUID, error) {
	if ownerID == nil {
		s.log.PersistenceSkipped("no authenticated owner")
		return nil, nil
	}

	metaJSON, err := json.Marshal(StripNils(metadata))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to encode report metadata", err)
	}

	recID := doc.ID
	if recID == uuid.Nil {
		recID = uuid.New()
	}

	rec := &Record{
		ID:          recID,
		OwnerID:     *ownerID,
		FileName:    doc.FileName,
		FileSize:    int64(len(doc.PDF)),
		PDFBase64:   base64.StdEncoding.EncodeToString(doc.PDF),
		GeneratedAt: doc.GeneratedAt,
		ProjectType: doc.ProjectType,
		Metadata:    metaJSON,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.log.DatabaseError("reports.create", err)
		s.log.PersistenceSkipped("database write failed")
		return nil, nil
	}

	if s.archive != nil {
		if err := s.archive.StoreReportPDF(ctx, objectName(rec.OwnerID, rec.ID), doc.PDF); err != nil {
			s.log.Warn("report_archive_skipped", "report_id", rec.ID.String(), "error", err.Error())
		}
	}

	return &rec.ID, nil
}

// Retrieve fetches a persisted record by id.
func (s *Service) Retrieve(ctx context.Context, id uuid.UUID) (*Record, error) {
	return s.repo.GetByID(ctx, id)
}

// DownloadBytes returns the decoded PDF for a record. An empty primary blob
// falls back to the metadata key "pdfData", a historical schema variant,
// before the document is reported gone.
func (s *Service) DownloadBytes(rec *Record) ([]byte, error) {
	encoded := rec.PDFBase64
	if encoded == "" {
		encoded = legacyBlob(rec.Metadata)
	}
	if encoded == "" {
		return nil, apperr.Unavailable("report file is no longer available")
	}

	pdf, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "stored report file is corrupted", err)
	}
	return pdf, nil
}

// List returns the owner's reports, newest first.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, page, pageSize int) (*ListResult, error) {
	return s.repo.ListByOwner(ctx, ListParams{OwnerID: ownerID, Page: page, PageSize: pageSize})
}

// Delete removes one of the owner's reports and its archived copy.
func (s *Service) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	s.dropArchived(ctx, ownerID, id)
	return nil
}

// dropArchived removes the object-storage copy after the record is gone.
// A failure leaves an orphaned object behind and is only logged.
func (s *Service) dropArchived(ctx context.Context, ownerID, id uuid.UUID) {
	if s.archive == nil {
		return
	}
	if err := s.archive.DeleteReportPDF(ctx, objectName(ownerID, id)); err != nil {
		s.log.Warn("report_archive_delete_skipped", "report_id", id.String(), "error", err.Error())
	}
}

// objectName is the archive key for one report's PDF copy.
func objectName(ownerID, id uuid.UUID) string {
	return fmt.Sprintf("%s/%s.pdf", ownerID, id)
}

// legacyBlob digs the base64 payload out of the metadata document for
// records written before pdf_base64 became its own column.
func legacyBlob(metadata []byte) string {
	if len(metadata) == 0 {
		return ""
	}
	var meta map[string]any
	if err := json.Unmarshal(metadata, &meta); err != nil {
		return ""
	}
	if v, ok := meta["pdfData"].(string); ok {
		return v
	}
	return ""
}
