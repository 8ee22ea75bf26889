package documents

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"roofscope_backend/platform/apperr"
	"roofscope_backend/platform/logger"

	"github.com/google/uuid"
)

func testService() *Service {
	return NewService(nil, nil, logger.New("development"))
}

func TestSave_NoOwnerSkipsPersistence(t *testing.T) {
	svc := testService()

	id, err := svc.Save(context.Background(), nil, Generated{
		FileName:    "report.pdf",
		PDF:         []byte("%PDF-1.7 fake"),
		ProjectType: "residential",
		GeneratedAt: time.Now(),
	}, map[string]any{"formInputData": nil})
	if err != nil {
		t.Fatalf("expected silent skip to succeed, got %v", err)
	}
	if id != nil {
		t.Fatalf("expected no record id without an owner, got %v", id)
	}
}

// captureArchiver records archive calls for assertions.
type captureArchiver struct {
	stored  []string
	deleted []string
}

func (c *captureArchiver) StoreReportPDF(_ context.Context, objectName string, _ []byte) error {
	c.stored = append(c.stored, objectName)
	return nil
}

func (c *captureArchiver) DeleteReportPDF(_ context.Context, objectName string) error {
	c.deleted = append(c.deleted, objectName)
	return nil
}

func TestDropArchived_RemovesObjectCopy(t *testing.T) {
	arch := &captureArchiver{}
	svc := NewService(nil, arch, logger.New("development"))

	ownerID := uuid.New()
	id := uuid.New()
	svc.dropArchived(context.Background(), ownerID, id)

	want := ownerID.String() + "/" + id.String() + ".pdf"
	if len(arch.deleted) != 1 || arch.deleted[0] != want {
		t.Fatalf("expected archive delete of %q, got %v", want, arch.deleted)
	}
}

func TestDropArchived_NilArchiveIsNoOp(t *testing.T) {
	svc := testService()
	svc.dropArchived(context.Background(), uuid.New(), uuid.New())
}

func TestObjectName_MatchesStoreAndDeleteKeys(t *testing.T) {
	ownerID := uuid.New()
	id := uuid.New()
	if got, want := objectName(ownerID, id), ownerID.String()+"/"+id.String()+".pdf"; got != want {
		t.Fatalf("objectName = %q, want %q", got, want)
	}
}

func TestDownloadBytes_RoundTrip(t *testing.T) {
	svc := testService()
	original := []byte("%PDF-1.7 content bytes \x00\x01\x02")

	rec := &Record{PDFBase64: base64.StdEncoding.EncodeToString(original)}
	decoded, err := svc.DownloadBytes(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(decoded) != string(original) {
		t.Fatalf("round trip mismatch")
	}
}

func TestDownloadBytes_LegacyMetadataKeyFallback(t *testing.T) {
	svc := testService()
	original := []byte("legacy pdf bytes")
	encoded := base64.StdEncoding.EncodeToString(original)

	rec := &Record{
		PDFBase64: "",
		Metadata:  []byte(`{"pdfData":"` + encoded + `","projectType":"commercial"}`),
	}
	decoded, err := svc.DownloadBytes(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(decoded) != string(original) {
		t.Fatalf("expected legacy payload decoded")
	}
}

func TestDownloadBytes_MissingPayloadIsGone(t *testing.T) {
	svc := testService()

	_, err := svc.DownloadBytes(&Record{PDFBase64: "", Metadata: []byte(`{}`)})
	if err == nil {
		t.Fatalf("expected error for missing payload")
	}
	if apperr.GetKind(err) != apperr.KindUnavailable {
		t.Fatalf("expected unavailable kind, got %v", apperr.GetKind(err))
	}
}

func TestDownloadBytes_CorruptPayloadIsInternal(t *testing.T) {
	svc := testService()

	_, err := svc.DownloadBytes(&Record{PDFBase64: "%%% not base64 %%%"})
	if err == nil {
		t.Fatalf("expected error for corrupt payload")
	}
	if apperr.GetKind(err) != apperr.KindInternal {
		t.Fatalf("expected internal kind, got %v", apperr.GetKind(err))
	}
}
