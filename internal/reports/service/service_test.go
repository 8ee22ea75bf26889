package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"roofscope_backend/internal/documents"
	estimateservice "roofscope_backend/internal/estimate/service"
	estimatetransport "roofscope_backend/internal/estimate/transport"
	"roofscope_backend/internal/reports/transport"
	"roofscope_backend/platform/apperr"
	"roofscope_backend/platform/logger"
)

func testService() *Service {
	log := logger.New("development")
	docs := documents.NewService(nil, nil, log)
	estimator := estimateservice.New(estimateservice.StaticSource{})
	return New(estimator, nil, docs, "https://roofscope.example.com", log)
}

func baseRequest(role string) transport.GenerateReportRequest {
	return transport.GenerateReportRequest{
		Project: transport.ProjectInput{
			UserRole:     role,
			ProjectName:  "Maple Street Re-roof",
			ClientName:   "Jordan Avery",
			ProjectType:  "residential",
			AreaSqFt:     1200,
			MaterialTier: "standard",
			Location:     "Austin, TX",
			Timeline:     "standard",
		},
	}
}

func TestGenerate_AnonymousStillGetsDocument(t *testing.T) {
	svc := testService()

	resp, err := svc.Generate(context.Background(), nil, baseRequest(transport.RoleHomeowner))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if resp.Persisted {
		t.Error("anonymous generation must not be persisted")
	}
	if resp.DocumentID != nil {
		t.Errorf("DocumentID = %v, want nil", resp.DocumentID)
	}

	pdf, err := base64.StdEncoding.DecodeString(resp.PDFBase64)
	if err != nil {
		t.Fatalf("PDFBase64 did not decode: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Error("decoded payload is not a PDF")
	}
	if int64(len(pdf)) != resp.FileSize {
		t.Errorf("FileSize = %d, want %d", resp.FileSize, len(pdf))
	}
	if resp.PageCount < 2 {
		t.Errorf("PageCount = %d, want at least 2 (content + branding)", resp.PageCount)
	}
}

func TestGenerate_FileNameCarriesRole(t *testing.T) {
	svc := testService()

	resp, err := svc.Generate(context.Background(), nil, baseRequest(transport.RoleInspector))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.HasPrefix(resp.FileName, "roofing-report-inspector-") {
		t.Errorf("FileName = %q, want roofing-report-inspector-* prefix", resp.FileName)
	}
	if !strings.HasSuffix(resp.FileName, ".pdf") {
		t.Errorf("FileName = %q, want .pdf suffix", resp.FileName)
	}
}

func TestGenerate_EstimateMatchesScenario(t *testing.T) {
	svc := testService()

	resp, err := svc.Generate(context.Background(), nil, baseRequest(transport.RoleContractor))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	est := resp.Estimate
	if est.RegionMultiplier != 1.15 {
		t.Errorf("RegionMultiplier = %v, want 1.15", est.RegionMultiplier)
	}
	if est.MaterialsCost != 117300 {
		t.Errorf("MaterialsCost = %d, want 117300", est.MaterialsCost)
	}
	sum := est.MaterialsCost + est.LaborCost + est.PermitsCost + est.ContingencyCost
	if est.TotalCost != sum {
		t.Errorf("TotalCost = %d, want exact component sum %d", est.TotalCost, sum)
	}
}

func TestBuildMetadata_PrefetchedPayloadIsRecorded(t *testing.T) {
	req := baseRequest(transport.RoleHomeowner)
	payload := &transport.AIReportPayload{Summary: "Shingles show moderate granule loss."}

	meta := buildMetadata(req.Project, estimatetransport.CostBreakdown{}, payload, uuid.New())

	raw, ok := meta["geminiResponse"].(json.RawMessage)
	if !ok {
		t.Fatalf("geminiResponse missing from metadata: %#v", meta["geminiResponse"])
	}
	var decoded transport.AIReportPayload
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("geminiResponse did not decode: %v", err)
	}
	if decoded.Summary != payload.Summary {
		t.Errorf("Summary = %q, want %q", decoded.Summary, payload.Summary)
	}
}

func TestBuildMetadata_VerbatimResponseBytesWin(t *testing.T) {
	req := baseRequest(transport.RoleHomeowner)
	payload := &transport.AIReportPayload{
		Summary: "ignored",
		Raw:     json.RawMessage(`{"summary":"verbatim"}`),
	}

	meta := buildMetadata(req.Project, estimatetransport.CostBreakdown{}, payload, uuid.New())

	raw, ok := meta["geminiResponse"].(json.RawMessage)
	if !ok {
		t.Fatal("geminiResponse missing from metadata")
	}
	if string(raw) != `{"summary":"verbatim"}` {
		t.Errorf("geminiResponse = %s, want the verbatim response bytes", raw)
	}
}

func TestGenerate_UnknownRoleRejected(t *testing.T) {
	svc := testService()

	_, err := svc.Generate(context.Background(), nil, baseRequest("realtor"))
	if err == nil {
		t.Fatal("Generate() with unknown role should fail")
	}
	if !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("error kind = %v, want validation", apperr.GetKind(err))
	}
}

func TestGenerate_UnknownProjectTypeRejected(t *testing.T) {
	svc := testService()

	req := baseRequest(transport.RoleHomeowner)
	req.Project.ProjectType = "skyscraper"

	_, err := svc.Generate(context.Background(), nil, req)
	if err == nil {
		t.Fatal("Generate() with unknown project type should fail")
	}
	if !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("error kind = %v, want validation", apperr.GetKind(err))
	}
}
