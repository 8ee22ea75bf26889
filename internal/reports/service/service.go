// Package service orchestrates the report pipeline: estimate, optional AI
// analysis, role assembly, layout, PDF rendering, and persistence.
package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"roofscope_backend/internal/documents"
	estimateservice "roofscope_backend/internal/estimate/service"
	estimatetransport "roofscope_backend/internal/estimate/transport"
	"roofscope_backend/internal/i18n"
	"roofscope_backend/internal/render"
	"roofscope_backend/internal/reports/assembler"
	"roofscope_backend/internal/reports/transport"
	"roofscope_backend/platform/apperr"
	"roofscope_backend/platform/logger"
)

// Analyzer produces an AI payload for a project. Nil disables analysis.
type Analyzer interface {
	Analyze(ctx context.Context, input transport.ProjectInput, photos [][]byte) (*transport.AIReportPayload, error)
}

// Service runs the report generation pipeline end to end.
type Service struct {
	estimator  *estimateservice.Service
	analyzer   Analyzer
	docs       *documents.Service
	log        *logger.Logger
	appBaseURL string
}

// New creates the reports service. analyzer may be nil when AI analysis is
// not configured; docs may be nil only in tests that stop before persistence.
func New(estimator *estimateservice.Service, analyzer Analyzer, docs *documents.Service, appBaseURL string, log *logger.Logger) *Service {
	return &Service{
		estimator:  estimator,
		analyzer:   analyzer,
		docs:       docs,
		log:        log,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
	}
}

// Generate runs the full pipeline. ownerID nil means the caller is anonymous:
// the document is still generated and returned, persistence is skipped.
func (s *Service) Generate(ctx context.Context, ownerID *uuid.UUID, req transport.GenerateReportRequest) (*transport.GenerateReportResponse, error) {
	input := req.Project
	lang := i18n.Normalize(input.PreferredLanguage)
	currency := input.PreferredCurrency
	if currency == "" {
		currency = "USD"
	}

	breakdown, err := s.estimator.Estimate(ctx, estimatetransport.EstimateRequest{
		ProjectType:  input.ProjectType,
		AreaSqFt:     input.AreaSqFt,
		MaterialTier: input.MaterialTier,
		Location:     input.Location,
		Timeline:     input.Timeline,
	})
	if err != nil {
		return nil, err
	}

	payload := s.resolvePayload(ctx, input, req.AI)

	assembled, err := assembler.Assemble(assembler.Input{
		Project:  input,
		Estimate: breakdown,
		AI:       payload,
		Language: lang,
		Currency: currency,
	})
	if err != nil {
		return nil, err
	}

	reportID := uuid.New()
	generatedAt := time.Now().UTC()

	doc := buildDoc(assembled, s.viewURL(reportID), generatedAt)
	layouted := render.Layout(doc, render.DefaultGeometry())
	pdf, err := render.Render(layouted, render.Options{
		FooterText:           fmt.Sprintf("RoofScope · %s", generatedAt.Format("2006-01-02")),
		ImageUnavailableText: i18n.Text("image_unavailable", lang),
	})
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("roofing-report-%s-%s.pdf", input.UserRole, generatedAt.Format("20060102-150405"))

	docID, err := s.docs.Save(ctx, ownerID, documents.Generated{
		ID:          reportID,
		FileName:    fileName,
		PDF:         pdf,
		ProjectType: input.ProjectType,
		GeneratedAt: generatedAt,
	}, buildMetadata(input, breakdown, payload, reportID))
	if err != nil {
		return nil, err
	}

	s.log.ReportGenerated(input.UserRole, input.ProjectType, layouted.PageCount(), len(pdf), docID != nil)

	return &transport.GenerateReportResponse{
		DocumentID:  docID,
		FileName:    fileName,
		FileSize:    int64(len(pdf)),
		PageCount:   layouted.PageCount(),
		GeneratedAt: generatedAt,
		Persisted:   docID != nil,
		Estimate:    breakdown,
		PDFBase64:   base64.StdEncoding.EncodeToString(pdf),
	}, nil
}

// resolvePayload prefers a pre-fetched payload from the request, otherwise
// asks the analyzer. Analysis failure is logged and the pipeline proceeds on
// form-derived fallbacks.
func (s *Service) resolvePayload(ctx context.Context, input transport.ProjectInput, prefetched *transport.AIReportPayload) *transport.AIReportPayload {
	if prefetched != nil {
		return prefetched
	}
	if s.analyzer == nil {
		return nil
	}

	payload, err := s.analyzer.Analyze(ctx, input, assembler.DecodePhotos(input.Photos))
	if err != nil {
		s.log.Warn("ai_analysis_skipped", "role", input.UserRole, "error", err.Error())
		return nil
	}
	return payload
}

// Get returns the persisted record metadata without the blob.
func (s *Service) Get(ctx context.Context, id, ownerID uuid.UUID) (*transport.ReportDetail, error) {
	rec, err := s.ownedRecord(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return &transport.ReportDetail{
		ID:          rec.ID,
		FileName:    rec.FileName,
		FileSize:    rec.FileSize,
		ProjectType: rec.ProjectType,
		GeneratedAt: rec.GeneratedAt,
		Metadata:    rec.Metadata,
	}, nil
}

// Download returns the decoded PDF bytes and file name for a record.
func (s *Service) Download(ctx context.Context, id, ownerID uuid.UUID) (string, []byte, error) {
	rec, err := s.ownedRecord(ctx, id, ownerID)
	if err != nil {
		return "", nil, err
	}
	pdf, err := s.docs.DownloadBytes(rec)
	if err != nil {
		return "", nil, err
	}
	return rec.FileName, pdf, nil
}

// List returns the owner's reports.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, page, pageSize int) (*transport.ListReportsResponse, error) {
	result, err := s.docs.List(ctx, ownerID, page, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]transport.ReportSummary, 0, len(result.Items))
	for _, rec := range result.Items {
		items = append(items, transport.ReportSummary{
			ID:          rec.ID,
			FileName:    rec.FileName,
			FileSize:    rec.FileSize,
			ProjectType: rec.ProjectType,
			GeneratedAt: rec.GeneratedAt,
		})
	}
	return &transport.ListReportsResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}, nil
}

// Delete removes one of the owner's reports.
func (s *Service) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return s.docs.Delete(ctx, id, ownerID)
}

func (s *Service) ownedRecord(ctx context.Context, id, ownerID uuid.UUID) (*documents.Record, error) {
	rec, err := s.docs.Retrieve(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.OwnerID != ownerID {
		return nil, apperr.NotFound("report not found")
	}
	return rec, nil
}

func (s *Service) viewURL(id uuid.UUID) string {
	if s.appBaseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/api/v1/reports/%s/view", s.appBaseURL, id)
}

// buildMetadata assembles the persisted record metadata: raw form input, the
// verbatim AI response when one was supplied, and the derived project and
// estimate summaries.
func buildMetadata(input transport.ProjectInput, breakdown estimatetransport.CostBreakdown, ai *transport.AIReportPayload, reportID uuid.UUID) map[string]any {
	meta := map[string]any{
		"formInputData": map[string]any{
			"userRole":     input.UserRole,
			"projectType":  input.ProjectType,
			"areaSqFt":     input.AreaSqFt,
			"materialTier": input.MaterialTier,
			"location":     input.Location,
			"timeline":     input.Timeline,
			"language":     input.PreferredLanguage,
			"currency":     input.PreferredCurrency,
		},
		"project": map[string]any{
			"id":       reportID.String(),
			"name":     input.ProjectName,
			"userRole": input.UserRole,
			"type":     input.ProjectType,
			"location": input.Location,
			"area":     input.AreaSqFt,
		},
		"estimate": map[string]any{
			"id":            reportID.String(),
			"totalCost":     breakdown.TotalCost,
			"materialsCost": breakdown.MaterialsCost,
			"laborCost":     breakdown.LaborCost,
			"createdAt":     time.Now().UTC().Format(time.RFC3339),
		},
	}
	if ai != nil {
		raw := ai.Raw
		if len(raw) == 0 {
			// Pre-fetched payloads arrive without the verbatim response
			// bytes; re-encode the struct so the record still carries them.
			if b, err := json.Marshal(ai); err == nil {
				raw = b
			}
		}
		if len(raw) > 0 {
			meta["geminiResponse"] = raw
		}
	}
	return meta
}
