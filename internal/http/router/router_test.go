package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"roofscope_backend/internal/config"
	"roofscope_backend/internal/documents"
	"roofscope_backend/internal/estimate"
	estimateservice "roofscope_backend/internal/estimate/service"
	apphttp "roofscope_backend/internal/http"
	"roofscope_backend/internal/reports"
	reportservice "roofscope_backend/internal/reports/service"
	"roofscope_backend/internal/reports/transport"
	"roofscope_backend/platform/logger"
	"roofscope_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

func testEngine() *gin.Engine {
	cfg := &config.Config{
		Env:             "test",
		JWTAccessSecret: "test-secret",
		CORSAllowAll:    true,
	}
	log := logger.New(cfg.Env)
	val := validator.New()

	docs := documents.NewService(nil, nil, log)
	estimateModule := estimate.NewModule(estimateservice.StaticSource{}, val)
	reportsService := reportservice.New(estimateModule.Service(), nil, docs, "", log)
	reportsModule := reports.NewModule(reportsService, val)

	return New(cfg, log, nil, []apphttp.Module{estimateModule, reportsModule})
}

func TestRouter_OwnerRoutesRejectAnonymousCallers(t *testing.T) {
	engine := testEngine()

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/reports"},
		{http.MethodGet, "/api/v1/reports/4c2f7a66-9f5e-4f92-a9b1-0e9a2a1c3d4e"},
		{http.MethodGet, "/api/v1/reports/4c2f7a66-9f5e-4f92-a9b1-0e9a2a1c3d4e/download"},
		{http.MethodGet, "/api/v1/reports/4c2f7a66-9f5e-4f92-a9b1-0e9a2a1c3d4e/view"},
		{http.MethodDelete, "/api/v1/reports/4c2f7a66-9f5e-4f92-a9b1-0e9a2a1c3d4e"},
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.path, nil)
		engine.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status = %d, want %d", tc.method, tc.path, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestRouter_ReportGenerationStaysOpenToAnonymous(t *testing.T) {
	engine := testEngine()

	body, err := json.Marshal(transport.GenerateReportRequest{
		Project: transport.ProjectInput{
			UserRole:     transport.RoleHomeowner,
			ProjectType:  "residential",
			AreaSqFt:     1200,
			MaterialTier: "standard",
			Location:     "Austin, TX",
			Timeline:     "standard",
		},
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("anonymous generation: status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp transport.GenerateReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Persisted {
		t.Error("anonymous generation must not persist a record")
	}
	if resp.PDFBase64 == "" {
		t.Error("anonymous generation must still return the document")
	}
}
