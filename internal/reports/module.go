// Package reports provides the report generation domain module: role
// assembly, PDF rendering and persistence of generated reports.
package reports

import (
	apphttp "roofscope_backend/internal/http"
	"roofscope_backend/internal/reports/handler"
	"roofscope_backend/internal/reports/service"
	"roofscope_backend/platform/validator"
)

// Module represents the reports domain module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates a new reports module around a wired service pipeline.
func NewModule(svc *service.Service, val *validator.Validator) *Module {
	return &Module{handler: handler.New(svc, val)}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "reports"
}

// RegisterRoutes registers the module's routes: generation on the optional-
// identity group, everything owner-scoped on the authenticated group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/reports"), ctx.Protected.Group("/reports"))
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
