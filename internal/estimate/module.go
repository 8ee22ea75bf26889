// Package estimate provides the cost estimation domain module.
package estimate

import (
	"roofscope_backend/internal/estimate/handler"
	"roofscope_backend/internal/estimate/service"
	apphttp "roofscope_backend/internal/http"
	"roofscope_backend/platform/validator"
)

// Module represents the estimate domain module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates a new estimate module with all dependencies wired.
// The price source may be static or live-feed backed.
func NewModule(prices service.PriceSource, val *validator.Validator) *Module {
	svc := service.New(prices)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "estimate"
}

// Service returns the service layer for use by the reports pipeline.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/estimates"))
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
