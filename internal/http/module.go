// Package http provides HTTP server infrastructure including the Module
// interface that all domain modules implement for route registration.
package http

import (
	"roofscope_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Module represents a bounded context that can register its HTTP routes.
// Each domain module implements this interface to encapsulate its own
// route setup, keeping the main router decoupled from specific endpoints.
type Module interface {
	// Name returns the module's identifier for logging purposes.
	Name() string
	// RegisterRoutes mounts the module's routes on the provided router group.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext provides shared dependencies for module route registration.
type RouterContext struct {
	// Engine is the root Gin engine for modules that need engine-level access.
	Engine *gin.Engine
	// V1 is the /api/v1 route group with optional identity extraction: report
	// generation is open to anonymous callers.
	V1 *gin.RouterGroup
	// Protected is the authenticated route group under /api/v1, for routes
	// that only make sense for a known owner (listing, deletion).
	Protected *gin.RouterGroup
	// Config is the JWT configuration for auth middleware (scoped access).
	Config httpkit.JWTConfig
}
