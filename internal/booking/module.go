// Package booking provides the booking session domain module: the pricing
// and configuration engine behind the multi-step booking flow.
package booking

import (
	"bookingtour_backend/internal/booking/handler"
	"bookingtour_backend/internal/booking/service"
	apphttp "bookingtour_backend/internal/http"
	"bookingtour_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Module represents the booking domain module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates a new booking module with all dependencies wired.
func NewModule(svc *service.Service, val *validator.Validator) *Module {
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "booking"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	var limiter gin.HandlerFunc
	if ctx.DiscountRateLimiter != nil {
		limiter = ctx.DiscountRateLimiter.Middleware()
	}
	m.handler.RegisterRoutes(ctx.V1.Group("/booking/sessions"), limiter)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
