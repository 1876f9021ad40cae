// Package contact provides the contact messaging domain module.
package contact

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"tradegate_backend/internal/contact/handler"
	"tradegate_backend/internal/contact/repository"
	"tradegate_backend/internal/contact/service"
	"tradegate_backend/internal/events"
	apphttp "tradegate_backend/internal/http"
	"tradegate_backend/platform/logger"
	"tradegate_backend/platform/validator"
)

// Module represents the contact domain module.
type Module struct {
	handler       *handler.Handler
	publicHandler *handler.PublicHandler
}

// NewModule creates a new contact module with all dependencies wired.
func NewModule(pool *pgxpool.Pool, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo)
	svc.SetEventBus(bus)

	return &Module{
		handler:       handler.New(svc, val, log),
		publicHandler: handler.NewPublicHandler(svc, val, log),
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "contact"
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	public := ctx.V1.Group("/contact")
	public.Use(ctx.SubmissionRateLimiter.RateLimit())
	m.publicHandler.RegisterRoutes(public)

	m.handler.RegisterRoutes(ctx.Admin.Group("/messages"))
}

var _ apphttp.Module = (*Module)(nil)
