// Package catalog provides the product and category domain module.
package catalog

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"tradegate_backend/internal/catalog/handler"
	"tradegate_backend/internal/catalog/repository"
	"tradegate_backend/internal/catalog/service"
	apphttp "tradegate_backend/internal/http"
	"tradegate_backend/platform/logger"
	"tradegate_backend/platform/validator"
)

// Module represents the catalog domain module.
type Module struct {
	handler       *handler.Handler
	publicHandler *handler.PublicHandler
	service       *service.Service
}

// NewModule creates a new catalog module with all dependencies wired.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo)

	return &Module{
		handler:       handler.New(svc, val, log),
		publicHandler: handler.NewPublicHandler(svc, val, log),
		service:       svc,
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the service layer for other modules.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.publicHandler.RegisterRoutes(ctx.V1)
	m.handler.RegisterRoutes(ctx.Admin)
}

var _ apphttp.Module = (*Module)(nil)
