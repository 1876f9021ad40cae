// Package blog provides the blog/CMS domain module.
package blog

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"tradegate_backend/internal/blog/handler"
	"tradegate_backend/internal/blog/repository"
	"tradegate_backend/internal/blog/service"
	apphttp "tradegate_backend/internal/http"
	"tradegate_backend/platform/logger"
	"tradegate_backend/platform/validator"
)

// Module represents the blog domain module.
type Module struct {
	handler       *handler.Handler
	publicHandler *handler.PublicHandler
}

// NewModule creates a new blog module with all dependencies wired.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo)

	return &Module{
		handler:       handler.New(svc, val, log),
		publicHandler: handler.NewPublicHandler(svc, val, log),
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "blog"
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.publicHandler.RegisterRoutes(ctx.V1.Group("/posts"))
	m.handler.RegisterRoutes(ctx.Admin.Group("/posts"))
}

var _ apphttp.Module = (*Module)(nil)
