// Package auth provides the admin authentication module.
package auth

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"tradegate_backend/internal/auth/handler"
	"tradegate_backend/internal/auth/repository"
	"tradegate_backend/internal/auth/service"
	apphttp "tradegate_backend/internal/http"
	"tradegate_backend/platform/config"
	"tradegate_backend/platform/logger"
	"tradegate_backend/platform/validator"
)

// Module represents the auth domain module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates a new auth module with all dependencies wired.
func NewModule(pool *pgxpool.Pool, cfg config.AuthConfig, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg)

	return &Module{handler: handler.New(svc, val, log)}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "auth"
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	public := ctx.V1.Group("/auth")
	public.Use(ctx.SubmissionRateLimiter.RateLimit())
	m.handler.RegisterRoutes(public)
}

var _ apphttp.Module = (*Module)(nil)
