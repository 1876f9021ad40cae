// Package quotes provides the quote request domain module.
package quotes

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	catalogservice "tradegate_backend/internal/catalog/service"
	"tradegate_backend/internal/events"
	apphttp "tradegate_backend/internal/http"
	"tradegate_backend/internal/quotes/handler"
	"tradegate_backend/internal/quotes/repository"
	"tradegate_backend/internal/quotes/service"
	"tradegate_backend/platform/logger"
	"tradegate_backend/platform/validator"
)

// catalogAdapter narrows the catalog service to what the quotes service
// needs, keeping the domain packages decoupled.
type catalogAdapter struct {
	svc *catalogservice.Service
}

func (a catalogAdapter) ProductName(ctx context.Context, id uuid.UUID) (string, error) {
	product, err := a.svc.GetProduct(ctx, id)
	if err != nil {
		return "", err
	}
	return product.Name, nil
}

// Module represents the quotes domain module.
type Module struct {
	handler       *handler.Handler
	publicHandler *handler.PublicHandler
	service       *service.Service
}

// NewModule creates a new quotes module with all dependencies wired.
func NewModule(pool *pgxpool.Pool, catalog *catalogservice.Service, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, catalogAdapter{svc: catalog})
	svc.SetEventBus(bus)

	return &Module{
		handler:       handler.New(svc, val, log),
		publicHandler: handler.NewPublicHandler(svc, val, log),
		service:       svc,
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "quotes"
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	public := ctx.V1.Group("/quotes")
	public.Use(ctx.SubmissionRateLimiter.RateLimit())
	m.publicHandler.RegisterRoutes(public)

	m.handler.RegisterRoutes(ctx.Admin.Group("/quotes"))
}

var _ apphttp.Module = (*Module)(nil)
