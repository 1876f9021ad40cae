// Package service implements the quote request business logic, most
// importantly the all-or-nothing submission transaction.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"tradegate_backend/internal/events"
	"tradegate_backend/internal/quotes/repository"
	"tradegate_backend/internal/quotes/transport"
	"tradegate_backend/platform/apperr"
	"tradegate_backend/platform/phone"
)

const defaultPageSize = 20

// ProductCatalog is the narrow interface the quotes service needs from the
// catalog module: resolve a product id to its current name. Implemented by
// an adapter in the module wiring.
type ProductCatalog interface {
	ProductName(ctx context.Context, id uuid.UUID) (string, error)
}

// Service provides business logic for quote requests.
type Service struct {
	repo    repository.Repository
	catalog ProductCatalog
	bus     events.Bus
}

// New creates a new quotes service.
func New(repo repository.Repository, catalog ProductCatalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// SetEventBus injects the event bus (optional; nil means no notifications).
func (s *Service) SetEventBus(bus events.Bus) {
	s.bus = bus
}

// Submit persists a quote request with its line items atomically. All
// referenced products are resolved to name snapshots first; an unknown
// product fails the whole submission with a field-level validation error
// before anything is written.
func (s *Service) Submit(ctx context.Context, req transport.SubmitQuoteRequest) (transport.SubmitQuoteResponse, error) {
	quoteID := uuid.New()

	items := make([]repository.QuoteItem, len(req.Items))
	fieldErrors := make(map[string][]string)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(5)
	for i, item := range req.Items {
		g.Go(func() error {
			name, err := s.catalog.ProductName(gctx, item.ProductID)
			if err != nil {
				if apperr.GetKind(err) == apperr.KindNotFound {
					field := fmt.Sprintf("items[%d].product_id", i)
					mu.Lock()
					fieldErrors[field] = append(fieldErrors[field], "product does not exist")
					mu.Unlock()
					return nil
				}
				return err
			}
			productID := item.ProductID
			items[i] = repository.QuoteItem{
				ID:          uuid.New(),
				QuoteID:     quoteID,
				ProductID:   &productID,
				ProductName: name,
				Quantity:    item.Quantity,
				Notes:       item.Notes,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return transport.SubmitQuoteResponse{}, err
	}
	if len(fieldErrors) > 0 {
		return transport.SubmitQuoteResponse{}, apperr.New(apperr.KindValidation, "validation failed").WithDetails(fieldErrors)
	}

	phoneNumber := req.PhoneNumber
	if phoneNumber != nil {
		normalized := phone.NormalizeE164(*phoneNumber)
		phoneNumber = &normalized
	}

	quote := repository.Quote{
		ID:            quoteID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CompanyName:   req.CompanyName,
		PhoneNumber:   phoneNumber,
		Message:       req.Message,
		Status:        string(transport.QuoteStatusPending),
	}

	if err := s.repo.CreateWithItems(ctx, quote, items); err != nil {
		return transport.SubmitQuoteResponse{}, err
	}

	if s.bus != nil {
		s.bus.Publish(ctx, events.QuoteSubmitted{
			BaseEvent:     events.NewBaseEvent(),
			QuoteID:       quote.ID,
			CustomerName:  quote.CustomerName,
			CustomerEmail: quote.CustomerEmail,
			ItemCount:     len(items),
		})
	}

	return transport.SubmitQuoteResponse{
		Message: "quote request received",
		QuoteID: quote.ID,
	}, nil
}

// Get retrieves a quote with its line items.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.QuoteResponse, error) {
	quote, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.QuoteResponse{}, err
	}
	items, err := s.repo.GetItems(ctx, id)
	if err != nil {
		return transport.QuoteResponse{}, err
	}
	return toQuoteResponse(quote, items), nil
}

// List lists quotes newest first, optionally filtered by status.
func (s *Service) List(ctx context.Context, query transport.ListQuotesQuery) (transport.QuoteListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	quotes, total, err := s.repo.List(ctx, repository.ListQuotesParams{
		Status: query.Status,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
	if err != nil {
		return transport.QuoteListResponse{}, err
	}

	items := make([]transport.QuoteResponse, len(quotes))
	for i, q := range quotes {
		items[i] = toQuoteResponse(q, nil)
	}
	return transport.QuoteListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateStatus moves a quote to the given status. Any of the four statuses
// is reachable from any other; history lives in the audit trail of the
// back-office, not in transition rules.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status transport.QuoteStatus) (transport.QuoteResponse, error) {
	quote, err := s.repo.UpdateStatus(ctx, id, string(status))
	if err != nil {
		return transport.QuoteResponse{}, err
	}
	return toQuoteResponse(quote, nil), nil
}

// Delete removes a quote and its items.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func toQuoteResponse(q repository.Quote, items []repository.QuoteItem) transport.QuoteResponse {
	resp := transport.QuoteResponse{
		ID:            q.ID,
		CustomerName:  q.CustomerName,
		CustomerEmail: q.CustomerEmail,
		CompanyName:   q.CompanyName,
		PhoneNumber:   q.PhoneNumber,
		Message:       q.Message,
		Status:        transport.QuoteStatus(q.Status),
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
	if items != nil {
		resp.Items = make([]transport.QuoteItemResponse, len(items))
		for i, item := range items {
			resp.Items[i] = transport.QuoteItemResponse{
				ID:          item.ID,
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				Notes:       item.Notes,
			}
		}
	}
	return resp
}
