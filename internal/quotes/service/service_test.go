package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"tradegate_backend/internal/events"
	"tradegate_backend/internal/quotes/repository"
	"tradegate_backend/internal/quotes/transport"
	"tradegate_backend/platform/apperr"
)

// fakeQuoteRepo records the submission transaction for inspection.
type fakeQuoteRepo struct {
	createErr error

	created      []repository.Quote
	createdItems [][]repository.QuoteItem
	quotes       map[uuid.UUID]repository.Quote
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: make(map[uuid.UUID]repository.Quote)}
}

func (f *fakeQuoteRepo) CreateWithItems(_ context.Context, quote repository.Quote, items []repository.QuoteItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, quote)
	f.createdItems = append(f.createdItems, items)
	f.quotes[quote.ID] = quote
	return nil
}

func (f *fakeQuoteRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Quote, error) {
	quote, ok := f.quotes[id]
	if !ok {
		return repository.Quote{}, apperr.NotFound("quote not found")
	}
	return quote, nil
}

func (f *fakeQuoteRepo) GetItems(_ context.Context, quoteID uuid.UUID) ([]repository.QuoteItem, error) {
	for i, q := range f.created {
		if q.ID == quoteID {
			return f.createdItems[i], nil
		}
	}
	return nil, nil
}

func (f *fakeQuoteRepo) List(_ context.Context, params repository.ListQuotesParams) ([]repository.Quote, int, error) {
	items := make([]repository.Quote, 0)
	for _, q := range f.quotes {
		if params.Status != "" && q.Status != params.Status {
			continue
		}
		items = append(items, q)
	}
	return items, len(items), nil
}

func (f *fakeQuoteRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) (repository.Quote, error) {
	quote, ok := f.quotes[id]
	if !ok {
		return repository.Quote{}, apperr.NotFound("quote not found")
	}
	quote.Status = status
	f.quotes[id] = quote
	return quote, nil
}

func (f *fakeQuoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.quotes[id]; !ok {
		return apperr.NotFound("quote not found")
	}
	delete(f.quotes, id)
	return nil
}

var _ repository.Repository = (*fakeQuoteRepo)(nil)

// fakeCatalog resolves product names from a fixed map.
type fakeCatalog struct {
	names map[uuid.UUID]string
}

func (f *fakeCatalog) ProductName(_ context.Context, id uuid.UUID) (string, error) {
	name, ok := f.names[id]
	if !ok {
		return "", apperr.NotFound("product not found")
	}
	return name, nil
}

// fakeBus records published events synchronously.
type fakeBus struct {
	published []events.Event
}

func (f *fakeBus) Publish(_ context.Context, event events.Event) {
	f.published = append(f.published, event)
}

func (f *fakeBus) PublishSync(_ context.Context, event events.Event) error {
	f.published = append(f.published, event)
	return nil
}

func (f *fakeBus) Subscribe(string, events.Handler) {}

func strPtr(s string) *string { return &s }

func validRequest(productID uuid.UUID) transport.SubmitQuoteRequest {
	return transport.SubmitQuoteRequest{
		CustomerName:  "Ada Deckers",
		CustomerEmail: "ada@example.com",
		PhoneNumber:   strPtr("(212) 555-0142"),
		Items: []transport.QuoteItemRequest{
			{ProductID: productID, Quantity: 3},
		},
	}
}

func TestSubmitPersistsQuoteWithItems(t *testing.T) {
	repo := newFakeQuoteRepo()
	productID := uuid.New()
	catalog := &fakeCatalog{names: map[uuid.UUID]string{productID: "Hydraulic Press X-200"}}
	bus := &fakeBus{}
	svc := New(repo, catalog)
	svc.SetEventBus(bus)

	resp, err := svc.Submit(context.Background(), validRequest(productID))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if resp.QuoteID == uuid.Nil {
		t.Error("response missing quote id")
	}

	if len(repo.created) != 1 {
		t.Fatalf("created %d quotes, want 1", len(repo.created))
	}
	quote := repo.created[0]
	if quote.Status != string(transport.QuoteStatusPending) {
		t.Errorf("status = %q, want %q", quote.Status, transport.QuoteStatusPending)
	}
	if quote.PhoneNumber == nil || *quote.PhoneNumber != "+12125550142" {
		t.Errorf("phone not normalized: %v", quote.PhoneNumber)
	}

	items := repo.createdItems[0]
	if len(items) != 1 {
		t.Fatalf("created %d items, want 1", len(items))
	}
	if items[0].ProductName != "Hydraulic Press X-200" {
		t.Errorf("item name = %q, want snapshot of product name", items[0].ProductName)
	}
	if items[0].QuoteID != quote.ID {
		t.Error("item not linked to quote")
	}

	if len(bus.published) != 1 {
		t.Fatalf("published %d events, want 1", len(bus.published))
	}
	submitted, ok := bus.published[0].(events.QuoteSubmitted)
	if !ok {
		t.Fatalf("published event type %T, want QuoteSubmitted", bus.published[0])
	}
	if submitted.QuoteID != quote.ID || submitted.ItemCount != 1 {
		t.Errorf("event = %+v, want quote id %s with 1 item", submitted, quote.ID)
	}
}

func TestSubmitUnknownProductRejectedBeforePersistence(t *testing.T) {
	repo := newFakeQuoteRepo()
	catalog := &fakeCatalog{names: map[uuid.UUID]string{}}
	svc := New(repo, catalog)

	_, err := svc.Submit(context.Background(), validRequest(uuid.New()))
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("error kind = %v, want validation", apperr.GetKind(err))
	}

	var domainErr *apperr.Error
	if !errors.As(err, &domainErr) {
		t.Fatal("error is not an *apperr.Error")
	}
	details, ok := domainErr.Details.(map[string][]string)
	if !ok {
		t.Fatalf("details type %T, want field error map", domainErr.Details)
	}
	if len(details["items[0].product_id"]) == 0 {
		t.Errorf("missing field error for items[0].product_id, got %v", details)
	}

	if len(repo.created) != 0 {
		t.Error("quote persisted despite validation failure")
	}
}

func TestSubmitRepositoryFailureSurfacesAndSkipsEvent(t *testing.T) {
	repo := newFakeQuoteRepo()
	repo.createErr = errors.New("insert quote item: connection reset")
	productID := uuid.New()
	catalog := &fakeCatalog{names: map[uuid.UUID]string{productID: "Valve"}}
	bus := &fakeBus{}
	svc := New(repo, catalog)
	svc.SetEventBus(bus)

	_, err := svc.Submit(context.Background(), validRequest(productID))
	if err == nil {
		t.Fatal("expected error from failing repository")
	}
	if len(bus.published) != 0 {
		t.Error("event published for a failed submission")
	}
}

func TestUpdateStatusUnknownQuote(t *testing.T) {
	svc := New(newFakeQuoteRepo(), &fakeCatalog{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), transport.QuoteStatusProcessed)
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("error kind = %v, want not found", apperr.GetKind(err))
	}
}

func TestUpdateStatusPermissiveTransitions(t *testing.T) {
	repo := newFakeQuoteRepo()
	productID := uuid.New()
	catalog := &fakeCatalog{names: map[uuid.UUID]string{productID: "Valve"}}
	svc := New(repo, catalog)
	ctx := context.Background()

	resp, err := svc.Submit(ctx, validRequest(productID))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Every status is reachable from every other, including moving back.
	for _, status := range []transport.QuoteStatus{
		transport.QuoteStatusCompleted,
		transport.QuoteStatusPending,
		transport.QuoteStatusCancelled,
		transport.QuoteStatusProcessed,
	} {
		updated, err := svc.UpdateStatus(ctx, resp.QuoteID, status)
		if err != nil {
			t.Fatalf("UpdateStatus(%s): %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("status = %q, want %q", updated.Status, status)
		}
	}
}
