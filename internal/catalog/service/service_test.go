package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"tradegate_backend/internal/catalog/repository"
	"tradegate_backend/internal/catalog/transport"
	"tradegate_backend/platform/apperr"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	products   map[uuid.UUID]repository.Product
	categories map[uuid.UUID]repository.Category

	// failCreatesWithConflict makes the next N product creates fail with a
	// conflict regardless of slug, simulating a lost insert race.
	failCreatesWithConflict int
	createCalls             int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		products:   make(map[uuid.UUID]repository.Product),
		categories: make(map[uuid.UUID]repository.Category),
	}
}

func (f *fakeRepo) CreateProduct(_ context.Context, params repository.CreateProductParams) (repository.Product, error) {
	f.createCalls++
	if f.failCreatesWithConflict > 0 {
		f.failCreatesWithConflict--
		return repository.Product{}, apperr.New(apperr.KindConflict, "slug already in use")
	}
	for _, p := range f.products {
		if p.Slug == params.Slug {
			return repository.Product{}, apperr.New(apperr.KindConflict, "slug already in use")
		}
	}
	product := repository.Product{
		ID:          params.ID,
		CategoryID:  params.CategoryID,
		Slug:        params.Slug,
		Name:        params.Name,
		Description: params.Description,
		Featured:    params.Featured,
		Published:   params.Published,
	}
	f.products[product.ID] = product
	return product, nil
}

func (f *fakeRepo) UpdateProduct(_ context.Context, params repository.UpdateProductParams) (repository.Product, error) {
	product, ok := f.products[params.ID]
	if !ok {
		return repository.Product{}, apperr.NotFound("product not found")
	}
	if params.Slug != nil {
		product.Slug = *params.Slug
	}
	if params.Name != nil {
		product.Name = *params.Name
	}
	if params.Description != nil {
		product.Description = params.Description
	}
	if params.CategoryID != nil {
		product.CategoryID = params.CategoryID
	}
	if params.Featured != nil {
		product.Featured = *params.Featured
	}
	if params.Published != nil {
		product.Published = *params.Published
	}
	f.products[params.ID] = product
	return product, nil
}

func (f *fakeRepo) DeleteProduct(_ context.Context, id uuid.UUID) error {
	if _, ok := f.products[id]; !ok {
		return apperr.NotFound("product not found")
	}
	delete(f.products, id)
	return nil
}

func (f *fakeRepo) GetProductByID(_ context.Context, id uuid.UUID) (repository.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return repository.Product{}, apperr.NotFound("product not found")
	}
	return product, nil
}

func (f *fakeRepo) GetProductBySlug(_ context.Context, slug string) (repository.Product, error) {
	for _, p := range f.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return repository.Product{}, apperr.NotFound("product not found")
}

func (f *fakeRepo) ListProducts(_ context.Context, params repository.ListProductsParams) ([]repository.Product, int, error) {
	items := make([]repository.Product, 0)
	for _, p := range f.products {
		if params.PublishedOnly && !p.Published {
			continue
		}
		if params.FeaturedOnly && !p.Featured {
			continue
		}
		if params.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *params.CategoryID) {
			continue
		}
		items = append(items, p)
	}
	return items, len(items), nil
}

func (f *fakeRepo) ProductSlugExists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for _, p := range f.products {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateCategory(_ context.Context, params repository.CreateCategoryParams) (repository.Category, error) {
	for _, c := range f.categories {
		if c.Slug == params.Slug {
			return repository.Category{}, apperr.New(apperr.KindConflict, "slug already in use")
		}
	}
	category := repository.Category{
		ID:          params.ID,
		Slug:        params.Slug,
		Name:        params.Name,
		Description: params.Description,
	}
	f.categories[category.ID] = category
	return category, nil
}

func (f *fakeRepo) UpdateCategory(_ context.Context, params repository.UpdateCategoryParams) (repository.Category, error) {
	category, ok := f.categories[params.ID]
	if !ok {
		return repository.Category{}, apperr.NotFound("category not found")
	}
	if params.Slug != nil {
		category.Slug = *params.Slug
	}
	if params.Name != nil {
		category.Name = *params.Name
	}
	if params.Description != nil {
		category.Description = params.Description
	}
	f.categories[params.ID] = category
	return category, nil
}

func (f *fakeRepo) DeleteCategory(_ context.Context, id uuid.UUID) error {
	if _, ok := f.categories[id]; !ok {
		return apperr.NotFound("category not found")
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeRepo) GetCategoryByID(_ context.Context, id uuid.UUID) (repository.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return repository.Category{}, apperr.NotFound("category not found")
	}
	return category, nil
}

func (f *fakeRepo) GetCategoryBySlug(_ context.Context, slug string) (repository.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return repository.Category{}, apperr.NotFound("category not found")
}

func (f *fakeRepo) ListCategories(_ context.Context) ([]repository.Category, error) {
	items := make([]repository.Category, 0, len(f.categories))
	for _, c := range f.categories {
		items = append(items, c)
	}
	return items, nil
}

func (f *fakeRepo) CategorySlugExists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for _, c := range f.categories {
		if c.Slug == slug && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.Repository = (*fakeRepo)(nil)

func TestCreateProductAssignsSlugFromName(t *testing.T) {
	svc := New(newFakeRepo())

	product, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{
		Name: "Hydraulic Press X-200",
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if product.Slug != "hydraulic-press-x-200" {
		t.Errorf("slug = %q, want %q", product.Slug, "hydraulic-press-x-200")
	}
}

func TestCreateProductResolvesCollidingSlugs(t *testing.T) {
	svc := New(newFakeRepo())
	ctx := context.Background()

	want := []string{"gasket", "gasket-2", "gasket-3"}
	for i, expected := range want {
		product, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "Gasket"})
		if err != nil {
			t.Fatalf("CreateProduct #%d: %v", i+1, err)
		}
		if product.Slug != expected {
			t.Errorf("product #%d slug = %q, want %q", i+1, product.Slug, expected)
		}
	}
}

func TestCreateProductRetriesOnceOnInsertConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.failCreatesWithConflict = 1
	svc := New(repo)

	product, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{Name: "Valve"})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if repo.createCalls != 2 {
		t.Errorf("create calls = %d, want 2", repo.createCalls)
	}
	if product.Slug == "" {
		t.Error("retried create produced empty slug")
	}
}

func TestCreateProductSurfacesConflictAfterFailedRetry(t *testing.T) {
	repo := newFakeRepo()
	repo.failCreatesWithConflict = 2
	svc := New(repo)

	_, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{Name: "Valve"})
	if apperr.GetKind(err) != apperr.KindConflict {
		t.Fatalf("error kind = %v, want conflict", apperr.GetKind(err))
	}
	if repo.createCalls != 2 {
		t.Errorf("create calls = %d, want 2 (exactly one retry)", repo.createCalls)
	}
}

func TestCreateProductUnsluggableNameFallsBackToID(t *testing.T) {
	svc := New(newFakeRepo())

	product, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{Name: "!!! ***"})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if product.Slug != product.ID.String() {
		t.Errorf("slug = %q, want record id %q", product.Slug, product.ID.String())
	}
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	svc := New(newFakeRepo())

	missing := uuid.New()
	_, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{
		Name:       "Bearing",
		CategoryID: &missing,
	})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("error kind = %v, want validation", apperr.GetKind(err))
	}
}

func TestUpdateProductKeepsSlugWithoutNameChange(t *testing.T) {
	repo := newFakeRepo()
	svc := New(repo)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "Flange Kit"})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	desc := "updated description"
	updated, err := svc.UpdateProduct(ctx, product.ID, transport.UpdateProductRequest{Description: &desc})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.Slug != product.Slug {
		t.Errorf("slug changed from %q to %q on description-only update", product.Slug, updated.Slug)
	}
}

func TestUpdateProductRegeneratesSlugOnRename(t *testing.T) {
	repo := newFakeRepo()
	svc := New(repo)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "Flange Kit"})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	name := "Coupling Kit"
	updated, err := svc.UpdateProduct(ctx, product.ID, transport.UpdateProductRequest{Name: &name})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.Slug != "coupling-kit" {
		t.Errorf("slug = %q, want %q", updated.Slug, "coupling-kit")
	}
}

func TestUpdateProductRenameToSameNameKeepsSlug(t *testing.T) {
	repo := newFakeRepo()
	svc := New(repo)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "Flange Kit"})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	// The product's own slug must not count as a collision against itself.
	name := "Flange Kit"
	updated, err := svc.UpdateProduct(ctx, product.ID, transport.UpdateProductRequest{Name: &name})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.Slug != "flange-kit" {
		t.Errorf("slug = %q, want %q", updated.Slug, "flange-kit")
	}
}

func TestGetPublishedProductBySlugHidesDrafts(t *testing.T) {
	svc := New(newFakeRepo())
	ctx := context.Background()

	draft, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "Draft Pump", Published: false})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	_, err = svc.GetPublishedProductBySlug(ctx, draft.Slug)
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("error kind = %v, want not found", apperr.GetKind(err))
	}
}

func TestListProductsUnknownCategoryReturnsEmptyPage(t *testing.T) {
	svc := New(newFakeRepo())

	list, err := svc.ListProducts(context.Background(), transport.ListProductsQuery{Category: "no-such-category"}, true)
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if list.Total != 0 || len(list.Items) != 0 {
		t.Errorf("expected empty page, got total=%d items=%d", list.Total, len(list.Items))
	}
}

func TestCreateCategoryResolvesCollidingSlugs(t *testing.T) {
	svc := New(newFakeRepo())
	ctx := context.Background()

	first, err := svc.CreateCategory(ctx, transport.CreateCategoryRequest{Name: "Fasteners"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	second, err := svc.CreateCategory(ctx, transport.CreateCategoryRequest{Name: "Fasteners"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	if first.Slug != "fasteners" {
		t.Errorf("first slug = %q, want %q", first.Slug, "fasteners")
	}
	if second.Slug != "fasteners-2" {
		t.Errorf("second slug = %q, want %q", second.Slug, "fasteners-2")
	}
}
