// Package service implements the catalog business logic: slug assignment,
// uniqueness resolution and product/category lifecycle.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tradegate_backend/internal/catalog/repository"
	"tradegate_backend/internal/catalog/transport"
	"tradegate_backend/internal/slug"
	"tradegate_backend/platform/apperr"
)

const defaultPageSize = 20

// Service provides business logic for the product catalog.
type Service struct {
	repo             repository.Repository
	productResolver  *slug.Resolver
	categoryResolver *slug.Resolver
}

// productChecker adapts the repository's product slug check to the resolver.
type productChecker struct{ repo repository.Repository }

func (c productChecker) Exists(ctx context.Context, s string, excludeID uuid.UUID) (bool, error) {
	return c.repo.ProductSlugExists(ctx, s, excludeID)
}

// categoryChecker adapts the repository's category slug check to the resolver.
type categoryChecker struct{ repo repository.Repository }

func (c categoryChecker) Exists(ctx context.Context, s string, excludeID uuid.UUID) (bool, error) {
	return c.repo.CategorySlugExists(ctx, s, excludeID)
}

// New creates a new catalog service.
func New(repo repository.Repository) *Service {
	now := func() int64 { return time.Now().Unix() }
	return &Service{
		repo:             repo,
		productResolver:  slug.NewResolver(productChecker{repo: repo}, now),
		categoryResolver: slug.NewResolver(categoryChecker{repo: repo}, now),
	}
}

// slugBase derives the slug base from a name, falling back to the record ID
// when the name reduces to nothing sluggable (all punctuation, for example).
func slugBase(name string, id uuid.UUID) string {
	base := slug.Make(name)
	if base == "" {
		base = id.String()
	}
	return base
}

// CreateProduct creates a product with a unique slug derived from its name.
// The resolver's pre-check is racy by nature, so a unique-violation on insert
// gets one retry with a freshly resolved slug before the conflict surfaces.
func (s *Service) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (transport.ProductResponse, error) {
	if req.CategoryID != nil {
		if _, err := s.repo.GetCategoryByID(ctx, *req.CategoryID); err != nil {
			if apperr.GetKind(err) == apperr.KindNotFound {
				return transport.ProductResponse{}, apperr.New(apperr.KindValidation, "category does not exist")
			}
			return transport.ProductResponse{}, err
		}
	}

	id := uuid.New()
	base := slugBase(req.Name, id)

	params := repository.CreateProductParams{
		ID:          id,
		CategoryID:  req.CategoryID,
		Slug:        s.productResolver.Resolve(ctx, base, uuid.Nil),
		Name:        req.Name,
		Description: req.Description,
		Featured:    req.Featured,
		Published:   req.Published,
	}

	product, err := s.repo.CreateProduct(ctx, params)
	if apperr.GetKind(err) == apperr.KindConflict {
		params.Slug = s.productResolver.Resolve(ctx, base, uuid.Nil)
		product, err = s.repo.CreateProduct(ctx, params)
	}
	if err != nil {
		return transport.ProductResponse{}, err
	}
	return toProductResponse(product), nil
}

// UpdateProduct applies a partial update. The slug is regenerated only when
// the request carries a new name; all other updates leave it stable so
// published URLs keep working.
func (s *Service) UpdateProduct(ctx context.Context, id uuid.UUID, req transport.UpdateProductRequest) (transport.ProductResponse, error) {
	if req.CategoryID != nil {
		if _, err := s.repo.GetCategoryByID(ctx, *req.CategoryID); err != nil {
			if apperr.GetKind(err) == apperr.KindNotFound {
				return transport.ProductResponse{}, apperr.New(apperr.KindValidation, "category does not exist")
			}
			return transport.ProductResponse{}, err
		}
	}

	params := repository.UpdateProductParams{
		ID:          id,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Featured:    req.Featured,
		Published:   req.Published,
	}
	if req.Name != nil {
		resolved := s.productResolver.Resolve(ctx, slugBase(*req.Name, id), id)
		params.Slug = &resolved
	}

	product, err := s.repo.UpdateProduct(ctx, params)
	if err != nil {
		return transport.ProductResponse{}, err
	}
	return toProductResponse(product), nil
}

// DeleteProduct removes a product.
func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProduct(ctx, id)
}

// GetProduct retrieves a product by ID.
func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (transport.ProductResponse, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return transport.ProductResponse{}, err
	}
	return toProductResponse(product), nil
}

// GetPublishedProductBySlug retrieves a published product by slug for the
// public site. Unpublished products are indistinguishable from missing ones.
func (s *Service) GetPublishedProductBySlug(ctx context.Context, productSlug string) (transport.ProductResponse, error) {
	product, err := s.repo.GetProductBySlug(ctx, productSlug)
	if err != nil {
		return transport.ProductResponse{}, err
	}
	if !product.Published {
		return transport.ProductResponse{}, apperr.NotFound("product not found")
	}
	return toProductResponse(product), nil
}

// ListProducts lists products for the public site or the admin back-office.
// publishedOnly hides drafts; category filtering goes by category slug.
func (s *Service) ListProducts(ctx context.Context, query transport.ListProductsQuery, publishedOnly bool) (transport.ProductListResponse, error) {
	params := repository.ListProductsParams{
		Search:        query.Search,
		FeaturedOnly:  query.Featured,
		PublishedOnly: publishedOnly,
		SortBy:        query.SortBy,
		SortOrder:     query.SortOrder,
	}

	if query.Category != "" {
		category, err := s.repo.GetCategoryBySlug(ctx, query.Category)
		if err != nil {
			if apperr.GetKind(err) == apperr.KindNotFound {
				return emptyProductList(query), nil
			}
			return transport.ProductListResponse{}, err
		}
		params.CategoryID = &category.ID
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	params.Limit = pageSize
	params.Offset = (page - 1) * pageSize

	products, total, err := s.repo.ListProducts(ctx, params)
	if err != nil {
		return transport.ProductListResponse{}, err
	}

	items := make([]transport.ProductResponse, len(products))
	for i, p := range products {
		items[i] = toProductResponse(p)
	}
	return transport.ProductListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func emptyProductList(query transport.ListProductsQuery) transport.ProductListResponse {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return transport.ProductListResponse{
		Items:    []transport.ProductResponse{},
		Total:    0,
		Page:     page,
		PageSize: pageSize,
	}
}

func toProductResponse(p repository.Product) transport.ProductResponse {
	return transport.ProductResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		Featured:    p.Featured,
		Published:   p.Published,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
