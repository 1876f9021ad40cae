package service

import (
	"context"

	"github.com/google/uuid"

	"tradegate_backend/internal/catalog/repository"
	"tradegate_backend/internal/catalog/transport"
	"tradegate_backend/platform/apperr"
)

// CreateCategory creates a category with a unique slug derived from its name.
// Like product creation, a unique-violation on insert gets one retry with a
// freshly resolved slug.
func (s *Service) CreateCategory(ctx context.Context, req transport.CreateCategoryRequest) (transport.CategoryResponse, error) {
	id := uuid.New()
	base := slugBase(req.Name, id)

	params := repository.CreateCategoryParams{
		ID:          id,
		Slug:        s.categoryResolver.Resolve(ctx, base, uuid.Nil),
		Name:        req.Name,
		Description: req.Description,
	}

	category, err := s.repo.CreateCategory(ctx, params)
	if apperr.GetKind(err) == apperr.KindConflict {
		params.Slug = s.categoryResolver.Resolve(ctx, base, uuid.Nil)
		category, err = s.repo.CreateCategory(ctx, params)
	}
	if err != nil {
		return transport.CategoryResponse{}, err
	}
	return toCategoryResponse(category), nil
}

// UpdateCategory applies a partial update, regenerating the slug only when
// the name changes.
func (s *Service) UpdateCategory(ctx context.Context, id uuid.UUID, req transport.UpdateCategoryRequest) (transport.CategoryResponse, error) {
	params := repository.UpdateCategoryParams{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Name != nil {
		resolved := s.categoryResolver.Resolve(ctx, slugBase(*req.Name, id), id)
		params.Slug = &resolved
	}

	category, err := s.repo.UpdateCategory(ctx, params)
	if err != nil {
		return transport.CategoryResponse{}, err
	}
	return toCategoryResponse(category), nil
}

// DeleteCategory removes a category. Products in it are kept and detached.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCategory(ctx, id)
}

// GetCategoryDetailBySlug retrieves a category together with its published
// products for the public category page.
func (s *Service) GetCategoryDetailBySlug(ctx context.Context, categorySlug string) (transport.CategoryDetailResponse, error) {
	category, err := s.repo.GetCategoryBySlug(ctx, categorySlug)
	if err != nil {
		return transport.CategoryDetailResponse{}, err
	}
	products, err := s.ListProducts(ctx, transport.ListProductsQuery{Category: categorySlug}, true)
	if err != nil {
		return transport.CategoryDetailResponse{}, err
	}
	return transport.CategoryDetailResponse{
		CategoryResponse: toCategoryResponse(category),
		Products:         products.Items,
	}, nil
}

// ListCategories lists all categories.
func (s *Service) ListCategories(ctx context.Context) ([]transport.CategoryResponse, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]transport.CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = toCategoryResponse(c)
	}
	return items, nil
}

func toCategoryResponse(c repository.Category) transport.CategoryResponse {
	return transport.CategoryResponse{
		ID:          c.ID,
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
