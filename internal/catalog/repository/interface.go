package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Product is the database model for a catalog product.
type Product struct {
	ID          uuid.UUID
	CategoryID  *uuid.UUID
	Slug        string
	Name        string
	Description *string
	Featured    bool
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category is the database model for a catalog category.
type Category struct {
	ID          uuid.UUID
	Slug        string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateProductParams contains the fields for creating a product.
type CreateProductParams struct {
	ID          uuid.UUID
	CategoryID  *uuid.UUID
	Slug        string
	Name        string
	Description *string
	Featured    bool
	Published   bool
}

// UpdateProductParams contains the fields for a partial product update.
// Nil pointers leave the column untouched.
type UpdateProductParams struct {
	ID          uuid.UUID
	CategoryID  *uuid.UUID
	Slug        *string
	Name        *string
	Description *string
	Featured    *bool
	Published   *bool
}

// ListProductsParams contains filters and pagination for listing products.
type ListProductsParams struct {
	Search        string
	CategoryID    *uuid.UUID
	FeaturedOnly  bool
	PublishedOnly bool
	SortBy        string
	SortOrder     string
	Limit         int
	Offset        int
}

// CreateCategoryParams contains the fields for creating a category.
type CreateCategoryParams struct {
	ID          uuid.UUID
	Slug        string
	Name        string
	Description *string
}

// UpdateCategoryParams contains the fields for a partial category update.
type UpdateCategoryParams struct {
	ID          uuid.UUID
	Slug        *string
	Name        *string
	Description *string
}

// Repository provides persistence for catalog products and categories.
// The slug existence checks back the uniqueness resolver; excludeID (when
// not uuid.Nil) removes the record being updated from the collision check.
type Repository interface {
	CreateProduct(ctx context.Context, params CreateProductParams) (Product, error)
	UpdateProduct(ctx context.Context, params UpdateProductParams) (Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	GetProductByID(ctx context.Context, id uuid.UUID) (Product, error)
	GetProductBySlug(ctx context.Context, slug string) (Product, error)
	ListProducts(ctx context.Context, params ListProductsParams) ([]Product, int, error)
	ProductSlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)

	CreateCategory(ctx context.Context, params CreateCategoryParams) (Category, error)
	UpdateCategory(ctx context.Context, params UpdateCategoryParams) (Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	GetCategoryByID(ctx context.Context, id uuid.UUID) (Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	CategorySlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}
