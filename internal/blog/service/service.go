// Package service implements the blog business logic: slugged posts with an
// explicit publish lifecycle.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tradegate_backend/internal/blog/repository"
	"tradegate_backend/internal/blog/transport"
	"tradegate_backend/internal/slug"
	"tradegate_backend/platform/apperr"
)

const defaultPageSize = 20

// Service provides business logic for blog posts.
type Service struct {
	repo     repository.Repository
	resolver *slug.Resolver
	now      func() time.Time
}

type slugChecker struct{ repo repository.Repository }

func (c slugChecker) Exists(ctx context.Context, s string, excludeID uuid.UUID) (bool, error) {
	return c.repo.SlugExists(ctx, s, excludeID)
}

// New creates a new blog service.
func New(repo repository.Repository) *Service {
	now := time.Now
	return &Service{
		repo:     repo,
		resolver: slug.NewResolver(slugChecker{repo: repo}, func() int64 { return now().Unix() }),
		now:      now,
	}
}

func slugBase(title string, id uuid.UUID) string {
	base := slug.Make(title)
	if base == "" {
		base = id.String()
	}
	return base
}

// Create creates a post with a unique slug derived from its title. Creating
// a post as published stamps published_at immediately.
func (s *Service) Create(ctx context.Context, req transport.CreatePostRequest) (transport.PostResponse, error) {
	id := uuid.New()
	base := slugBase(req.Title, id)

	params := repository.CreatePostParams{
		ID:        id,
		Slug:      s.resolver.Resolve(ctx, base, uuid.Nil),
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Body:      req.Body,
		Published: req.Published,
	}
	if req.Published {
		publishedAt := s.now()
		params.PublishedAt = &publishedAt
	}

	post, err := s.repo.Create(ctx, params)
	if apperr.GetKind(err) == apperr.KindConflict {
		params.Slug = s.resolver.Resolve(ctx, base, uuid.Nil)
		post, err = s.repo.Create(ctx, params)
	}
	if err != nil {
		return transport.PostResponse{}, err
	}
	return toPostResponse(post), nil
}

// Update applies a partial update. The slug follows the title; the publish
// flag adjusts published_at the same way Publish and Unpublish do.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdatePostRequest) (transport.PostResponse, error) {
	params := repository.UpdatePostParams{
		ID:        id,
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Body:      req.Body,
		Published: req.Published,
	}
	if req.Title != nil {
		resolved := s.resolver.Resolve(ctx, slugBase(*req.Title, id), id)
		params.Slug = &resolved
	}
	if req.Published != nil {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return transport.PostResponse{}, err
		}
		params.SetPublishedAt = true
		if *req.Published {
			// First publication stamps the date; republishing keeps it.
			if current.PublishedAt != nil {
				params.PublishedAt = current.PublishedAt
			} else {
				publishedAt := s.now()
				params.PublishedAt = &publishedAt
			}
		}
	}

	post, err := s.repo.Update(ctx, params)
	if err != nil {
		return transport.PostResponse{}, err
	}
	return toPostResponse(post), nil
}

// Publish makes a post publicly visible.
func (s *Service) Publish(ctx context.Context, id uuid.UUID) (transport.PostResponse, error) {
	published := true
	return s.Update(ctx, id, transport.UpdatePostRequest{Published: &published})
}

// Unpublish takes a post off the public site, clearing its publication date.
func (s *Service) Unpublish(ctx context.Context, id uuid.UUID) (transport.PostResponse, error) {
	published := false
	return s.Update(ctx, id, transport.UpdatePostRequest{Published: &published})
}

// Delete removes a post.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Get retrieves a post by ID for the back-office.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.PostResponse, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.PostResponse{}, err
	}
	return toPostResponse(post), nil
}

// GetPublishedBySlug retrieves a published post by slug for the public site.
// Drafts are indistinguishable from missing posts.
func (s *Service) GetPublishedBySlug(ctx context.Context, postSlug string) (transport.PostResponse, error) {
	post, err := s.repo.GetBySlug(ctx, postSlug)
	if err != nil {
		return transport.PostResponse{}, err
	}
	if !post.Published {
		return transport.PostResponse{}, apperr.NotFound("post not found")
	}
	return toPostResponse(post), nil
}

// List lists posts for the public site or the admin back-office.
func (s *Service) List(ctx context.Context, query transport.ListPostsQuery, publishedOnly bool) (transport.PostListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	posts, total, err := s.repo.List(ctx, repository.ListPostsParams{
		PublishedOnly: publishedOnly,
		Limit:         pageSize,
		Offset:        (page - 1) * pageSize,
	})
	if err != nil {
		return transport.PostListResponse{}, err
	}

	items := make([]transport.PostResponse, len(posts))
	for i, p := range posts {
		items[i] = toPostResponse(p)
	}
	return transport.PostListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func toPostResponse(p repository.Post) transport.PostResponse {
	return transport.PostResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Body:        p.Body,
		Published:   p.Published,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
