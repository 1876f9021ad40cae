// Package service implements the admin login flow.
package service

import (
	"context"

	"tradegate_backend/internal/auth/password"
	"tradegate_backend/internal/auth/repository"
	"tradegate_backend/internal/auth/token"
	"tradegate_backend/internal/auth/transport"
	"tradegate_backend/platform/apperr"
	"tradegate_backend/platform/config"
)

// Service provides authentication business logic.
type Service struct {
	repo repository.Repository
	cfg  config.AuthConfig
}

// New creates a new auth service.
func New(repo repository.Repository, cfg config.AuthConfig) *Service {
	return &Service{repo: repo, cfg: cfg}
}

// Login verifies credentials and issues an access token. Unknown emails and
// wrong passwords produce the same error so the endpoint does not leak which
// accounts exist.
func (s *Service) Login(ctx context.Context, req transport.LoginRequest) (transport.LoginResponse, error) {
	invalidCredentials := apperr.New(apperr.KindUnauthorized, "invalid credentials")

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperr.GetKind(err) == apperr.KindNotFound {
			return transport.LoginResponse{}, invalidCredentials
		}
		return transport.LoginResponse{}, err
	}

	if err := password.Compare(user.PasswordHash, req.Password); err != nil {
		return transport.LoginResponse{}, invalidCredentials
	}

	accessToken, err := token.SignAccessToken(user.ID, user.Role, s.cfg)
	if err != nil {
		return transport.LoginResponse{}, err
	}

	return transport.LoginResponse{
		AccessToken: accessToken,
		UserID:      user.ID,
		Email:       user.Email,
		Role:        user.Role,
	}, nil
}
