package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"tradegate_backend/internal/auth/password"
	"tradegate_backend/internal/auth/repository"
	"tradegate_backend/internal/auth/transport"
	"tradegate_backend/platform/apperr"
)

type fakeUserRepo struct {
	users map[string]repository.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (repository.User, error) {
	user, ok := f.users[email]
	if !ok {
		return repository.User{}, apperr.NotFound("user not found")
	}
	return user, nil
}

type fakeAuthConfig struct{}

func (fakeAuthConfig) GetJWTAccessSecret() string       { return "test-secret" }
func (fakeAuthConfig) GetAccessTokenTTL() time.Duration { return time.Hour }

func newService(t *testing.T) (*Service, repository.User) {
	t.Helper()
	hash, err := password.Hash("correct horse battery")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := repository.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         "admin",
	}
	repo := &fakeUserRepo{users: map[string]repository.User{user.Email: user}}
	return New(repo, fakeAuthConfig{}), user
}

func TestLoginIssuesToken(t *testing.T) {
	svc, user := newService(t)

	resp, err := svc.Login(context.Background(), transport.LoginRequest{
		Email:    user.Email,
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("no access token issued")
	}
	if resp.Role != "admin" || resp.UserID != user.ID {
		t.Errorf("response = %+v", resp)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, user := newService(t)

	_, err := svc.Login(context.Background(), transport.LoginRequest{
		Email:    user.Email,
		Password: "wrong",
	})
	if apperr.GetKind(err) != apperr.KindUnauthorized {
		t.Fatalf("error kind = %v, want unauthorized", apperr.GetKind(err))
	}
}

func TestLoginUnknownEmailIndistinguishable(t *testing.T) {
	svc, _ := newService(t)

	_, unknownErr := svc.Login(context.Background(), transport.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever!",
	})
	_, wrongErr := svc.Login(context.Background(), transport.LoginRequest{
		Email:    "admin@example.com",
		Password: "whatever!",
	})

	if unknownErr == nil || wrongErr == nil {
		t.Fatal("expected both logins to fail")
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("errors differ: %q vs %q", unknownErr, wrongErr)
	}
}
