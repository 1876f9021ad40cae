// Package token issues the JWT access tokens the auth middleware verifies.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"tradegate_backend/platform/config"
)

// SignAccessToken creates a signed HMAC access token for a user. The claim
// shape (sub, type, role) must stay in sync with httpkit.AuthRequired.
func SignAccessToken(userID uuid.UUID, role string, cfg config.AuthConfig) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"type": "access",
		"role": role,
		"exp":  now.Add(cfg.GetAccessTokenTTL()).Unix(),
		"iat":  now.Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.GetJWTAccessSecret()))
}
