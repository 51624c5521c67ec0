package security

import (
	"context"
	"errors"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the identity extracted from a verified bearer token. UID is the
// identity provider's stable user id; the profile fields are best-effort and
// may be empty depending on the sign-in method.
type Claims struct {
	UID      string
	Email    string
	Name     string
	PhotoURL string
}

// TokenVerifier checks the bearer credential attached to each request.
// Production uses Firebase ID tokens; local runs can use HS256 dev tokens.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}
