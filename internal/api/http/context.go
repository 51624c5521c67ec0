package http

import (
	"context"

	"sportnex-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "authClaims"

func withClaims(ctx context.Context, claims *security.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFrom returns the verified token claims stored by the auth middleware.
func ClaimsFrom(ctx context.Context) (*security.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*security.Claims)
	return claims, ok
}
