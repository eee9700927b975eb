package middleware

import (
	"context"

	"github.com/angelmondragon/hrm-backend/pkg/auth/session"
)

type contextKey string

const (
	ctxPrincipal contextKey = "principal"
	ctxToken     contextKey = "session_token"
)

// PrincipalFromContext returns the employee resolved by Auth.
func PrincipalFromContext(ctx context.Context) (session.Principal, bool) {
	if ctx == nil {
		return session.Principal{}, false
	}
	p, ok := ctx.Value(ctxPrincipal).(session.Principal)
	return p, ok
}

// TokenFromContext returns the raw bearer token accepted by Auth.
func TokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxToken).(string); ok {
		return v
	}
	return ""
}

// WithPrincipal injects the authenticated employee and its token.
func WithPrincipal(ctx context.Context, p session.Principal, token string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxPrincipal, p)
	return context.WithValue(ctx, ctxToken, token)
}
