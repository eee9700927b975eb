package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/angelmondragon/hrm-backend/api/responses"
	"github.com/angelmondragon/hrm-backend/pkg/auth/session"
	pkgerrors "github.com/angelmondragon/hrm-backend/pkg/errors"
	"github.com/angelmondragon/hrm-backend/pkg/logger"
)

const (
	missingTokenMessage   = "No authorization token provided"
	invalidSessionMessage = "Invalid or expired session"
)

// Auth resolves the bearer session and seeds the request context with the
// employee it belongs to.
func Auth(validator session.Validator, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, missingTokenMessage))
				return
			}

			principal, err := validator.Validate(r.Context(), token)
			if err != nil {
				if errors.Is(err, session.ErrInvalidSession) {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidSessionMessage))
					return
				}
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "validate session"))
				return
			}

			ctx := WithPrincipal(r.Context(), *principal, token)
			if logg != nil {
				ctx = logg.WithEmployeeID(ctx, principal.EmployeeID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken splits the header on its first space; the scheme must be
// exactly "Bearer" and the rest a single non-empty token.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" || token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}
