package middleware

import (
	"net/http"

	"github.com/angelmondragon/hrm-backend/api/responses"
	pkgerrors "github.com/angelmondragon/hrm-backend/pkg/errors"
	"github.com/angelmondragon/hrm-backend/pkg/logger"
)

// RequirePermission rejects principals whose position lacks code. It must
// run after Auth.
func RequirePermission(code string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, missingTokenMessage))
				return
			}
			if !principal.Can(code) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "Insufficient permissions").
					WithDetails(map[string]any{"required": code}))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
