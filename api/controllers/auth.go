package controllers

import (
	"net/http"

	"github.com/angelmondragon/hrm-backend/api/middleware"
	"github.com/angelmondragon/hrm-backend/api/responses"
	"github.com/angelmondragon/hrm-backend/api/validators"
	"github.com/angelmondragon/hrm-backend/internal/auth"
	"github.com/angelmondragon/hrm-backend/pkg/auth/session"
	pkgerrors "github.com/angelmondragon/hrm-backend/pkg/errors"
	"github.com/angelmondragon/hrm-backend/pkg/logger"
)

type meResponse struct {
	Success bool              `json:"success"`
	User    session.Principal `json:"user"`
}

// AuthLogin wires the login endpoint into the HTTP layer.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeOptionalJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			logg.Info(logg.WithEmployeeID(r.Context(), result.User.EmployeeID), "auth.login")
		}
		responses.WriteSuccess(w, result)
	}
}

// AuthLogout revokes the bearer session the request was authenticated with.
func AuthLogout(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		if err := svc.Logout(r.Context(), middleware.TokenFromContext(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "Logged out successfully")
	}
}

// AuthMe returns the employee resolved from the session.
func AuthMe(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := middleware.PrincipalFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "No authorization token provided"))
			return
		}
		responses.WriteSuccess(w, meResponse{Success: true, User: principal})
	}
}
