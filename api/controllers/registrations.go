package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/hrm-backend/api/middleware"
	"github.com/angelmondragon/hrm-backend/api/responses"
	"github.com/angelmondragon/hrm-backend/api/validators"
	"github.com/angelmondragon/hrm-backend/internal/registrations"
	"github.com/angelmondragon/hrm-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/hrm-backend/pkg/errors"
	"github.com/angelmondragon/hrm-backend/pkg/logger"
)

type registrationsResponse struct {
	Success bool                            `json:"success"`
	Data    []registrations.RegistrationDTO `json:"data"`
}

type reviewResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	EmployeeID string `json:"employeeId"`
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// RegistrationsList returns registrations filtered by status and storeId.
func RegistrationsList(svc registrations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "registrations service unavailable"))
			return
		}
		principal, ok := middleware.PrincipalFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "No authorization token provided"))
			return
		}

		filter := registrations.ListFilter{
			Status:  enums.RegistrationStatus(validators.ParseQueryString(r, "status", 16)),
			StoreID: validators.ParseQueryString(r, "storeId", 64),
		}
		items, err := svc.List(r.Context(), principal, filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, registrationsResponse{Success: true, Data: items})
	}
}

// RegistrationApprove promotes a pending registration into an employee.
func RegistrationApprove(svc registrations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "registrations service unavailable"))
			return
		}
		principal, ok := middleware.PrincipalFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "No authorization token provided"))
			return
		}

		employeeID := chi.URLParam(r, "employeeId")
		if err := svc.Approve(r.Context(), principal, employeeID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if logg != nil {
			logg.Info(logg.WithField(r.Context(), "registration_id", employeeID), "registration.approved")
		}
		responses.WriteSuccess(w, reviewResponse{Success: true, Message: "Registration approved", EmployeeID: employeeID})
	}
}

// RegistrationReject closes a pending registration with an optional reason.
func RegistrationReject(svc registrations.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "registrations service unavailable"))
			return
		}
		principal, ok := middleware.PrincipalFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "No authorization token provided"))
			return
		}

		var body rejectRequest
		if err := validators.DecodeOptionalJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		employeeID := chi.URLParam(r, "employeeId")
		if err := svc.Reject(r.Context(), principal, employeeID, body.Reason); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if logg != nil {
			logg.Info(logg.WithField(r.Context(), "registration_id", employeeID), "registration.rejected")
		}
		responses.WriteSuccess(w, reviewResponse{Success: true, Message: "Registration rejected", EmployeeID: employeeID})
	}
}
