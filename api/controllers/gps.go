package controllers

import (
	"net/http"

	"github.com/angelmondragon/hrm-backend/api/middleware"
	"github.com/angelmondragon/hrm-backend/api/responses"
	"github.com/angelmondragon/hrm-backend/api/validators"
	"github.com/angelmondragon/hrm-backend/internal/attendance"
	pkgerrors "github.com/angelmondragon/hrm-backend/pkg/errors"
	"github.com/angelmondragon/hrm-backend/pkg/logger"
	"github.com/angelmondragon/hrm-backend/pkg/types"
)

type gpsCheckRequest struct {
	Latitude  types.Coordinate `json:"latitude"`
	Longitude types.Coordinate `json:"longitude"`
}

type gpsCheckResponse struct {
	Success  bool                 `json:"success"`
	Message  string               `json:"message"`
	Distance int                  `json:"distance"`
	Time     string               `json:"time"`
	Record   attendance.RecordDTO `json:"record"`
}

// GPSCheck records a check-in for the authenticated employee when the posted
// position lies inside the assigned store's geofence.
func GPSCheck(svc attendance.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "attendance service unavailable"))
			return
		}
		principal, ok := middleware.PrincipalFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "No authorization token provided"))
			return
		}

		var body gpsCheckRequest
		if err := validators.DecodeOptionalJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CheckIn(r.Context(), principal.EmployeeID, body.Latitude, body.Longitude)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, gpsCheckResponse{
			Success:  true,
			Message:  "Attendance recorded successfully",
			Distance: result.Distance,
			Time:     result.Record.CheckTime,
			Record:   result.Record,
		})
	}
}
