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

const defaultAttendanceLimit = 100

// AttendanceHistory lists the caller's own check-ins, newest first.
func AttendanceHistory(svc attendance.Service, logg *logger.Logger) http.HandlerFunc {
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

		limit, err := validators.ParseQueryInt(r, "limit", defaultAttendanceLimit, 1, maxListLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		from, err := validators.ParseQueryDate(r, "from")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		to, err := validators.ParseQueryDate(r, "to")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, total, err := svc.History(r.Context(), attendance.HistoryFilter{
			EmployeeID: principal.EmployeeID,
			From:       from,
			To:         to,
			Limit:      limit,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, types.ListEnvelope[attendance.RecordDTO]{Success: true, Data: items, Total: int(total)})
	}
}
