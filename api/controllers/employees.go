package controllers

import (
	"net/http"

	"github.com/angelmondragon/hrm-backend/api/responses"
	"github.com/angelmondragon/hrm-backend/api/validators"
	"github.com/angelmondragon/hrm-backend/internal/employees"
	pkgerrors "github.com/angelmondragon/hrm-backend/pkg/errors"
	"github.com/angelmondragon/hrm-backend/pkg/logger"
	"github.com/angelmondragon/hrm-backend/pkg/types"
)

const maxListLimit = 1000

// EmployeesList returns active employees filtered by storeId/companyId.
func EmployeesList(svc employees.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "employees service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, maxListLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter := employees.ListFilter{
			StoreID:   validators.ParseQueryString(r, "storeId", 64),
			CompanyID: validators.ParseQueryString(r, "companyId", 64),
			Limit:     limit,
		}

		items, total, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, types.ListEnvelope[employees.EmployeeDTO]{Success: true, Data: items, Total: int(total)})
	}
}
