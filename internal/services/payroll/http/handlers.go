// Package http provides the read-only audit transport for the payroll ledger
package http

import (
	stdhttp "net/http"
	"regexp"

	"paychat/internal/modkit/httpkit"
	perr "paychat/internal/platform/errors"
	svc "paychat/internal/services/payroll/service"
)

// Register mounts payroll endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// distinct employees in the ledger
	httpkit.Get(r, "/employees", h.employees)

	// ledger rows with optional filters
	httpkit.Get(r, "/records", h.records)
}

type handlers struct{ svc svc.Service }

var reCompetency = regexp.MustCompile(`^\d{4}-\d{2}$`)

// @Summary List employees present in the ledger
// @Tags Payroll
// @Produce json
// @Success 200 {array} domain.Employee "ok"
// @Router /payroll/employees [get]
func (h *handlers) employees(r *stdhttp.Request) (any, error) {
	return h.svc.Employees(r.Context())
}

// @Summary List payroll records
// @Tags Payroll
// @Produce json
// @Param employee_id query string false "Employee id filter"
// @Param competency query string false "Period key filter (YYYY-MM)"
// @Success 200 {array} domain.Record "ok"
// @Router /payroll/records [get]
func (h *handlers) records(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	employeeID := q.Get("employee_id")
	competency := q.Get("competency")

	if competency != "" {
		if !reCompetency.MatchString(competency) {
			return nil, perr.InvalidArgf("competency must be YYYY-MM, got %q", competency)
		}
		return h.svc.RecordsForPeriod(r.Context(), employeeID, competency)
	}
	if employeeID != "" {
		return h.svc.Records(r.Context(), employeeID)
	}

	return h.svc.Ledger(r.Context())
}
