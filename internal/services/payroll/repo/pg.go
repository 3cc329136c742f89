package repo

import (
	"context"

	"paychat/internal/modkit/repokit"
	perr "paychat/internal/platform/errors"
	"paychat/internal/services/payroll/domain"
)

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface over postgres
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const recordColumns = `
employee_id, name, competency, base_salary, bonus, benefits_vt_vr,
other_earnings, deductions_inss, deductions_irrf, other_deductions,
net_pay, payment_date::text
`

func (r *queries) ByEmployee(ctx context.Context, employeeID string) ([]domain.Record, error) {
	const sql = `
select ` + recordColumns + `
from payroll_records
where employee_id = $1
order by id asc
`
	rows, err := r.q.Query(ctx, sql, employeeID)
	if err != nil {
		return nil, perr.FromPg(err, "payroll query")
	}
	return scanRecords(rows)
}

func (r *queries) ByPeriod(ctx context.Context, periodKey, employeeID string) ([]domain.Record, error) {
	const sql = `
select ` + recordColumns + `
from payroll_records
where competency = $1
and ($2 = '' or employee_id = $2)
order by id asc
`
	rows, err := r.q.Query(ctx, sql, periodKey, employeeID)
	if err != nil {
		return nil, perr.FromPg(err, "payroll query")
	}
	return scanRecords(rows)
}

func (r *queries) All(ctx context.Context) ([]domain.Record, error) {
	const sql = `
select ` + recordColumns + `
from payroll_records
order by id asc
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.FromPg(err, "payroll query")
	}
	return scanRecords(rows)
}

func scanRecords(rows repokit.Rows) ([]domain.Record, error) {
	defer rows.Close()
	var out []domain.Record
	for rows.Next() {
		var rec domain.Record
		if err := rows.Scan(
			&rec.EmployeeID, &rec.Name, &rec.Competency, &rec.BaseSalary,
			&rec.Bonus, &rec.BenefitsVTVR, &rec.OtherEarnings,
			&rec.DeductionsINSS, &rec.DeductionsIRRF, &rec.OtherDeductions,
			&rec.NetPay, &rec.PaymentDate,
		); err != nil {
			return nil, perr.FromPg(err, "payroll query")
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromPg(err, "payroll query")
	}
	return out, nil
}
