// Package repo provides ledger access for payroll records
package repo

import (
	"context"

	"paychat/internal/services/payroll/domain"
)

// Repo is the minimal persistence surface for the payroll ledger.
// Implementations return rows in ledger insertion order
type Repo interface {
	// ByEmployee returns every row for an employee
	ByEmployee(ctx context.Context, employeeID string) ([]domain.Record, error)

	// ByPeriod returns rows for a period key, optionally restricted to one
	// employee (empty employeeID means all employees)
	ByPeriod(ctx context.Context, periodKey, employeeID string) ([]domain.Record, error)

	// All returns the full ledger
	All(ctx context.Context) ([]domain.Record, error)
}
