package domain

import "context"

// ReaderPort is the record accessor surface consumed by the query engine
// and other modules. All slices preserve ledger insertion order
type ReaderPort interface {
	// Records returns every row for an employee
	Records(ctx context.Context, employeeID string) ([]Record, error)

	// RecordsForPeriod filters an employee's rows to one period key
	RecordsForPeriod(ctx context.Context, employeeID, periodKey string) ([]Record, error)

	// QuarterRecords filters an employee's rows to the three months of a
	// quarter within a year
	QuarterRecords(ctx context.Context, employeeID string, year, quarter int) ([]Record, error)

	// MaxBonus returns every row whose bonus equals the employee's maximum
	MaxBonus(ctx context.Context, employeeID string) ([]Record, error)

	// Latest returns the most recent row for an employee, ok=false when the
	// employee has no rows
	Latest(ctx context.Context, employeeID string) (Record, bool, error)

	// Employees lists the distinct employees present in the ledger
	Employees(ctx context.Context) ([]Employee, error)

	// Ledger returns every row, insertion order
	Ledger(ctx context.Context) ([]Record, error)
}
