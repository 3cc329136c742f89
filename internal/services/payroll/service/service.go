// Package service contains the payroll record accessor workflows
package service

import (
	"context"

	"paychat/internal/core/period"
	"paychat/internal/services/payroll/domain"
	"paychat/internal/services/payroll/repo"
)

// Service defines the payroll accessor contract
type Service interface {
	domain.ReaderPort
}

// Svc implements the payroll accessor over a Repo
type Svc struct {
	Repo repo.Repo
}

// New constructs a payroll service
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("payroll.Service requires a non nil Repo")
	}
	return &Svc{Repo: r}
}

// Records returns every row for an employee in insertion order
func (s *Svc) Records(ctx context.Context, employeeID string) ([]domain.Record, error) {
	return s.Repo.ByEmployee(ctx, employeeID)
}

// RecordsForPeriod filters an employee's rows to one period key
func (s *Svc) RecordsForPeriod(ctx context.Context, employeeID, periodKey string) ([]domain.Record, error) {
	return s.Repo.ByPeriod(ctx, periodKey, employeeID)
}

// QuarterRecords filters an employee's rows to the three months of quarter
// within year
func (s *Svc) QuarterRecords(ctx context.Context, employeeID string, year, quarter int) ([]domain.Record, error) {
	all, err := s.Repo.ByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	first, last := period.QuarterMonths(quarter)
	var out []domain.Record
	for _, r := range all {
		y, m, ok := period.SplitKey(r.Competency)
		if !ok {
			continue
		}
		if y == year && m >= first && m <= last {
			out = append(out, r)
		}
	}
	return out, nil
}

// MaxBonus returns every row whose bonus equals the employee's maximum.
// Ties keep ledger order, so callers wanting one row take the first
func (s *Svc) MaxBonus(ctx context.Context, employeeID string) ([]domain.Record, error) {
	all, err := s.Repo.ByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	max := all[0].Bonus
	for _, r := range all[1:] {
		if r.Bonus > max {
			max = r.Bonus
		}
	}
	var out []domain.Record
	for _, r := range all {
		if r.Bonus == max {
			out = append(out, r)
		}
	}
	return out, nil
}

// Latest returns the most recent row for an employee
func (s *Svc) Latest(ctx context.Context, employeeID string) (domain.Record, bool, error) {
	all, err := s.Repo.ByEmployee(ctx, employeeID)
	if err != nil {
		return domain.Record{}, false, err
	}
	if len(all) == 0 {
		return domain.Record{}, false, nil
	}
	return all[len(all)-1], true, nil
}

// Employees lists the distinct employees present in the ledger, first-seen order
func (s *Svc) Employees(ctx context.Context) ([]domain.Employee, error) {
	all, err := s.Repo.All(ctx)
	if err != nil {
		return nil, err
	}
	index := map[string]int{}
	var out []domain.Employee
	for _, r := range all {
		if i, ok := index[r.EmployeeID]; ok {
			out[i].Records++
			continue
		}
		index[r.EmployeeID] = len(out)
		out = append(out, domain.Employee{EmployeeID: r.EmployeeID, Name: r.Name, Records: 1})
	}
	return out, nil
}

// Ledger returns the full record set in insertion order
func (s *Svc) Ledger(ctx context.Context) ([]domain.Record, error) {
	return s.Repo.All(ctx)
}

// ToEvidence projects records for attachment to an answer
func ToEvidence(records []domain.Record) []domain.Evidence {
	out := make([]domain.Evidence, 0, len(records))
	for _, r := range records {
		out = append(out, domain.ToEvidence(r))
	}
	return out
}
