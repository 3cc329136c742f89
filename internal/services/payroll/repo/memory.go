package repo

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	perr "paychat/internal/platform/errors"
	"paychat/internal/services/payroll/domain"
)

// Memory is an in-memory ledger loaded once at startup and immutable after.
// Safe for concurrent readers without locking
type Memory struct {
	records []domain.Record
}

// NewMemory wraps an already-loaded record slice
func NewMemory(records []domain.Record) *Memory {
	cp := make([]domain.Record, len(records))
	copy(cp, records)
	return &Memory{records: cp}
}

// OpenCSV loads the ledger from a CSV file
func OpenCSV(path string) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Upstreamf("payroll csv open %q: %v", path, err)
	}
	defer func() { _ = f.Close() }()

	records, err := ReadCSV(f)
	if err != nil {
		return nil, perr.Upstreamf("payroll csv %q: %v", path, err)
	}
	return NewMemory(records), nil
}

// csvColumns is the required header, in any column order
var csvColumns = []string{
	"employee_id", "name", "competency", "base_salary", "bonus",
	"benefits_vt_vr", "other_earnings", "deductions_inss",
	"deductions_irrf", "other_deductions", "net_pay", "payment_date",
}

// ReadCSV parses ledger rows from r. The header row is required and every
// column in csvColumns must be present
func ReadCSV(r io.Reader) ([]domain.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[col] = i
	}
	for _, col := range csvColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	var out []domain.Record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		line++

		rec := domain.Record{
			EmployeeID:  row[idx["employee_id"]],
			Name:        row[idx["name"]],
			Competency:  row[idx["competency"]],
			PaymentDate: row[idx["payment_date"]],
		}
		nums := []struct {
			col string
			dst *float64
		}{
			{"base_salary", &rec.BaseSalary},
			{"bonus", &rec.Bonus},
			{"benefits_vt_vr", &rec.BenefitsVTVR},
			{"other_earnings", &rec.OtherEarnings},
			{"deductions_inss", &rec.DeductionsINSS},
			{"deductions_irrf", &rec.DeductionsIRRF},
			{"other_deductions", &rec.OtherDeductions},
			{"net_pay", &rec.NetPay},
		}
		for _, n := range nums {
			v, err := strconv.ParseFloat(row[idx[n.col]], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: column %q: %w", line, n.col, err)
			}
			*n.dst = v
		}
		out = append(out, rec)
	}
	return out, nil
}

// ByEmployee returns every row for an employee in insertion order
func (m *Memory) ByEmployee(_ context.Context, employeeID string) ([]domain.Record, error) {
	var out []domain.Record
	for _, r := range m.records {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ByPeriod returns rows for a period key, optionally one employee
func (m *Memory) ByPeriod(_ context.Context, periodKey, employeeID string) ([]domain.Record, error) {
	var out []domain.Record
	for _, r := range m.records {
		if r.Competency != periodKey {
			continue
		}
		if employeeID != "" && r.EmployeeID != employeeID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// All returns the full ledger
func (m *Memory) All(_ context.Context) ([]domain.Record, error) {
	out := make([]domain.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}
