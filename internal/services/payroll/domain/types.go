// Package domain holds payroll ledger types shared by repo, service, and transport
package domain

// Record is one payroll cycle for one employee. Records are loaded once at
// startup and immutable for the process lifetime; net pay is stored, never
// re-derived
type Record struct {
	EmployeeID      string  `json:"employee_id"`
	Name            string  `json:"name"`
	Competency      string  `json:"competency"` // YYYY-MM, unique per employee
	BaseSalary      float64 `json:"base_salary"`
	Bonus           float64 `json:"bonus"`
	BenefitsVTVR    float64 `json:"benefits_vt_vr"`
	OtherEarnings   float64 `json:"other_earnings"`
	DeductionsINSS  float64 `json:"deductions_inss"`
	DeductionsIRRF  float64 `json:"deductions_irrf"`
	OtherDeductions float64 `json:"other_deductions"`
	NetPay          float64 `json:"net_pay"`
	PaymentDate     string  `json:"payment_date"` // YYYY-MM-DD
}

// Evidence is the read-only projection of a Record attached to answers for
// auditability
type Evidence struct {
	EmployeeID     string  `json:"employee_id"`
	Name           string  `json:"name"`
	Competency     string  `json:"competency"`
	NetPay         float64 `json:"net_pay"`
	PaymentDate    string  `json:"payment_date"`
	BaseSalary     float64 `json:"base_salary,omitempty"`
	Bonus          float64 `json:"bonus,omitempty"`
	DeductionsINSS float64 `json:"deductions_inss,omitempty"`
	DeductionsIRRF float64 `json:"deductions_irrf,omitempty"`
}

// ToEvidence projects a single record
func ToEvidence(r Record) Evidence {
	return Evidence{
		EmployeeID:     r.EmployeeID,
		Name:           r.Name,
		Competency:     r.Competency,
		NetPay:         r.NetPay,
		PaymentDate:    r.PaymentDate,
		BaseSalary:     r.BaseSalary,
		Bonus:          r.Bonus,
		DeductionsINSS: r.DeductionsINSS,
		DeductionsIRRF: r.DeductionsIRRF,
	}
}

// Employee is a distinct employee present in the ledger
type Employee struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Records    int    `json:"records"`
}
