// Package brl renders payroll values the way Brazilian users read them:
// comma-decimal dot-thousands currency, Portuguese month names, and
// dd/mm/yyyy payment dates. Formatting is applied at render time only
package brl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"paychat/internal/core/period"
)

// monthsPT is the fixed month-name table, index 0 = Janeiro
var monthsPT = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// FormatCurrency renders v as "R$ 8.418,75": two decimal digits, decimal
// comma, thousands dot
func FormatCurrency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte('.')
		b.WriteString(intPart[i : i+3])
	}
	out := b.String()
	return "R$ " + out + "," + fracPart
}

// MonthName returns the Portuguese name for month m (1-12), or the number
// itself when out of range
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return strconv.Itoa(m)
	}
	return monthsPT[m-1]
}

// MonthYear renders a YYYY-MM period key as "Maio/2025".
// Malformed keys are returned unchanged
func MonthYear(key string) string {
	year, month, ok := period.SplitKey(key)
	if !ok || month < 1 || month > 12 {
		return key
	}
	return fmt.Sprintf("%s/%d", monthsPT[month-1], year)
}

// PaymentDate renders a YYYY-MM-DD date as dd/mm/yyyy.
// Unparseable input is returned unchanged
func PaymentDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

// PeriodDescription phrases a descriptor for use inside an answer sentence:
// "em Maio/2025", "no 1º trimestre de 2025", "no ano de 2025".
// An empty descriptor yields an empty string
func PeriodDescription(d period.Descriptor) string {
	switch {
	case d.HasMonth():
		return "em " + MonthYear(d.Key)
	case d.HasQuarter():
		return fmt.Sprintf("no %dº trimestre de %d", d.Quarter, d.Year)
	case d.Year != 0:
		return fmt.Sprintf("no ano de %d", d.Year)
	}
	return ""
}
