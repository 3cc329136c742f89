package brl

import (
	"testing"

	"paychat/internal/core/period"
)

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{8418.75, "R$ 8.418,75"},
		{7725.0, "R$ 7.725,00"},
		{1200, "R$ 1.200,00"},
		{0, "R$ 0,00"},
		{0.5, "R$ 0,50"},
		{999.99, "R$ 999,99"},
		{1000, "R$ 1.000,00"},
		{1234567.89, "R$ 1.234.567,89"},
		{-1234.5, "R$ -1.234,50"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Fatalf("FormatCurrency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMonthYear(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"2025-05", "Maio/2025"},
		{"2025-01", "Janeiro/2025"},
		{"2024-12", "Dezembro/2024"},
		{"2025-13", "2025-13"}, // out of range passes through
		{"garbage", "garbage"},
	}
	for _, tc := range cases {
		if got := MonthYear(tc.in); got != tc.want {
			t.Fatalf("MonthYear(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPaymentDate(t *testing.T) {
	t.Parallel()

	if got := PaymentDate("2025-05-28"); got != "28/05/2025" {
		t.Fatalf("PaymentDate = %q, want 28/05/2025", got)
	}
	if got := PaymentDate("not a date"); got != "not a date" {
		t.Fatalf("unparseable input should pass through, got %q", got)
	}
}

func TestPeriodDescription(t *testing.T) {
	t.Parallel()

	cases := []struct {
		d    period.Descriptor
		want string
	}{
		{period.Descriptor{Key: "2025-05", Year: 2025, Month: 5}, "em Maio/2025"},
		{period.Descriptor{Year: 2025, Quarter: 1}, "no 1º trimestre de 2025"},
		{period.Descriptor{Year: 2025}, "no ano de 2025"},
		{period.Descriptor{}, ""},
	}
	for _, tc := range cases {
		if got := PeriodDescription(tc.d); got != tc.want {
			t.Fatalf("PeriodDescription(%+v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestMonthName(t *testing.T) {
	t.Parallel()

	if got := MonthName(3); got != "Março" {
		t.Fatalf("MonthName(3) = %q", got)
	}
	if got := MonthName(0); got != "0" {
		t.Fatalf("MonthName(0) = %q", got)
	}
}
