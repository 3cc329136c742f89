package period

import "testing"

func TestExtract_MonthYearLiteral(t *testing.T) {
	t.Parallel()
	e := New(2025)

	d := e.Extract("Qual o salário líquido da Ana Souza em 05/2025?")
	if d.Key != "2025-05" {
		t.Fatalf("Key = %q, want 2025-05", d.Key)
	}
	if d.Year != 2025 || d.Month != 5 {
		t.Fatalf("Year/Month = %d/%d, want 2025/5", d.Year, d.Month)
	}
	if d.HasQuarter() {
		t.Fatalf("unexpected quarter %d", d.Quarter)
	}
}

func TestExtract_ISOKeyLiteral(t *testing.T) {
	t.Parallel()
	e := New(2025)

	d := e.Extract("registros de 2024-11 por favor")
	if d.Key != "2024-11" {
		t.Fatalf("Key = %q, want 2024-11", d.Key)
	}
	if d.Year != 2024 || d.Month != 11 {
		t.Fatalf("Year/Month = %d/%d, want 2024/11", d.Year, d.Month)
	}
}

func TestExtract_MonthYearWinsOverISO(t *testing.T) {
	t.Parallel()
	e := New(2025)

	// both surface forms present: MM/YYYY has higher precedence
	d := e.Extract("05/2025 ou 2024-11?")
	if d.Key != "2025-05" {
		t.Fatalf("Key = %q, want 2025-05", d.Key)
	}
}

func TestExtract_NamedMonthSynthesizesKey(t *testing.T) {
	t.Parallel()
	e := New(2025)

	cases := []struct {
		text string
		key  string
	}{
		{"quanto recebeu em junho", "2025-06"},
		{"salário de maio", "2025-05"},
		{"pagamento em março de 2024", "2024-03"},
		{"recebido em jan", "2025-01"},
		{"valores de dezembro", "2025-12"},
	}
	for _, tc := range cases {
		d := e.Extract(tc.text)
		if d.Key != tc.key {
			t.Fatalf("Extract(%q).Key = %q, want %q", tc.text, d.Key, tc.key)
		}
	}
}

func TestExtract_FirstMonthInListOrderWins(t *testing.T) {
	t.Parallel()
	e := New(2025)

	// both janeiro and junho appear; janeiro is first in the fixed table
	d := e.Extract("janeiro ou junho?")
	if d.Month != 1 {
		t.Fatalf("Month = %d, want 1", d.Month)
	}
}

func TestExtract_Quarter(t *testing.T) {
	t.Parallel()
	e := New(2025)

	for _, text := range []string{
		"total do 1º trimestre",
		"total do 1° trimestre",
		"total do 1 trimestre",
	} {
		d := e.Extract(text)
		if d.Quarter != 1 {
			t.Fatalf("Extract(%q).Quarter = %d, want 1", text, d.Quarter)
		}
		if d.Year != 2025 {
			t.Fatalf("Extract(%q).Year = %d, want default 2025", text, d.Year)
		}
	}
}

func TestExtract_QuarterAndMonthCoexist(t *testing.T) {
	t.Parallel()
	e := New(2025)

	d := e.Extract("líquido de maio no 2º trimestre")
	if d.Quarter != 2 {
		t.Fatalf("Quarter = %d, want 2", d.Quarter)
	}
	if d.Month != 5 {
		t.Fatalf("Month = %d, want 5", d.Month)
	}
	if d.Key != "2025-05" {
		t.Fatalf("Key = %q, want 2025-05", d.Key)
	}
}

func TestExtract_DefaultYearWhenAbsent(t *testing.T) {
	t.Parallel()
	e := New(2030)

	d := e.Extract("qual o salário líquido?")
	if d.Year != 2030 {
		t.Fatalf("Year = %d, want 2030", d.Year)
	}
	if d.HasKey() || d.HasMonth() || d.HasQuarter() {
		t.Fatalf("expected empty descriptor beyond year, got %+v", d)
	}
}

func TestExtract_BareYear(t *testing.T) {
	t.Parallel()
	e := New(2025)

	d := e.Extract("resumo de 2024")
	if d.Year != 2024 {
		t.Fatalf("Year = %d, want 2024", d.Year)
	}
	if d.HasKey() {
		t.Fatalf("unexpected key %q", d.Key)
	}
}

func TestExtract_OutOfRangeMonthPreserved(t *testing.T) {
	t.Parallel()
	e := New(2025)

	d := e.Extract("pagamento de 13/2025")
	if d.Month != 13 {
		t.Fatalf("Month = %d, want 13", d.Month)
	}
	if d.MonthValid() {
		t.Fatalf("MonthValid() = true for month 13")
	}
	if d.Key != "2025-13" {
		t.Fatalf("Key = %q, want 2025-13", d.Key)
	}
}

func TestQuarterMonths(t *testing.T) {
	t.Parallel()

	cases := []struct{ q, first, last int }{
		{1, 1, 3}, {2, 4, 6}, {3, 7, 9}, {4, 10, 12},
	}
	for _, tc := range cases {
		first, last := QuarterMonths(tc.q)
		if first != tc.first || last != tc.last {
			t.Fatalf("QuarterMonths(%d) = %d..%d, want %d..%d", tc.q, first, last, tc.first, tc.last)
		}
	}
}

func TestSplitKey(t *testing.T) {
	t.Parallel()

	y, m, ok := SplitKey("2025-05")
	if !ok || y != 2025 || m != 5 {
		t.Fatalf("SplitKey(2025-05) = %d,%d,%v", y, m, ok)
	}
	if _, _, ok := SplitKey("garbage"); ok {
		t.Fatalf("SplitKey(garbage) ok = true")
	}
	if _, _, ok := SplitKey("2025/05"); ok {
		t.Fatalf("SplitKey(2025/05) ok = true")
	}
}

func TestExtract_Idempotent(t *testing.T) {
	t.Parallel()
	e := New(2025)

	const text = "Qual o total líquido da Ana no 1º trimestre de 2025?"
	a := e.Extract(text)
	b := e.Extract(text)
	if a != b {
		t.Fatalf("Extract not idempotent: %+v vs %+v", a, b)
	}
}
