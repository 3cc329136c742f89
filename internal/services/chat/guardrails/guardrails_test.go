package guardrails

import (
	"strings"
	"testing"

	"paychat/internal/core/roster"
)

func newGuard(t *testing.T) *Guardrails {
	t.Helper()
	return New(roster.Default())
}

func TestValidate_Accepts(t *testing.T) {
	t.Parallel()
	g := newGuard(t)

	res := g.Validate("Quanto recebi (líquido) em maio/2025? (Ana Souza)")
	if !res.Accepted {
		t.Fatalf("rejected: %q (%v)", res.Reason, res.FailedChecks)
	}
	if res.EmployeeName != "Ana Souza" {
		t.Fatalf("employee = %q", res.EmployeeName)
	}
}

func TestValidate_MaxLength(t *testing.T) {
	t.Parallel()
	g := newGuard(t)

	res := g.Validate("salário " + strings.Repeat("x", MaxInputLength))
	if res.Accepted {
		t.Fatalf("accepted an over-length input")
	}
	if len(res.FailedChecks) != 1 || res.FailedChecks[0] != "max_length" {
		t.Fatalf("failed checks = %v", res.FailedChecks)
	}
	if !strings.Contains(res.Reason, "500") {
		t.Fatalf("reason = %q", res.Reason)
	}
}

func TestValidate_OffDomain(t *testing.T) {
	t.Parallel()
	g := newGuard(t)

	res := g.Validate("Qual a capital da Austrália?")
	if res.Accepted {
		t.Fatalf("accepted an off-domain question")
	}
	if len(res.FailedChecks) != 1 || res.FailedChecks[0] != "domain" {
		t.Fatalf("failed checks = %v", res.FailedChecks)
	}
	if res.Reason != "Por favor, faça perguntas sobre folha de pagamento ou funcionários" {
		t.Fatalf("reason = %q", res.Reason)
	}
}

func TestValidate_SensitiveContent(t *testing.T) {
	t.Parallel()
	g := newGuard(t)

	// relevant (mentions salário) but sensitive
	res := g.Validate("Qual a senha do sistema de salário?")
	if res.Accepted {
		t.Fatalf("accepted sensitive content")
	}
	if len(res.FailedChecks) != 1 || res.FailedChecks[0] != "sensitive_content" {
		t.Fatalf("failed checks = %v", res.FailedChecks)
	}
}

func TestValidate_RunesNotBytes(t *testing.T) {
	t.Parallel()
	g := newGuard(t)

	// 500 runes of "é" is 1000 bytes but still within the limit
	in := "salário " + strings.Repeat("é", MaxInputLength-10)
	if res := g.Validate(in); !res.Accepted {
		t.Fatalf("rejected %d-rune input: %v", len([]rune(in)), res.FailedChecks)
	}
}

func TestExtractEmployeeName_AsTyped(t *testing.T) {
	t.Parallel()
	g := newGuard(t)

	cases := map[string]string{
		"quanto recebeu BRUNO LIMA?":    "BRUNO LIMA",
		"salário da ana souza em maio":  "ana souza",
		"folha de pagamento de junho":   "",
		"o funcionário pediu holerite":  "",
		"descontos de Ana Souza e mais": "Ana Souza",
	}
	for in, want := range cases {
		if got := g.ExtractEmployeeName(in); got != want {
			t.Fatalf("ExtractEmployeeName(%q) = %q, want %q", in, got, want)
		}
	}
}
