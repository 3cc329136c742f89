package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"paychat/internal/adapters/serper"
	"paychat/internal/core/period"
	"paychat/internal/core/roster"
	"paychat/internal/services/chat/domain"
	paydomain "paychat/internal/services/payroll/domain"
	"paychat/internal/services/payroll/repo"
	paysvc "paychat/internal/services/payroll/service"
)

func demoRecord(id, name, comp string, bonus, inss, irrf, net float64) paydomain.Record {
	return paydomain.Record{
		EmployeeID: id, Name: name, Competency: comp,
		Bonus: bonus, DeductionsINSS: inss, DeductionsIRRF: irrf,
		NetPay: net, PaymentDate: comp + "-28",
	}
}

func demoPayroll() paysvc.Service {
	return paysvc.New(repo.NewMemory([]paydomain.Record{
		demoRecord("E001", "Ana Souza", "2025-01", 500, 880, 495, 7725.0),
		demoRecord("E001", "Ana Souza", "2025-02", 0, 880, 472.5, 7447.5),
		demoRecord("E001", "Ana Souza", "2025-03", 800, 880, 521.25, 8048.75),
		demoRecord("E001", "Ana Souza", "2025-04", 0, 880, 483.75, 7586.25),
		demoRecord("E001", "Ana Souza", "2025-05", 1200, 880, 551.25, 8418.75),
		demoRecord("E001", "Ana Souza", "2025-06", 300, 880, 483.75, 7586.25),
		demoRecord("E002", "Bruno Lima", "2025-01", 500, 660, 345, 6095.0),
		demoRecord("E002", "Bruno Lima", "2025-02", 0, 660, 322.5, 5817.5),
		demoRecord("E002", "Bruno Lima", "2025-03", 800, 660, 371.25, 6418.75),
		demoRecord("E002", "Bruno Lima", "2025-04", 0, 660, 333.75, 5756.25),
		demoRecord("E002", "Bruno Lima", "2025-05", 1200, 660, 401.25, 6788.75),
		demoRecord("E002", "Bruno Lima", "2025-06", 300, 660, 333.75, 5956.25),
	}))
}

type fakeWeb struct {
	configured bool
	res        serper.Result
	err        error
}

func (f *fakeWeb) Configured() bool { return f.configured }
func (f *fakeWeb) Search(context.Context, string) (serper.Result, error) {
	return f.res, f.err
}

func demoEngine(web WebSearcher) *Engine {
	return NewEngine(demoPayroll(), roster.Default(), period.New(2025), web)
}

func mustContain(t *testing.T, s string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if !strings.Contains(s, p) {
			t.Fatalf("message %q does not contain %q", s, p)
		}
	}
}

func TestAnswer_NetPaySpecific(t *testing.T) {
	t.Parallel()
	e := demoEngine(nil)

	ans := e.Answer(context.Background(), "Qual o salário líquido da Ana Souza em 05/2025?")
	if ans.Failure != domain.FailureNone {
		t.Fatalf("failure = %q, message %q", ans.Failure, ans.Message)
	}
	mustContain(t, ans.Message, "Ana Souza", "R$ 8.418,75", "Maio")
	if len(ans.Evidence) != 1 || ans.Evidence[0].Competency != "2025-05" {
		t.Fatalf("evidence = %+v", ans.Evidence)
	}
	if len(ans.Sources) != 1 || ans.Sources[0] != "payroll.csv" {
		t.Fatalf("sources = %v", ans.Sources)
	}
}

func TestAnswer_BonusMax(t *testing.T) {
	t.Parallel()
	e := demoEngine(nil)

	ans := e.Answer(context.Background(), "Qual o maior bônus do Bruno Lima?")
	if ans.Failure != domain.FailureNone {
		t.Fatalf("failure = %q, message %q", ans.Failure, ans.Message)
	}
	mustContain(t, ans.Message, "Bruno Lima", "R$ 1.200,00", "Maio/2025")
	if len(ans.Evidence) != 1 || ans.Evidence[0].Bonus != 1200 {
		t.Fatalf("evidence = %+v", ans.Evidence)
	}
}

func TestAnswer_QuarterAggregate(t *testing.T) {
	t.Parallel()
	e := demoEngine(nil)

	ans := e.Answer(context.Background(), "Qual o total líquido da Ana Souza no 1º trimestre de 2025?")
	if ans.Failure != domain.FailureNone {
		t.Fatalf("failure = %q, message %q", ans.Failure, ans.Message)
	}
	// 7725.00 + 7447.50 + 8048.75
	mustContain(t, ans.Message, "Ana Souza", "no 1º trimestre de 2025", "R$ 23.221,25")
	if len(ans.Evidence) != 3 {
		t.Fatalf("evidence = %d entries, want 3", len(ans.Evidence))
	}
	for _, ev := range ans.Evidence {
		if ev.Competency > "2025-03" {
			t.Fatalf("evidence outside quarter: %+v", ev)
		}
	}
}

func TestAnswer_AggregateWholePeriod(t *testing.T) {
	t.Parallel()
	e := demoEngine(nil)

	ans := e.Answer(context.Background(), "Qual a soma do líquido do Bruno Lima?")
	if ans.Failure != domain.FailureNone {
		t.Fatalf("failure = %q, message %q", ans.Failure, ans.Message)
	}
	// 6095 + 5817.5 + 6418.75 + 5756.25 + 6788.75 + 5956.25
	mustContain(t, ans.Message, "no período total", "R$ 36.832,50")
	if len(ans.Evidence) != 6 {
		t.Fatalf("evidence = %d entries, want 6", len(ans.Evidence))
	}
}

func TestAnswer_DeductionWithPeriod(t *testing.T) {
	t.Parallel()
	e := demoEngine(nil)

	ans := e.Answer(context.Background(), "Qual o desconto de INSS da Ana Souza em 03/2025?")
	if ans.Failure != domain.FailureNone {
		t.Fatalf("failure = %q, message %q", ans.Failure, ans.Message)
	}
	mustContain(t, ans.Message, "INSS", "Ana Souza", "Março/2025", "R$ 880,00")
}

func TestAnswer_DeductionNoPeriodUsesMostRecent(t *testing.T) {
	t.Parallel()
	e := demoEngine(nil)

	ans := e.Answer(context.Background(), "Mostre os descontos da Ana")
	if ans.Failure != domain.FailureNone {
		t.Fatalf("failure = %q, message %q", ans.Failure, ans.Message)
	}
	// no "inss" in the query, so IRRF of the most recent record
	mustContain(t, ans.Message, "IRRF", "Ana Souza", "Junho/2025", "R$ 483,75")
}

func TestAnswer_PaymentDate(t *testing.T) {
	t.Parallel()
	e := demoEngine(nil)

	ans := e.Answer(context.Background(), "Qual a data de pagamento do Bruno?")
	if ans.Failure != domain.FailureNone {
		t.Fatalf("failure = %q, message %q", ans.Failure, ans.Message)
	}
	mustContain(t, ans.Message, "Bruno Lima", "28/06/2025", "R$ 5.956,25")
}

func TestAnswer_PaymentDate_PagoMatchesAgosto(t *testing.T) {
	t.Parallel()
	e := demoEngine(nil)

	// "pago" contains the agosto abbreviation, so the period resolves to
	// 2025-08 and the ledger has no row there
	ans := e.Answer(context.Background(), "Quando foi pago o salário do Bruno?")
	if ans.Failure != domain.FailureNotFound {
		t.Fatalf("failure = %q, message %q", ans.Failure, ans.Message)
	}
	mustContain(t, ans.Message, "Bruno Lima", "Agosto/2025")
}

func TestAnswer_General(t *testing.T) {
	t.Parallel()
	e := demoEngine(nil)

	ans := e.Answer(context.Background(), "Me fale sobre a funcionária Ana Souza")
	if ans.Failure != domain.FailureNone {
		t.Fatalf("failure = %q, message %q", ans.Failure, ans.Message)
	}
	mustContain(t, ans.Message, "6 registros", "Ana Souza", "Junho/2025", "R$ 7.586,25")
	if len(ans.Evidence) != 3 {
		t.Fatalf("evidence = %d entries, want 3", len(ans.Evidence))
	}
}

func TestAnswer_UnknownEmployeeWithPayrollKeyword(t *testing.T) {
	t.Parallel()
	e := demoEngine(nil)

	ans := e.Answer(context.Background(), "Qual o salário do Carlos?")
	if ans.Failure != domain.FailureNotFound {
		t.Fatalf("failure = %q, message %q", ans.Failure, ans.Message)
	}
	mustContain(t, ans.Message, "Funcionário não encontrado", "Carlos", "Ana Souza", "Bruno Lima", "Exemplos de consulta")
	if len(ans.Evidence) != 0 {
		t.Fatalf("evidence = %+v", ans.Evidence)
	}
}

func TestAnswer_NoEmployeeNoKeywordSummarizesRoster(t *testing.T) {
	t.Parallel()
	e := demoEngine(nil)

	ans := e.Answer(context.Background(), "Fale do Carlos")
	if ans.Failure != domain.FailureNone {
		t.Fatalf("failure = %q, message %q", ans.Failure, ans.Message)
	}
	mustContain(t, ans.Message, "Resumo da folha", "Ana Souza", "Bruno Lima", "Junho/2025")
	if len(ans.Evidence) != 2 {
		t.Fatalf("evidence = %d entries, want 2", len(ans.Evidence))
	}
}

func TestAnswer_EmptyPeriod(t *testing.T) {
	t.Parallel()
	e := demoEngine(nil)

	ans := e.Answer(context.Background(), "Qual o salário líquido da Ana Souza em 12/2025?")
	if ans.Failure != domain.FailureNotFound {
		t.Fatalf("failure = %q, message %q", ans.Failure, ans.Message)
	}
	mustContain(t, ans.Message, "Não foram encontrados registros", "Ana Souza", "Dezembro/2025")
	if len(ans.Evidence) != 0 {
		t.Fatalf("evidence = %+v", ans.Evidence)
	}
}

func TestAnswer_InvalidMonth(t *testing.T) {
	t.Parallel()
	e := demoEngine(nil)

	ans := e.Answer(context.Background(), "Qual o salário líquido da Ana Souza em 13/2025?")
	if ans.Failure != domain.FailurePeriodInvalid {
		t.Fatalf("failure = %q, message %q", ans.Failure, ans.Message)
	}
	mustContain(t, ans.Message, "Período inválido")
}

func TestAnswer_SelicLookup(t *testing.T) {
	t.Parallel()
	e := demoEngine(&fakeWeb{
		configured: true,
		res: serper.Result{
			Snippet: "A taxa Selic está em 15% ao ano",
			Link:    "https://www.bcb.gov.br/controleinflacao/taxaselic",
		},
	})

	ans := e.Answer(context.Background(), "Qual a taxa Selic atual? Cite a fonte.")
	if ans.Failure != domain.FailureNone {
		t.Fatalf("failure = %q, message %q", ans.Failure, ans.Message)
	}
	mustContain(t, ans.Message, "Taxa Selic atual", "15% ao ano", "bcb.gov.br")
	if len(ans.Evidence) != 0 || len(ans.Sources) != 0 {
		t.Fatalf("web answers carry no evidence or sources: %+v %v", ans.Evidence, ans.Sources)
	}
}

func TestAnswer_WebLookupNotSelic(t *testing.T) {
	t.Parallel()
	e := demoEngine(&fakeWeb{configured: true})

	ans := e.Answer(context.Background(), "Faça uma busca na web sobre futebol")
	if ans.Message != "Busca na web disponível apenas para taxa Selic no momento." {
		t.Fatalf("message = %q", ans.Message)
	}
}

func TestAnswer_SelicMissingKey(t *testing.T) {
	t.Parallel()

	for _, e := range []*Engine{demoEngine(nil), demoEngine(&fakeWeb{configured: false})} {
		ans := e.Answer(context.Background(), "Qual a taxa selic?")
		if ans.Failure != domain.FailureExternal {
			t.Fatalf("failure = %q, message %q", ans.Failure, ans.Message)
		}
		mustContain(t, ans.Message, "SERPER_API_KEY")
	}
}

func TestAnswer_SelicLookupError(t *testing.T) {
	t.Parallel()
	e := demoEngine(&fakeWeb{configured: true, err: errors.New("timeout")})

	ans := e.Answer(context.Background(), "Qual a taxa selic?")
	if ans.Failure != domain.FailureExternal {
		t.Fatalf("failure = %q, message %q", ans.Failure, ans.Message)
	}
	mustContain(t, ans.Message, "Erro ao buscar taxa Selic", "timeout")
}

func TestAnswer_Idempotent(t *testing.T) {
	t.Parallel()
	e := demoEngine(nil)

	const q = "Qual o salário líquido da Ana Souza em 05/2025?"
	first := e.Answer(context.Background(), q)
	second := e.Answer(context.Background(), q)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("answers differ:\n%+v\n%+v", first, second)
	}
}
