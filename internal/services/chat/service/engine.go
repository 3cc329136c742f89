package service

import (
	"context"
	"fmt"
	"strings"

	"paychat/internal/adapters/serper"
	"paychat/internal/core/brl"
	"paychat/internal/core/intent"
	"paychat/internal/core/period"
	"paychat/internal/core/roster"
	"paychat/internal/platform/logger"
	"paychat/internal/services/chat/domain"
	paydomain "paychat/internal/services/payroll/domain"
	paysvc "paychat/internal/services/payroll/service"
)

// ledgerSource is the static label attached to ledger-backed answers
const ledgerSource = "payroll.csv"

// maxGeneralEvidence bounds the evidence list on general answers
const maxGeneralEvidence = 3

// WebSearcher is the outbound lookup seam. *serper.Client satisfies it
type WebSearcher interface {
	Configured() bool
	Search(ctx context.Context, query string) (serper.Result, error)
}

// Engine turns one question into one answer. Stateless, safe for concurrent
// use over the immutable ledger
type Engine struct {
	payroll paysvc.Service
	roster  *roster.Roster
	periods *period.Extractor
	web     WebSearcher
	log     logger.Logger
}

// NewEngine wires the engine. web may be nil when no lookup client is
// configured; Selic queries then degrade to the missing-credential message
func NewEngine(payroll paysvc.Service, r *roster.Roster, periods *period.Extractor, web WebSearcher) *Engine {
	if payroll == nil {
		panic("chat.Engine requires a payroll service")
	}
	if r == nil {
		r = roster.Default()
	}
	if periods == nil {
		periods = period.New(0)
	}
	return &Engine{
		payroll: payroll,
		roster:  r,
		periods: periods,
		web:     web,
		log:     *logger.Named("engine"),
	}
}

// Answer routes one question to a handler and always returns a well formed
// answer. Internal faults degrade to diagnostic messages, never errors
func (e *Engine) Answer(ctx context.Context, query string) domain.Answer {
	if intent.IsWebLookup(query) {
		return e.webLookup(ctx, query)
	}

	emp, found := e.roster.Match(query)
	if !found {
		if intent.HasPayrollTerm(query) {
			return e.notFound(query, "")
		}
		return e.rosterSummary(ctx)
	}
	if _, ok := e.roster.ByID(emp.ID); !ok {
		return e.notFound(query, emp.Name)
	}

	desc := e.periods.Extract(query)
	kind := intent.Classify(query)
	e.log.Debug().
		Str("intent", string(kind)).
		Str("employee", emp.ID).
		Str("period_key", desc.Key).
		Msg("query routed")

	if !desc.MonthValid() {
		return domain.Answer{
			Message: fmt.Sprintf("❌ Período inválido: %s (mês deve estar entre 01 e 12).", desc.Key),
			Sources: []string{ledgerSource},
			Failure: domain.FailurePeriodInvalid,
		}
	}

	switch kind {
	case intent.NetPaySpecific:
		return e.netPaySpecific(ctx, emp, desc)
	case intent.NetPayAggregate:
		return e.netPayAggregate(ctx, emp, desc)
	case intent.Deduction:
		return e.deduction(ctx, emp, desc, query)
	case intent.BonusMax:
		return e.bonusMax(ctx, emp)
	case intent.PaymentDate:
		return e.paymentDate(ctx, emp, desc)
	default:
		return e.general(ctx, emp)
	}
}

// webLookup serves the Selic rate. Other web-ish questions get a fixed
// unsupported message
func (e *Engine) webLookup(ctx context.Context, query string) domain.Answer {
	if !intent.IsSelic(query) {
		return domain.Answer{Message: "Busca na web disponível apenas para taxa Selic no momento."}
	}
	if e.web == nil || !e.web.Configured() {
		return domain.Answer{
			Message: "❌ Chave SERPER_API_KEY não configurada",
			Failure: domain.FailureExternal,
		}
	}
	res, err := e.web.Search(ctx, serper.SelicQuery)
	if err != nil {
		e.log.Warn().Err(err).Msg("selic web lookup failed")
		return domain.Answer{
			Message: fmt.Sprintf("❌ Erro ao buscar taxa Selic na web: %v", err),
			Failure: domain.FailureExternal,
		}
	}
	return domain.Answer{
		Message: fmt.Sprintf("💰 **Taxa Selic atual:** %s\n\n🔗 **Fonte oficial:** %s", res.Snippet, res.Link),
	}
}

// notFound renders the unknown-employee help message. mentioned may be empty
func (e *Engine) notFound(query, mentioned string) domain.Answer {
	var b strings.Builder
	fmt.Fprintf(&b, "❌ **Funcionário não encontrado**\n\nConsulta: '%s'\n", query)
	if mentioned != "" {
		fmt.Fprintf(&b, "Funcionário mencionado: '%s'\n\n", mentioned)
	}
	names := e.roster.Names()
	for i := range names {
		names[i] = "**" + names[i] + "**"
	}
	fmt.Fprintf(&b, "👥 Funcionários disponíveis: %s\n\n", joinPT(names))
	b.WriteString("💡 **Dica:** Use o nome completo do funcionário para obter informações precisas.\n\n")
	b.WriteString("📋 Exemplos de consulta:\n" +
		"• `Qual o salário da Ana Souza?`\n" +
		"• `Quanto recebeu Bruno Lima em junho?`\n" +
		"• `Mostre os descontos da Ana`\n" +
		"• `Quando foi pago o salário do Bruno?`")
	return domain.Answer{
		Message: b.String(),
		Sources: []string{ledgerSource},
		Failure: domain.FailureNotFound,
	}
}

// joinPT joins names with commas and a final "e"
func joinPT(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " e " + names[len(names)-1]
	}
}

// rosterSummary reports each employee's most recent net pay. Used when no
// employee and no payroll keyword appear in the question
func (e *Engine) rosterSummary(ctx context.Context) domain.Answer {
	var b strings.Builder
	b.WriteString("📋 **Resumo da folha de pagamento**\n\n")
	var evidence []paydomain.Evidence
	listed := 0
	for _, emp := range e.roster.Entries() {
		rec, ok, err := e.payroll.Latest(ctx, emp.ID)
		if err != nil {
			return e.upstream("resumo da folha", err)
		}
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "• **%s**: último período %s, líquido %s\n",
			emp.Name, brl.MonthYear(rec.Competency), brl.FormatCurrency(rec.NetPay))
		evidence = append(evidence, paydomain.ToEvidence(rec))
		listed++
	}
	if listed == 0 {
		return domain.Answer{
			Message: "Não há registros de folha de pagamento carregados.",
			Sources: []string{ledgerSource},
			Failure: domain.FailureNotFound,
		}
	}
	b.WriteString("\n💡 Pergunte por um funcionário específico para mais detalhes.")
	return domain.Answer{
		Message:  b.String(),
		Evidence: evidence,
		Sources:  []string{ledgerSource},
	}
}

// upstream renders a storage failure as a diagnostic answer
func (e *Engine) upstream(what string, err error) domain.Answer {
	e.log.Error().Err(err).Str("handler", what).Msg("payroll access failed")
	return domain.Answer{
		Message: fmt.Sprintf("❌ Erro ao processar consulta de %s: %v", what, err),
		Sources: []string{ledgerSource},
		Failure: domain.FailureUpstream,
	}
}

// empty renders a no-records answer for emp in the described period
func (e *Engine) empty(format string, emp roster.Employee, desc period.Descriptor) domain.Answer {
	msg := strings.TrimSpace(fmt.Sprintf(format, emp.Name, brl.PeriodDescription(desc)))
	return domain.Answer{
		Message: msg + ".",
		Sources: []string{ledgerSource},
		Failure: domain.FailureNotFound,
	}
}

func (e *Engine) recordsFor(ctx context.Context, emp roster.Employee, desc period.Descriptor) ([]paydomain.Record, error) {
	if desc.HasKey() {
		return e.payroll.RecordsForPeriod(ctx, emp.ID, desc.Key)
	}
	return e.payroll.Records(ctx, emp.ID)
}

func (e *Engine) netPaySpecific(ctx context.Context, emp roster.Employee, desc period.Descriptor) domain.Answer {
	records, err := e.recordsFor(ctx, emp, desc)
	if err != nil {
		return e.upstream("salário", err)
	}
	if len(records) == 0 {
		return e.empty("Não foram encontrados registros para %s %s", emp, desc)
	}
	rec := records[0]
	return domain.Answer{
		Message: fmt.Sprintf("**%s** recebeu %s em %s.",
			emp.Name, brl.FormatCurrency(rec.NetPay), brl.MonthYear(rec.Competency)),
		Evidence: paysvc.ToEvidence(records),
		Sources:  []string{ledgerSource},
	}
}

func (e *Engine) netPayAggregate(ctx context.Context, emp roster.Employee, desc period.Descriptor) domain.Answer {
	var (
		records    []paydomain.Record
		err        error
		periodDesc string
	)
	switch {
	case desc.HasQuarter():
		if !desc.QuarterValid() {
			return domain.Answer{
				Message: fmt.Sprintf("❌ Período inválido: %dº trimestre (trimestre deve estar entre 1 e 4).", desc.Quarter),
				Sources: []string{ledgerSource},
				Failure: domain.FailurePeriodInvalid,
			}
		}
		records, err = e.payroll.QuarterRecords(ctx, emp.ID, desc.Year, desc.Quarter)
		periodDesc = fmt.Sprintf("no %dº trimestre de %d", desc.Quarter, desc.Year)
	case desc.HasKey():
		records, err = e.payroll.RecordsForPeriod(ctx, emp.ID, desc.Key)
		periodDesc = brl.PeriodDescription(desc)
	default:
		records, err = e.payroll.Records(ctx, emp.ID)
		periodDesc = "no período total"
	}
	if err != nil {
		return e.upstream("total líquido", err)
	}
	if len(records) == 0 {
		return domain.Answer{
			Message: fmt.Sprintf("Não foram encontrados registros para %s %s.", emp.Name, periodDesc),
			Sources: []string{ledgerSource},
			Failure: domain.FailureNotFound,
		}
	}
	var total float64
	for _, r := range records {
		total += r.NetPay
	}
	return domain.Answer{
		Message: fmt.Sprintf("O total líquido de **%s** %s foi %s.",
			emp.Name, periodDesc, brl.FormatCurrency(total)),
		Evidence: paysvc.ToEvidence(records),
		Sources:  []string{ledgerSource},
	}
}

func (e *Engine) deduction(ctx context.Context, emp roster.Employee, desc period.Descriptor, query string) domain.Answer {
	kind, field := "IRRF", func(r paydomain.Record) float64 { return r.DeductionsIRRF }
	if strings.Contains(strings.ToLower(query), "inss") {
		kind, field = "INSS", func(r paydomain.Record) float64 { return r.DeductionsINSS }
	}
	records, err := e.recordsFor(ctx, emp, desc)
	if err != nil {
		return e.upstream("desconto", err)
	}
	if len(records) == 0 {
		return e.empty("Não foram encontrados registros de "+kind+" para %s %s", emp, desc)
	}
	// period-filtered: first match; otherwise most recent as representative
	rec := records[0]
	if !desc.HasKey() {
		rec = records[len(records)-1]
	}
	return domain.Answer{
		Message: fmt.Sprintf("O desconto de **%s** de **%s** em %s foi %s.",
			kind, emp.Name, brl.MonthYear(rec.Competency), brl.FormatCurrency(field(rec))),
		Evidence: []paydomain.Evidence{paydomain.ToEvidence(rec)},
		Sources:  []string{ledgerSource},
	}
}

func (e *Engine) bonusMax(ctx context.Context, emp roster.Employee) domain.Answer {
	records, err := e.payroll.MaxBonus(ctx, emp.ID)
	if err != nil {
		return e.upstream("bônus", err)
	}
	if len(records) == 0 {
		return domain.Answer{
			Message: fmt.Sprintf("Não foram encontrados registros de bônus para %s.", emp.Name),
			Sources: []string{ledgerSource},
			Failure: domain.FailureNotFound,
		}
	}
	rec := records[0]
	return domain.Answer{
		Message: fmt.Sprintf("O maior bônus de **%s** foi %s em %s.",
			emp.Name, brl.FormatCurrency(rec.Bonus), brl.MonthYear(rec.Competency)),
		Evidence: paysvc.ToEvidence(records),
		Sources:  []string{ledgerSource},
	}
}

func (e *Engine) paymentDate(ctx context.Context, emp roster.Employee, desc period.Descriptor) domain.Answer {
	records, err := e.recordsFor(ctx, emp, desc)
	if err != nil {
		return e.upstream("data de pagamento", err)
	}
	if len(records) == 0 {
		return e.empty("Não foram encontrados registros de pagamento para %s %s", emp, desc)
	}
	rec := records[0]
	if !desc.HasKey() {
		rec = records[len(records)-1]
	}
	return domain.Answer{
		Message: fmt.Sprintf("O salário de **%s** foi pago em %s, e o líquido recebido foi %s.",
			emp.Name, brl.PaymentDate(rec.PaymentDate), brl.FormatCurrency(rec.NetPay)),
		Evidence: []paydomain.Evidence{paydomain.ToEvidence(rec)},
		Sources:  []string{ledgerSource},
	}
}

func (e *Engine) general(ctx context.Context, emp roster.Employee) domain.Answer {
	records, err := e.payroll.Records(ctx, emp.ID)
	if err != nil {
		return e.upstream("registros", err)
	}
	if len(records) == 0 {
		return domain.Answer{
			Message: fmt.Sprintf("Não foram encontrados registros para o funcionário %s.", emp.Name),
			Sources: []string{ledgerSource},
			Failure: domain.FailureNotFound,
		}
	}
	latest := records[len(records)-1]
	head := records
	if len(head) > maxGeneralEvidence {
		head = head[:maxGeneralEvidence]
	}
	return domain.Answer{
		Message: fmt.Sprintf("Encontrei %d registros para **%s**. O mais recente é %s, líquido %s.",
			len(records), emp.Name, brl.MonthYear(latest.Competency), brl.FormatCurrency(latest.NetPay)),
		Evidence: paysvc.ToEvidence(head),
		Sources:  []string{ledgerSource},
	}
}
