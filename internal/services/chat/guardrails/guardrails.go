// Package guardrails validates user input before the query engine runs.
// Rejections carry user-readable Portuguese messages; the engine is never
// invoked for a rejected input
package guardrails

import (
	"fmt"
	"regexp"
	"strings"

	"paychat/internal/core/roster"
)

// MaxInputLength is the hard cap on question size
const MaxInputLength = 500

// sensitiveTopics block the question outright when present
var sensitiveTopics = []string{
	"violência", "conteúdo adulto", "sexo", "sexual",
	"droga", "ilegal", "hackear", "senha", "password",
	"cartão de crédito", "cpf", "conta bancária",
}

// relevanceKeywords gate the question to the payroll domain. Employee names
// are appended from the roster at construction
var relevanceKeywords = []string{
	"salário", "pagamento", "folha", "holerite", "contracheque",
	"inss", "irrf", "bruto", "líquido", "bonus", "bônus",
	"funcionário", "colaborador", "quanto recebi", "quando pagou",
	"selic", "taxa selic", "juros", "economia",
	"maio", "junho", "julho", "2025", "2024",
}

// Result is the outcome of one validation pass
type Result struct {
	Accepted bool
	// Reason is the user-facing rejection message, empty when accepted
	Reason string
	// FailedChecks names the rules that rejected the input
	FailedChecks []string
	InputLength  int
	// EmployeeName preserves the roster name exactly as the user typed it,
	// empty when no roster name appears verbatim
	EmployeeName string
}

// Guardrails holds the compiled rule set
type Guardrails struct {
	roster   *roster.Roster
	relevant []string
	namePats []*regexp.Regexp
}

// New compiles guardrails over a roster
func New(r *roster.Roster) *Guardrails {
	g := &Guardrails{roster: r}
	g.relevant = append(g.relevant, relevanceKeywords...)
	for _, name := range r.Names() {
		g.relevant = append(g.relevant, strings.ToLower(name))
		g.namePats = append(g.namePats, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(name)+`\b`))
	}
	return g
}

// ExtractEmployeeName returns a roster full name as typed in text, or ""
func (g *Guardrails) ExtractEmployeeName(text string) string {
	for _, pat := range g.namePats {
		if m := pat.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

func (g *Guardrails) isRelevant(lower string) bool {
	for _, k := range g.relevant {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Validate applies the rule set in order: length, relevance, sensitive content
func (g *Guardrails) Validate(text string) Result {
	res := Result{InputLength: len([]rune(text))}
	lower := strings.ToLower(text)

	if res.InputLength > MaxInputLength {
		res.FailedChecks = append(res.FailedChecks, "max_length")
		res.Reason = fmt.Sprintf("Pergunta muito longa. Máximo permitido: %d caracteres.", MaxInputLength)
		return res
	}

	if !g.isRelevant(lower) {
		res.FailedChecks = append(res.FailedChecks, "domain")
		res.Reason = "Por favor, faça perguntas sobre folha de pagamento ou funcionários"
		return res
	}

	for _, topic := range sensitiveTopics {
		if strings.Contains(lower, topic) {
			res.FailedChecks = append(res.FailedChecks, "sensitive_content")
			res.Reason = "Tópico sensível detectado. Não posso ajudar com isso."
			return res
		}
	}

	res.Accepted = true
	res.EmployeeName = g.ExtractEmployeeName(text)
	return res
}
