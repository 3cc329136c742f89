// Package intent classifies payroll queries into a fixed set of intents.
// Classification is an ordered decision list over keyword membership: the
// first matching rule wins, and the fallback is always IntentGeneral
package intent

import "strings"

// Intent is the resolved query type
type Intent string

// The closed intent set. Exactly one is chosen per query
const (
	WebLookup       Intent = "web_lookup"
	NetPaySpecific  Intent = "net_pay_specific"
	NetPayAggregate Intent = "net_pay_aggregate"
	Deduction       Intent = "deduction"
	BonusMax        Intent = "bonus_max"
	PaymentDate     Intent = "payment_date"
	General         Intent = "general"
)

var webTerms = []string{
	"selic", "taxa atual", "notícia", "busca na web", "internet", "cite a fonte",
}

var selicTerms = []string{
	"selic", "taxa selic", "juros básicos",
}

var netPayTerms = []string{
	"quanto recebi", "salário líquido", "salario liquido", "líquido", "liquido",
	"total líquido", "total liquido", "recebi",
}

var aggregateCues = []string{
	"trimestre", "total", "soma",
}

var deductionTerms = []string{
	"desconto", "inss", "irrf",
}

var bonusTerms = []string{
	"bônus", "bonus", "maior bônus", "maior bonus",
}

var paymentDateTerms = []string{
	"quando foi pago", "data de pagamento", "pagamento", "pago",
}

// payrollTerms flags queries that are clearly about payroll even when no
// employee was identified, steering them to the not-found help message
var payrollTerms = []string{
	"salário", "salario", "líquido", "liquido", "bruto", "inss", "irrf",
	"bônus", "bonus", "pagamento", "holerite", "recebi", "desconto",
	"folha", "contracheque",
}

func containsAny(lower string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// Classify resolves text to exactly one Intent
func Classify(text string) Intent {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, webTerms):
		return WebLookup
	case containsAny(lower, netPayTerms):
		if containsAny(lower, aggregateCues) {
			return NetPayAggregate
		}
		return NetPaySpecific
	case containsAny(lower, deductionTerms):
		return Deduction
	case containsAny(lower, bonusTerms):
		return BonusMax
	case containsAny(lower, paymentDateTerms):
		return PaymentDate
	default:
		return General
	}
}

// IsWebLookup reports whether text would classify as a web lookup.
// Evaluated before entity and period extraction at the top level
func IsWebLookup(text string) bool {
	return containsAny(strings.ToLower(text), webTerms)
}

// IsSelic reports whether a web-lookup query is actually about the Selic rate.
// Other web-ish queries get a canned "Selic only" reply instead of a live call
func IsSelic(text string) bool {
	return containsAny(strings.ToLower(text), selicTerms)
}

// HasPayrollTerm reports whether text mentions any payroll-domain keyword
func HasPayrollTerm(text string) bool {
	return containsAny(strings.ToLower(text), payrollTerms)
}
