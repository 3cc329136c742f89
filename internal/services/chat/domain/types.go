// Package domain holds the chat conversation types shared by guardrails,
// engine, and transport
package domain

import (
	paydomain "paychat/internal/services/payroll/domain"
)

// ChatRequest is the inbound question
type ChatRequest struct {
	Message        string `json:"message" validate:"required,min=1"`
	ConversationID string `json:"conversation_id,omitempty" validate:"omitempty,max=64"`
}

// ChatResponse is the answer returned to the presentation layer
type ChatResponse struct {
	Response       string               `json:"response"`
	Evidence       []paydomain.Evidence `json:"evidence"`
	Sources        []string             `json:"sources"`
	ConversationID string               `json:"conversation_id"`
}

// FailureKind classifies why an answer degraded. Empty means the answer is a
// regular result. Failures are values on the answer, never raised to callers
type FailureKind string

const (
	FailureNone          FailureKind = ""
	FailureNotFound      FailureKind = "not_found"
	FailurePeriodInvalid FailureKind = "period_invalid"
	FailureUpstream      FailureKind = "upstream"
	FailureExternal      FailureKind = "external"
	FailureGuardrail     FailureKind = "guardrail"
)

// Answer is what the engine produces for one query. Message is always
// well formed; Evidence may be empty; Sources is the static dataset label
// list for ledger-backed answers and empty otherwise
type Answer struct {
	Message  string
	Evidence []paydomain.Evidence
	Sources  []string
	Failure  FailureKind
}

// HistoryEntry is one conversation turn
type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
