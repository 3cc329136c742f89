// Package service orchestrates guardrails, the query engine, and conversation
// memory into the chat workflow
package service

import (
	"context"

	"github.com/google/uuid"

	"paychat/internal/platform/logger"
	"paychat/internal/services/chat/domain"
	"paychat/internal/services/chat/guardrails"
	paydomain "paychat/internal/services/payroll/domain"
)

// Service is the chat contract consumed by transport
type Service interface {
	Ask(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error)
	History(ctx context.Context, conversationID string) ([]domain.HistoryEntry, error)
	ClearHistory(ctx context.Context, conversationID string) error
}

// Svc wires guardrails before the engine and records both turns in memory
type Svc struct {
	engine *Engine
	guard  *guardrails.Guardrails
	memory *Memory
	log    logger.Logger
}

// New constructs the chat service
func New(engine *Engine, guard *guardrails.Guardrails, memory *Memory) *Svc {
	if engine == nil || guard == nil || memory == nil {
		panic("chat.Service requires engine, guardrails, and memory")
	}
	return &Svc{
		engine: engine,
		guard:  guard,
		memory: memory,
		log:    *logger.Named("chat"),
	}
}

// Ask answers one question. Always returns a well formed response; failures
// surface as user-readable messages on the response, never as errors
func (s *Svc) Ask(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error) {
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	s.memory.Add(conversationID, "user", req.Message)

	var answer domain.Answer
	if check := s.guard.Validate(req.Message); !check.Accepted {
		s.log.Warn().
			Str("conversation_id", conversationID).
			Strs("failed_checks", check.FailedChecks).
			Int("input_length", check.InputLength).
			Msg("input rejected by guardrails")
		answer = domain.Answer{Message: check.Reason, Failure: domain.FailureGuardrail}
	} else {
		answer = s.engine.Answer(ctx, req.Message)
	}

	s.memory.Add(conversationID, "assistant", answer.Message)

	// empty lists render as [] on the wire, not null
	evidence := answer.Evidence
	if evidence == nil {
		evidence = []paydomain.Evidence{}
	}
	sources := answer.Sources
	if sources == nil {
		sources = []string{}
	}

	return domain.ChatResponse{
		Response:       answer.Message,
		Evidence:       evidence,
		Sources:        sources,
		ConversationID: conversationID,
	}, nil
}

// History returns the bounded conversation history, oldest first
func (s *Svc) History(_ context.Context, conversationID string) ([]domain.HistoryEntry, error) {
	return s.memory.History(conversationID), nil
}

// ClearHistory drops a conversation
func (s *Svc) ClearHistory(_ context.Context, conversationID string) error {
	s.memory.Clear(conversationID)
	return nil
}
