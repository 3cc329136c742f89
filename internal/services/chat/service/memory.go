package service

import (
	"sync"

	"paychat/internal/services/chat/domain"
)

// DefaultMaxHistory bounds a conversation to its most recent turns
const DefaultMaxHistory = 10

// Memory keeps a bounded per-conversation history. Oldest turns are evicted
// first. Safe for concurrent use
type Memory struct {
	mu   sync.Mutex
	max  int
	conv map[string][]domain.HistoryEntry
}

// NewMemory constructs a Memory bounded to max turns per conversation
func NewMemory(max int) *Memory {
	if max <= 0 {
		max = DefaultMaxHistory
	}
	return &Memory{max: max, conv: make(map[string][]domain.HistoryEntry)}
}

// Add appends one turn, evicting the oldest when the bound is exceeded
func (m *Memory) Add(conversationID, role, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h := append(m.conv[conversationID], domain.HistoryEntry{Role: role, Content: content})
	if len(h) > m.max {
		h = h[len(h)-m.max:]
	}
	m.conv[conversationID] = h
}

// History returns a copy of the conversation's turns, oldest first
func (m *Memory) History(conversationID string) []domain.HistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	h := m.conv[conversationID]
	out := make([]domain.HistoryEntry, len(h))
	copy(out, h)
	return out
}

// Clear drops a conversation
func (m *Memory) Clear(conversationID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conv, conversationID)
}
