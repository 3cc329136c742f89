// Package http exposes the chat conversation transport
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"paychat/internal/modkit/httpkit"
	perr "paychat/internal/platform/errors"
	"paychat/internal/services/chat/domain"
	svc "paychat/internal/services/chat/service"
)

// Register mounts chat endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON(r, "/", h.ask)
	httpkit.Get(r, "/{conversation_id}/history", h.history)
	r.Delete("/{conversation_id}/history", httpkit.Call(h.clear))
}

type handlers struct{ svc svc.Service }

// @Summary Ask a payroll question
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body domain.ChatRequest true "Question"
// @Success 200 {object} domain.ChatResponse "ok"
// @Router /chat [post]
func (h *handlers) ask(r *stdhttp.Request, req domain.ChatRequest) (any, error) {
	return h.svc.Ask(r.Context(), req)
}

// @Summary Conversation history
// @Tags Chat
// @Produce json
// @Param conversation_id path string true "Conversation id"
// @Success 200 {array} domain.HistoryEntry "ok"
// @Router /chat/{conversation_id}/history [get]
func (h *handlers) history(r *stdhttp.Request) (any, error) {
	id := chi.URLParam(r, "conversation_id")
	if id == "" {
		return nil, perr.InvalidArgf("conversation_id is required")
	}
	return h.svc.History(r.Context(), id)
}

// @Summary Clear conversation history
// @Tags Chat
// @Param conversation_id path string true "Conversation id"
// @Success 204 "cleared"
// @Router /chat/{conversation_id}/history [delete]
func (h *handlers) clear(r *stdhttp.Request) (any, error) {
	id := chi.URLParam(r, "conversation_id")
	if id == "" {
		return nil, perr.InvalidArgf("conversation_id is required")
	}
	if err := h.svc.ClearHistory(r.Context(), id); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}
