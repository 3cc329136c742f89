package middleware

import (
	stdjson "encoding/json"
	stdhttp "net/http"
	"runtime/debug"
	"strings"

	perr "paychat/internal/platform/errors"
	"paychat/internal/platform/logger"
	pnet "paychat/internal/platform/net"
)

type panicWire struct {
	StatusCode     int    `json:"status_code"`
	Status         string `json:"status"`
	Error          string `json:"error,omitempty"`
	RequestID      string `json:"request_id,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// RecoverJSON catches panics, logs the stack with the request ids, and
// answers with a JSON 500 carrying those same ids.
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			reqID := pnet.RequestID(r.Context())
			convID := pnet.ConversationID(r.Context())

			// indent the stack the way chi's recoverer does
			stack := strings.Join(strings.Split(string(debug.Stack()), "\n"), "\n\t")

			log := logger.C(r.Context())
			if log == nil {
				log = logger.Named("http")
			}
			log.Error().
				Str("request_id", reqID).
				Str("conversation_id", convID).
				Interface("panic", v).
				Msgf("panic recovered\n%s", stack)

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}

			body := panicWire{
				StatusCode:     stdhttp.StatusInternalServerError,
				Status:         stdhttp.StatusText(stdhttp.StatusInternalServerError),
				Error:          perr.Root(perr.PanicErrf("panic recovered")).Error(),
				RequestID:      reqID,
				ConversationID: convID,
			}

			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(stdhttp.StatusInternalServerError)
			_ = stdjson.NewEncoder(w).Encode(body)
		}()
		next.ServeHTTP(w, r)
	})
}
