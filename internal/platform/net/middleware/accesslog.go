// Package middleware holds chi adapters and in house middlewares.
package middleware

import (
	"net/http"
	"time"

	"paychat/internal/platform/logger"
)

// AccessLogOptions tunes the zerolog access log
type AccessLogOptions struct {
	// Slow promotes requests taking >= Slow to warn level, 0 disables
	Slow time.Duration
}

// statusWriter records the status and byte count a handler produced
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	n, err := sw.ResponseWriter.Write(b)
	if n > 0 {
		sw.bytes += n
	}
	return n, err
}

// AccessLogZerolog emits one line per request: method, path, status,
// elapsed, bytes. Uses the request scoped logger so ids come along.
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(sw, r)

			elapsed := time.Since(start)
			log := logger.C(r.Context())
			evt := log.Info()
			if opt.Slow > 0 && elapsed >= opt.Slow {
				evt = log.Warn()
			}
			evt.Int("status", sw.status).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("bytes", sw.bytes).
				Msg("request done")
		})
	}
}
