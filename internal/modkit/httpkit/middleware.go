package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"paychat/internal/platform/net/middleware"
)

// CommonStack is the baseline middleware every API scope gets.
// Compose extras on top in main when a deployment needs them.
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// correlation first so everything downstream sees the ids
		middleware.RequestID(),
		middleware.RealIP(),

		middleware.RecoverJSON,
		middleware.NoCache(),

		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: 500 * time.Millisecond}),

		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
