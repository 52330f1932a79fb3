package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"reduce/internal/platform/net/middleware"
)

// StackOptions comes from CORE_WEB_*, zero values get defaults
type StackOptions struct {
	CORS        middleware.CORSOptions
	Timeout     time.Duration // 30s when unset
	SlowRequest time.Duration // access log warns at or above, 0 never
	MaxInFlight int           // 0 is unlimited
}

// CommonStack is the middleware every page and api route runs behind
func CommonStack(opts ...StackOptions) []func(http.Handler) http.Handler {
	var o StackOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}

	stack := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		// inside the access log so a panic is logged as a 500
		middleware.Recover,
		middleware.NoCache(),
		middleware.CORS(o.CORS),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight))
	}
	return stack
}
