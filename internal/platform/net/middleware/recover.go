package middleware

import (
	"net/http"
	"runtime/debug"

	perr "reduce/internal/platform/errors"
	"reduce/internal/platform/logger"
	pnet "reduce/internal/platform/net"
	phttp "reduce/internal/platform/net/http"
)

// Recover turns a handler panic into a 500 envelope and logs the stack
// http.ErrAbortHandler is re-raised so the server can drop the connection
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			reqID := pnet.RequestID(r.Context())
			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			phttp.JSON(w, http.StatusInternalServerError, phttp.Envelope{
				StatusCode: http.StatusInternalServerError,
				Status:     http.StatusText(http.StatusInternalServerError),
				Code:       perr.ErrorCodePanic,
				Error:      phttp.GenericErrorMessage,
				RequestID:  reqID,
			})
		}()
		next.ServeHTTP(w, r)
	})
}
