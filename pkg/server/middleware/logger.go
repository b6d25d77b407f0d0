package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Logger injects a request-scoped logger into the context. Handlers retrieve
// it with zerolog.Ctx. The request id comes from chi's RequestID middleware,
// which must run earlier in the chain.
func Logger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logCtx := logger.With().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("remote_ip", req.RemoteAddr)
			if reqID := chimiddleware.GetReqID(req.Context()); reqID != "" {
				logCtx = logCtx.Str("request_id", reqID)
			}
			reqLogger := logCtx.Logger()

			next.ServeHTTP(w, req.WithContext(reqLogger.WithContext(req.Context())))
		})
	}
}
