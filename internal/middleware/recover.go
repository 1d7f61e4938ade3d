package middleware

import (
	"net/http"
	"runtime/debug"
)

// Recover turns a panic into a 500 JSON error. It sits outside RequestID, so
// the request ID is read back from the response header.
func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			m.log.WithRequestID(w.Header().Get("X-Request-ID")).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Cache-Control", "no-store")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"code":"internal_server_error","message":"An unexpected error occurred"}}` + "\n"))
		}()

		next.ServeHTTP(w, r)
	})
}
