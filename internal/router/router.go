package router

import (
	"net/http"

	"github.com/entropass/entropass/internal/handler"
	"github.com/entropass/entropass/internal/middleware"
)

// New creates and configures the HTTP router
func New(h *handler.Handler, mw *middleware.Middleware, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoints
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)

	mux.HandleFunc("GET /api/v1/{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"entropass API v1","version":"` + handler.Version + `"}`))
	})

	generateRateLimit := mw.RateLimit(mw.DefaultRateLimit("generate"))
	checkRateLimit := mw.RateLimit(mw.DefaultRateLimit("check"))

	mux.Handle("POST /api/v1/passwords", generateRateLimit(http.HandlerFunc(h.GeneratePassword)))
	mux.Handle("POST /api/v1/passwords/check", checkRateLimit(http.HandlerFunc(h.CheckPassword)))
	mux.HandleFunc("GET /api/v1/passwords/policy", h.GetPolicy)

	// Apply middleware stack
	var handler http.Handler = mux

	handler = mw.CORS(allowedOrigins)(handler)

	// Responses carry passwords, keep them out of caches
	handler = mw.SecurityHeaders(handler)

	handler = mw.Logger(handler)
	handler = mw.Timing(handler)
	handler = mw.RequestID(handler)

	// Panic recovery (outermost)
	handler = mw.Recover(handler)

	return handler
}
