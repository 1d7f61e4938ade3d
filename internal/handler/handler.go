package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/entropass/entropass/internal/config"
	"github.com/entropass/entropass/internal/logger"
	"github.com/entropass/entropass/internal/service"
)

// HealthChecker is a dependency that can report its health
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Handler holds all HTTP handlers
type Handler struct {
	svc    *service.PasswordService
	log    *logger.Logger
	cfg    *config.Config
	checks map[string]HealthChecker
}

// New creates a new Handler instance. checks maps a dependency name to its
// health check and may be empty.
func New(svc *service.PasswordService, log *logger.Logger, cfg *config.Config, checks map[string]HealthChecker) *Handler {
	if checks == nil {
		checks = map[string]HealthChecker{}
	}
	return &Handler{
		svc:    svc,
		log:    log.WithComponent("handler"),
		cfg:    cfg,
		checks: checks,
	}
}

// JSON helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	})
}

func readJSON(r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<16))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
