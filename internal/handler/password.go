package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/entropass/entropass/internal/generator"
	"github.com/entropass/entropass/internal/middleware"
	"github.com/entropass/entropass/internal/model"
	"github.com/entropass/entropass/internal/service"
	"github.com/entropass/entropass/internal/weakness"
)

// GenerateRequest is the body of POST /api/v1/passwords. Omitted fields use
// the server defaults.
type GenerateRequest struct {
	Letters          *int     `json:"letters,omitempty"`
	Symbols          *int     `json:"symbols,omitempty"`
	Numbers          *int     `json:"numbers,omitempty"`
	MinEntropyBits   *float64 `json:"minEntropyBits,omitempty"`
	ExcludeAmbiguous *bool    `json:"excludeAmbiguous,omitempty"`
	MaxAttempts      *int     `json:"maxAttempts,omitempty"`
}

// GenerateResponse is the result of a generation run
type GenerateResponse struct {
	Password         string  `json:"password"`
	EntropyBits      float64 `json:"entropyBits"`
	MinEntropyBits   float64 `json:"minEntropyBits"`
	Label            string  `json:"label"`
	Secure           bool    `json:"secure"`
	Attempts         int     `json:"attempts"`
	Length           int     `json:"length"`
	Letters          int     `json:"letters"`
	Symbols          int     `json:"symbols"`
	Numbers          int     `json:"numbers"`
	ExcludeAmbiguous bool    `json:"excludeAmbiguous"`
}

// CheckRequest is the body of POST /api/v1/passwords/check
type CheckRequest struct {
	Password string `json:"password"`
}

// CheckResponse reports the weakness findings for a password
type CheckResponse struct {
	Weak    bool     `json:"weak"`
	Reasons []string `json:"reasons"`
	weakness.Report
}

// GeneratePassword handles POST /api/v1/passwords
func (h *Handler) GeneratePassword(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.MaxAttempts != nil && (*req.MaxAttempts < 1 || *req.MaxAttempts > generator.MaxAttemptsLimit) {
		writeError(w, http.StatusBadRequest, "invalid_request", "maxAttempts must be between 1 and "+strconv.Itoa(generator.MaxAttemptsLimit))
		return
	}

	out, err := h.svc.Generate(r.Context(), service.GenerateInput{
		Letters:          req.Letters,
		Symbols:          req.Symbols,
		Numbers:          req.Numbers,
		MinEntropyBits:   req.MinEntropyBits,
		ExcludeAmbiguous: req.ExcludeAmbiguous,
		MaxAttempts:      req.MaxAttempts,
		Source:           model.SourceHTTP,
		RequestID:        middleware.GetRequestID(r.Context()),
		ClientIP:         middleware.ClientIP(r),
	})
	if err != nil {
		if errors.Is(err, generator.ErrInvalidComposition) {
			writeError(w, http.StatusBadRequest, "invalid_composition", err.Error())
			return
		}
		if r.Context().Err() != nil {
			// client went away, nobody is left to answer
			h.log.Debug().Err(err).Str("request_id", middleware.GetRequestID(r.Context())).Msg("password generation cancelled")
			return
		}
		h.log.Error().Err(err).Str("request_id", middleware.GetRequestID(r.Context())).Msg("password generation failed")
		writeError(w, http.StatusInternalServerError, "generation_failed", "Password generation failed")
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		Password:         out.Password,
		EntropyBits:      out.EntropyBits,
		MinEntropyBits:   out.MinEntropyBits,
		Label:            out.Label,
		Secure:           out.Secure,
		Attempts:         out.Attempts,
		Length:           out.Length,
		Letters:          out.Composition.Letters,
		Symbols:          out.Composition.Symbols,
		Numbers:          out.Composition.Numbers,
		ExcludeAmbiguous: out.ExcludeAmbiguous,
	})
}

// CheckPassword handles POST /api/v1/passwords/check
func (h *Handler) CheckPassword(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "password is required")
		return
	}

	report := h.svc.Check(req.Password)
	reasons := make([]string, 0, 4)
	for _, reason := range report.Reasons() {
		reasons = append(reasons, string(reason))
	}

	writeJSON(w, http.StatusOK, CheckResponse{
		Weak:    report.Weak(),
		Reasons: reasons,
		Report:  report,
	})
}

// GetPolicy handles GET /api/v1/passwords/policy
func (h *Handler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	exclude := h.svc.DefaultExcludeAmbiguous()
	if v := r.URL.Query().Get("excludeAmbiguous"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "excludeAmbiguous must be a boolean")
			return
		}
		exclude = parsed
	}

	writeJSON(w, http.StatusOK, h.svc.Policy(exclude))
}
