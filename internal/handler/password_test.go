package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entropass/entropass/internal/config"
	"github.com/entropass/entropass/internal/logger"
	"github.com/entropass/entropass/internal/service"
)

type stubCheck struct{ err error }

func (s stubCheck) HealthCheck(context.Context) error { return s.err }

func newTestHandler(checks map[string]HealthChecker) *Handler {
	cfg := &config.Config{
		Generator: config.GeneratorConfig{
			Letters:          8,
			Symbols:          2,
			Numbers:          2,
			MinEntropyBits:   40,
			MaxAttempts:      100,
			ExcludeAmbiguous: true,
		},
	}
	svc := service.NewPasswordService(nil, nil, cfg.Generator, logger.Nop())
	return New(svc, logger.Nop(), cfg, checks)
}

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestGeneratePassword(t *testing.T) {
	h := newTestHandler(nil)

	rec := post(h.GeneratePassword, `{"letters":6,"symbols":3,"numbers":4,"minEntropyBits":20}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Secure)
	assert.Equal(t, "Secure", resp.Label)
	assert.Equal(t, 13, resp.Length)
	assert.Len(t, []rune(resp.Password), 13)
	assert.Equal(t, 6, resp.Letters)
	assert.Equal(t, 3, resp.Symbols)
	assert.Equal(t, 4, resp.Numbers)
	assert.True(t, resp.ExcludeAmbiguous)
	assert.GreaterOrEqual(t, resp.Attempts, 1)
}

func TestGeneratePasswordDefaults(t *testing.T) {
	h := newTestHandler(nil)

	rec := post(h.GeneratePassword, `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Length)
	assert.Equal(t, 40.0, resp.MinEntropyBits)
}

func TestGeneratePasswordExhausted(t *testing.T) {
	h := newTestHandler(nil)

	rec := post(h.GeneratePassword, `{"minEntropyBits":10000,"maxAttempts":100}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Secure)
	assert.Equal(t, "Weak", resp.Label)
	assert.Equal(t, 100, resp.Attempts)
}

func TestGeneratePasswordErrors(t *testing.T) {
	h := newTestHandler(nil)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"invalid composition", `{"letters":2}`, "invalid_composition"},
		{"too short", `{"letters":4,"symbols":2,"numbers":2}`, "invalid_composition"},
		{"too long", `{"letters":1020,"symbols":3,"numbers":2}`, "invalid_composition"},
		{"oversized class", `{"letters":4000000000000000000,"symbols":2,"numbers":2}`, "invalid_composition"},
		{"attempts above limit", `{"maxAttempts":1001}`, "invalid_request"},
		{"malformed", `{"letters":`, "invalid_request"},
		{"unknown field", `{"length":20}`, "invalid_request"},
		{"attempts out of range", `{"maxAttempts":0}`, "invalid_request"},
		{"empty body", ``, "invalid_request"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(h.GeneratePassword, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.code, resp["error"]["code"])
		})
	}
}

func TestCheckPassword(t *testing.T) {
	h := newTestHandler(nil)

	rec := post(h.CheckPassword, `{"password":"xx123456yy"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Weak)
	assert.True(t, resp.WeakSubstring)
	assert.Contains(t, resp.Reasons, "contains_common_password")

	rec = post(h.CheckPassword, `{"password":"K7t#mQ9!xLz2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Weak)
	assert.Empty(t, resp.Reasons)

	rec = post(h.CheckPassword, `{"password":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPolicy(t *testing.T) {
	h := newTestHandler(nil)

	rec := httptest.NewRecorder()
	h.GetPolicy(rec, httptest.NewRequest(http.MethodGet, "/?excludeAmbiguous=false", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var policy service.Policy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &policy))
	assert.False(t, policy.ExcludeAmbiguous)
	assert.Equal(t, 52, policy.LetterPoolSize)
	assert.Equal(t, 12, policy.MinLength)

	rec = httptest.NewRecorder()
	h.GetPolicy(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &policy))
	assert.True(t, policy.ExcludeAmbiguous)

	rec = httptest.NewRecorder()
	h.GetPolicy(rec, httptest.NewRequest(http.MethodGet, "/?excludeAmbiguous=maybe", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(map[string]HealthChecker{"redis": stubCheck{}})
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Services["redis"])

	h = newTestHandler(map[string]HealthChecker{"redis": stubCheck{}, "postgres": stubCheck{err: errors.New("down")}})
	rec = httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "unhealthy", resp.Services["postgres"])
}

func TestReady(t *testing.T) {
	h := newTestHandler(nil)
	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	h = newTestHandler(map[string]HealthChecker{"redis": stubCheck{err: errors.New("down")}})
	rec = httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "redis not ready")
}

func TestGeneratePasswordMaximumLength(t *testing.T) {
	h := newTestHandler(nil)

	rec := post(h.GeneratePassword, `{"letters":1000,"symbols":12,"numbers":12,"minEntropyBits":20}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1024, resp.Length)
}

func TestGeneratePasswordClientGone(t *testing.T) {
	h := newTestHandler(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"minEntropyBits":10000,"maxAttempts":1000}`)).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.GeneratePassword(rec, req)

	assert.Empty(t, rec.Body.String())
}
