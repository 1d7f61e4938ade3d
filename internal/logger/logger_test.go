package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestGenerationSecure(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", "json", &buf)

	log.Generation(GenerationEvent{Letters: 4, Symbols: 2, Numbers: 6, MinEntropyBits: 40, EntropyBits: 62.6, Secure: true, Attempts: 2})

	entry := decodeLine(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "password generated", entry["message"])
	assert.Equal(t, float64(2), entry["attempts"])
	assert.Equal(t, true, entry["secure"])
	assert.NotContains(t, entry, "password")
}

func TestGenerationExhaustedIsWarning(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", "json", &buf)

	log.Generation(GenerationEvent{Letters: 4, Symbols: 2, Numbers: 6, MinEntropyBits: 10000, Secure: false, Attempts: 100})

	entry := decodeLine(t, &buf)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, false, entry["secure"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("warn", "json", &buf)

	log.HTTPRequest("GET", "/health", 200, time.Millisecond, "127.0.0.1")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("shown")
	assert.NotZero(t, buf.Len())
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("loud", "json", &buf)

	log.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())
	log.Info().Msg("shown")
	assert.NotZero(t, buf.Len())
}

func TestWithComponentAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", "json", &buf).WithComponent("password_service").WithRequestID("req-1")

	log.Info().Msg("hello")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "password_service", entry["component"])
	assert.Equal(t, "req-1", entry["request_id"])
}
