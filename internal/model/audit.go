package model

import "time"

// Audit sources
const (
	SourceCLI  = "cli"
	SourceHTTP = "http"
)

// GenerationAudit records the metadata of one generation run. It never holds
// the generated password.
type GenerationAudit struct {
	ID               string    `json:"id"`
	RequestID        *string   `json:"requestId,omitempty"`
	Source           string    `json:"source"`
	Letters          int       `json:"letters"`
	Symbols          int       `json:"symbols"`
	Numbers          int       `json:"numbers"`
	ExcludeAmbiguous bool      `json:"excludeAmbiguous"`
	MinEntropyBits   float64   `json:"minEntropyBits"`
	EntropyBits      float64   `json:"entropyBits"`
	Secure           bool      `json:"secure"`
	Attempts         int       `json:"attempts"`
	ClientIP         *string   `json:"clientIp,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}
