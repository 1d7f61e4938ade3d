package entropass

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error codes returned by the entropass API.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeInvalidComposition = "invalid_composition"
	CodeRateLimited        = "rate_limit_exceeded"
	CodeGenerationFailed   = "generation_failed"
)

// APIError represents an error response from the entropass API.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("entropass: API error %d [%s]: %s", e.StatusCode, e.Code, e.Message)
}

// apiErrorWrapper matches the API error envelope.
type apiErrorWrapper struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func parseAPIError(statusCode int, body []byte) error {
	var wrapper apiErrorWrapper
	if err := json.Unmarshal(body, &wrapper); err == nil && wrapper.Error.Code != "" {
		return &APIError{
			StatusCode: statusCode,
			Code:       wrapper.Error.Code,
			Message:    wrapper.Error.Message,
		}
	}

	return &APIError{
		StatusCode: statusCode,
		Code:       "unknown",
		Message:    string(body),
	}
}

// IsAPIError checks whether err is or wraps an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsRateLimited reports whether err is a rate limit rejection.
func IsRateLimited(err error) bool {
	apiErr, ok := IsAPIError(err)
	return ok && apiErr.Code == CodeRateLimited
}
