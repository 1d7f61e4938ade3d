// Package entropass is a Go client for the entropass password API.
package entropass

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Config holds the configuration for the client.
type Config struct {
	// BaseURL is the root URL of the entropass server.
	// Examples: "https://pw.example.com" or "https://pw.example.com/api/v1"
	// The "/api/v1" suffix is appended automatically if missing.
	BaseURL string

	// PolicyCacheTTL controls how long Policy responses are kept in memory.
	// Set to a negative value to disable caching.
	// Default: 5 minutes
	PolicyCacheTTL time.Duration

	// HTTPClient is an optional custom HTTP client.
	// If nil, a default client with 10s timeout is used.
	HTTPClient *http.Client
}

func (c *Config) defaults() {
	if c.PolicyCacheTTL == 0 {
		c.PolicyCacheTTL = 5 * time.Minute
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if !strings.HasSuffix(c.BaseURL, "/api/v1") {
		c.BaseURL = c.BaseURL + "/api/v1"
	}
}

// Client calls the entropass API.
type Client struct {
	cfg   Config
	cache *policyCache
}

// NewClient creates a new client with the given configuration.
func NewClient(cfg Config) *Client {
	cfg.defaults()
	return &Client{
		cfg:   cfg,
		cache: &policyCache{entries: make(map[bool]*cacheEntry)},
	}
}

// Generate asks the server for a new password.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	var resp GenerateResponse
	if err := c.do(ctx, http.MethodPost, "/passwords", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Check reports the weaknesses the server finds in password.
func (c *Client) Check(ctx context.Context, password string) (*CheckResponse, error) {
	var resp CheckResponse
	if err := c.do(ctx, http.MethodPost, "/passwords/check", map[string]string{"password": password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Policy returns the server's limits and defaults for the chosen pools.
// Results are cached according to PolicyCacheTTL.
func (c *Client) Policy(ctx context.Context, excludeAmbiguous bool) (*Policy, error) {
	if c.cfg.PolicyCacheTTL > 0 {
		if p, ok := c.cache.get(excludeAmbiguous); ok {
			return p, nil
		}
	}

	q := url.Values{"excludeAmbiguous": {strconv.FormatBool(excludeAmbiguous)}}
	var p Policy
	if err := c.do(ctx, http.MethodGet, "/passwords/policy?"+q.Encode(), nil, &p); err != nil {
		return nil, err
	}

	if c.cfg.PolicyCacheTTL > 0 {
		c.cache.set(excludeAmbiguous, &p, c.cfg.PolicyCacheTTL)
	}
	return &p, nil
}

// do sends a request and decodes a successful JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("entropass: failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("entropass: failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("entropass: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("entropass: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return parseAPIError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("entropass: failed to parse response: %w", err)
	}
	return nil
}

// policyCache keeps one Policy per pool choice.
type policyCache struct {
	mu      sync.RWMutex
	entries map[bool]*cacheEntry
}

type cacheEntry struct {
	policy    *Policy
	expiresAt time.Time
}

func (pc *policyCache) get(excludeAmbiguous bool) (*Policy, bool) {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	entry, ok := pc.entries[excludeAmbiguous]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.policy, true
}

func (pc *policyCache) set(excludeAmbiguous bool, p *Policy, ttl time.Duration) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.entries[excludeAmbiguous] = &cacheEntry{
		policy:    p,
		expiresAt: time.Now().Add(ttl),
	}
}
