// Package generator produces passwords that meet an entropy target and pass
// the weakness checks.
package generator

import (
	"context"
	"fmt"

	"github.com/entropass/entropass/internal/charset"
	"github.com/entropass/entropass/internal/entropy"
	"github.com/entropass/entropass/internal/weakness"
)

const (
	// DefaultMaxAttempts is the number of candidates tried before giving up.
	DefaultMaxAttempts = 100

	// MaxAttemptsLimit is the highest attempt limit callers may ask for.
	MaxAttemptsLimit = 1000
)

// Result is the outcome of one generation run. Secure is false when no
// candidate was accepted within the attempt limit; Password then holds the
// last candidate generated.
type Result struct {
	Password    string  `json:"password"`
	EntropyBits float64 `json:"entropyBits"`
	Secure      bool    `json:"secure"`
	Attempts    int     `json:"attempts"`
}

// Generator runs the generate-and-validate loop over fixed pools.
type Generator struct {
	pools       charset.Pools
	weak        *weakness.Set
	src         Source
	maxAttempts int
}

// Option configures a Generator.
type Option func(*Generator)

// WithMaxAttempts sets the attempt limit. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n >= 1 {
			g.maxAttempts = n
		}
	}
}

// New creates a Generator. A nil weak set means DefaultSet and a nil source
// means a CryptoSource.
func New(pools charset.Pools, weak *weakness.Set, src Source, opts ...Option) *Generator {
	if weak == nil {
		weak = weakness.DefaultSet()
	}
	if src == nil {
		src = NewCryptoSource()
	}
	g := &Generator{
		pools:       pools,
		weak:        weak,
		src:         src,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// MaxAttempts returns the attempt limit.
func (g *Generator) MaxAttempts() int {
	return g.maxAttempts
}

// Generate draws candidates for comp until one reaches minEntropyBits and
// passes the weakness checks, or the attempt limit is reached. Exhausting the
// limit is not an error: the last candidate is returned with Secure false.
// The loop stops with ctx's error once ctx is done.
func (g *Generator) Generate(ctx context.Context, comp Composition, minEntropyBits float64) (*Result, error) {
	if err := comp.Validate(); err != nil {
		return nil, err
	}

	// Pools are fixed, so every candidate scores the same.
	bits := entropy.EstimateBits(
		comp.Letters, comp.Symbols, comp.Numbers,
		g.pools.Letters.Size(), g.pools.Symbols.Size(), g.pools.Digits.Size(),
	)

	var candidate string
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("attempt %d: %w", attempt, err)
		}

		chars, err := g.candidate(comp)
		if err != nil {
			return nil, fmt.Errorf("attempt %d: %w", attempt, err)
		}
		candidate = string(chars)

		if g.accept(candidate, bits, minEntropyBits) {
			return &Result{
				Password:    candidate,
				EntropyBits: bits,
				Secure:      true,
				Attempts:    attempt,
			}, nil
		}
	}

	return &Result{
		Password:    candidate,
		EntropyBits: bits,
		Secure:      false,
		Attempts:    g.maxAttempts,
	}, nil
}

func (g *Generator) accept(candidate string, bits, minEntropyBits float64) bool {
	return bits >= minEntropyBits &&
		!weakness.IsInsecure(candidate, g.weak) &&
		!weakness.ContainsWeakSubstring(candidate, g.weak)
}

// candidate draws each class independently and shuffles the result.
func (g *Generator) candidate(comp Composition) ([]rune, error) {
	chars := make([]rune, 0, comp.Total())

	var err error
	if chars, err = g.draw(chars, g.pools.Letters, comp.Letters); err != nil {
		return nil, err
	}
	if chars, err = g.draw(chars, g.pools.Symbols, comp.Symbols); err != nil {
		return nil, err
	}
	if chars, err = g.draw(chars, g.pools.Digits, comp.Numbers); err != nil {
		return nil, err
	}

	if err := g.src.Shuffle(chars); err != nil {
		return nil, err
	}
	return chars, nil
}

func (g *Generator) draw(dst []rune, pool charset.Pool, n int) ([]rune, error) {
	for i := 0; i < n; i++ {
		r, err := g.src.ChooseOne(pool)
		if err != nil {
			return nil, err
		}
		dst = append(dst, r)
	}
	return dst, nil
}
