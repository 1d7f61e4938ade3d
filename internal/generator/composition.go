package generator

import (
	"errors"
	"fmt"
)

// Composition minimums.
const (
	MinLetters = 4
	MinSymbols = 2
	MinNumbers = 2
	MinLength  = 12

	// MaxLength bounds both each class and the total.
	MaxLength = 1024
)

// ErrInvalidComposition is returned when a composition is outside the bounds.
var ErrInvalidComposition = errors.New("invalid composition")

// Composition is the number of characters requested from each class.
type Composition struct {
	Letters int `json:"letters"`
	Symbols int `json:"symbols"`
	Numbers int `json:"numbers"`
}

// Total returns the password length the composition describes.
func (c Composition) Total() int {
	return c.Letters + c.Symbols + c.Numbers
}

// Validate checks the per-class minimums and the total length bounds. Each
// class is bounded before the total is taken, so Total cannot overflow.
func (c Composition) Validate() error {
	if c.Letters < MinLetters || c.Symbols < MinSymbols || c.Numbers < MinNumbers {
		return fmt.Errorf("%w: need at least %d letters, %d symbols and %d numbers, got %d, %d and %d",
			ErrInvalidComposition, MinLetters, MinSymbols, MinNumbers, c.Letters, c.Symbols, c.Numbers)
	}
	if c.Letters > MaxLength || c.Symbols > MaxLength || c.Numbers > MaxLength {
		return fmt.Errorf("%w: at most %d characters per class", ErrInvalidComposition, MaxLength)
	}
	total := c.Total()
	if total < MinLength {
		return fmt.Errorf("%w: minimum total length is %d, got %d", ErrInvalidComposition, MinLength, total)
	}
	if total > MaxLength {
		return fmt.Errorf("%w: maximum total length is %d, got %d", ErrInvalidComposition, MaxLength, total)
	}
	return nil
}
