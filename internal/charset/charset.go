// Package charset builds the character pools passwords are drawn from.
package charset

import "strings"

// Base sets leave out glyphs that are easy to confuse with one another.
const (
	baseLetters = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"
	baseDigits  = "23456789"
	baseSymbols = "!#$%&*+@^~-_=?.,;:<>"
)

// Ambiguous subsets, added back when ambiguous characters are allowed.
const (
	ambiguousLetters = "lIOio"
	ambiguousDigits  = "01"
	ambiguousSymbols = "(){}[]/\\`'\""
)

// Pool is a set of distinct characters for one character class.
type Pool struct {
	chars []rune
	index map[rune]struct{}
}

// NewPool builds a pool from the given sets, dropping duplicates while
// keeping first-seen order.
func NewPool(sets ...string) Pool {
	p := Pool{index: make(map[rune]struct{})}
	for _, set := range sets {
		for _, r := range set {
			if _, ok := p.index[r]; ok {
				continue
			}
			p.index[r] = struct{}{}
			p.chars = append(p.chars, r)
		}
	}
	return p
}

// Size returns the number of distinct characters in the pool.
func (p Pool) Size() int {
	return len(p.chars)
}

// At returns the i-th character of the pool.
func (p Pool) At(i int) rune {
	return p.chars[i]
}

// Contains reports whether r is a member of the pool.
func (p Pool) Contains(r rune) bool {
	_, ok := p.index[r]
	return ok
}

// String returns the pool members as a string.
func (p Pool) String() string {
	var sb strings.Builder
	sb.Grow(len(p.chars))
	for _, r := range p.chars {
		sb.WriteRune(r)
	}
	return sb.String()
}

// Pools holds the three character classes a password is composed of.
type Pools struct {
	Letters Pool
	Digits  Pool
	Symbols Pool
}

// BuildPools returns the letter, digit and symbol pools. Ambiguous characters
// are included unless excludeAmbiguous is set.
func BuildPools(excludeAmbiguous bool) Pools {
	if excludeAmbiguous {
		return Pools{
			Letters: NewPool(baseLetters),
			Digits:  NewPool(baseDigits),
			Symbols: NewPool(baseSymbols),
		}
	}
	return Pools{
		Letters: NewPool(baseLetters, ambiguousLetters),
		Digits:  NewPool(baseDigits, ambiguousDigits),
		Symbols: NewPool(baseSymbols, ambiguousSymbols),
	}
}
