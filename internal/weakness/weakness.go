// Package weakness detects predictable patterns in candidate passwords.
package weakness

import "strings"

// DefaultEntries are the commonly used passwords rejected out of the box.
var DefaultEntries = []string{
	"password", "123456", "12345678", "123456789", "qwerty",
	"abc123", "letmein", "admin", "welcome", "password1",
}

// Set is an immutable list of known-weak passwords, stored lowercase.
type Set struct {
	entries []string
	lookup  map[string]struct{}
}

// NewSet builds a Set from entries. Entries are lowercased and deduplicated;
// empty entries are ignored.
func NewSet(entries ...string) *Set {
	s := &Set{lookup: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		e = strings.ToLower(e)
		if e == "" {
			continue
		}
		if _, ok := s.lookup[e]; ok {
			continue
		}
		s.lookup[e] = struct{}{}
		s.entries = append(s.entries, e)
	}
	return s
}

var defaultSet = NewSet(DefaultEntries...)

// DefaultSet returns the shared set built from DefaultEntries.
func DefaultSet() *Set {
	return defaultSet
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return len(s.entries)
}

// Has reports whether the lowercased password is an entry.
func (s *Set) Has(password string) bool {
	_, ok := s.lookup[strings.ToLower(password)]
	return ok
}

// IsInsecure reports whether password is a known-weak password, contains an
// adjacent pair whose second code point is one above the first, or contains
// three identical characters in a row.
func IsInsecure(password string, set *Set) bool {
	if set.Has(password) {
		return true
	}
	runes := []rune(password)
	return hasAscendingPair(runes) || hasTripleRepeat(runes)
}

// ContainsWeakSubstring reports whether the lowercased password contains any
// entry of set.
func ContainsWeakSubstring(password string, set *Set) bool {
	lower := strings.ToLower(password)
	for _, e := range set.entries {
		if strings.Contains(lower, e) {
			return true
		}
	}
	return false
}

// Single step only: "ab" and "12" match, "ac" does not.
func hasAscendingPair(runes []rune) bool {
	for i := 0; i+1 < len(runes); i++ {
		if runes[i+1]-runes[i] == 1 {
			return true
		}
	}
	return false
}

func hasTripleRepeat(runes []rune) bool {
	for i := 0; i+2 < len(runes); i++ {
		if runes[i] == runes[i+1] && runes[i+1] == runes[i+2] {
			return true
		}
	}
	return false
}
