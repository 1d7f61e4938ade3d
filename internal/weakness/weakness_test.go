package weakness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInsecure(t *testing.T) {
	set := DefaultSet()

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"common", "password", true},
		{"common mixed case", "PassWord", true},
		{"common digits", "123456", true},
		{"ascending letters embedded", "Zq#ab!9Kx$4m", true},
		{"ascending digits", "x#12", true},
		{"triple repeat", "aaa", true},
		{"triple repeat embedded", "K7#zzz!Q", true},
		{"random", "K7t#mQ9!xLz2", false},
		{"double repeat only", "Kk#zz!Q9", false},
		{"descending pair", "ba", false},
		{"two step pair", "ac", false},
		{"empty", "", false},
		{"single char", "a", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsInsecure(tc.password, set))
		})
	}
}

func TestContainsWeakSubstring(t *testing.T) {
	set := DefaultSet()

	assert.True(t, ContainsWeakSubstring("xx123456yy", set))
	assert.True(t, ContainsWeakSubstring("My#ADMIN!9", set))
	assert.True(t, ContainsWeakSubstring("letmein", set))
	assert.False(t, ContainsWeakSubstring("K7t#mQ9!xLz2", set))
	assert.False(t, ContainsWeakSubstring("", set))
}

func TestSubstringBroaderThanExactMatch(t *testing.T) {
	set := DefaultSet()

	// "qwerty" is embedded but the whole string is not an entry, and it has
	// no ascending pair or triple repeat.
	pw := "#qwerty9"
	assert.False(t, set.Has(pw))
	assert.True(t, ContainsWeakSubstring(pw, set))
}

func TestNewSet(t *testing.T) {
	set := NewSet("Hunter2", "hunter2", "", "TRUSTNO1")

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Has("trustno1"))
	assert.True(t, set.Has("HUNTER2"))
	assert.False(t, set.Has("hunter"))
}

func TestDefaultSet(t *testing.T) {
	set := DefaultSet()

	assert.Equal(t, len(DefaultEntries), set.Len())
	for _, e := range DefaultEntries {
		assert.True(t, set.Has(e))
	}
}

func TestInspect(t *testing.T) {
	set := DefaultSet()

	r := Inspect("password", set)
	assert.True(t, r.CommonPassword)
	assert.True(t, r.WeakSubstring)
	assert.False(t, r.TripleRepeat)
	assert.True(t, r.Weak())
	assert.Equal(t, []Reason{ReasonCommonPassword, ReasonWeakSubstring}, r.Reasons())

	r = Inspect("x111ab", set)
	assert.Equal(t, []Reason{ReasonAscendingPair, ReasonTripleRepeat}, r.Reasons())

	r = Inspect("K7t#mQ9!xLz2", set)
	assert.False(t, r.Weak())
	assert.Empty(t, r.Reasons())
}

func TestInspectAgreesWithIsInsecure(t *testing.T) {
	set := DefaultSet()
	for _, pw := range []string{"password", "aaa", "ab", "K7t#mQ9!xLz2", "zz#admin"} {
		r := Inspect(pw, set)
		insecure := r.CommonPassword || r.AscendingPair || r.TripleRepeat
		assert.Equal(t, IsInsecure(pw, set), insecure, pw)
	}
}

func TestReasonDescribe(t *testing.T) {
	assert.Equal(t, "is a commonly used password", ReasonCommonPassword.Describe())
	assert.Equal(t, "other", Reason("other").Describe())
}
