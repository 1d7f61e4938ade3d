package weakness

// Reason names a single weakness finding.
type Reason string

const (
	ReasonCommonPassword Reason = "common_password"
	ReasonAscendingPair  Reason = "ascending_sequence"
	ReasonTripleRepeat   Reason = "repeated_characters"
	ReasonWeakSubstring  Reason = "contains_common_password"
)

// Report lists every check a password fails.
type Report struct {
	CommonPassword bool `json:"commonPassword"`
	AscendingPair  bool `json:"ascendingPair"`
	TripleRepeat   bool `json:"tripleRepeat"`
	WeakSubstring  bool `json:"weakSubstring"`
}

// Inspect runs all checks against password and reports each one.
func Inspect(password string, set *Set) Report {
	runes := []rune(password)
	return Report{
		CommonPassword: set.Has(password),
		AscendingPair:  hasAscendingPair(runes),
		TripleRepeat:   hasTripleRepeat(runes),
		WeakSubstring:  ContainsWeakSubstring(password, set),
	}
}

// Weak reports whether any check failed.
func (r Report) Weak() bool {
	return r.CommonPassword || r.AscendingPair || r.TripleRepeat || r.WeakSubstring
}

// Reasons returns the failed checks in a stable order.
func (r Report) Reasons() []Reason {
	var reasons []Reason
	if r.CommonPassword {
		reasons = append(reasons, ReasonCommonPassword)
	}
	if r.AscendingPair {
		reasons = append(reasons, ReasonAscendingPair)
	}
	if r.TripleRepeat {
		reasons = append(reasons, ReasonTripleRepeat)
	}
	if r.WeakSubstring {
		reasons = append(reasons, ReasonWeakSubstring)
	}
	return reasons
}

// Describe returns a human-readable sentence for a reason.
func (r Reason) Describe() string {
	switch r {
	case ReasonCommonPassword:
		return "is a commonly used password"
	case ReasonAscendingPair:
		return "contains an ascending character sequence"
	case ReasonTripleRepeat:
		return "repeats a character three times in a row"
	case ReasonWeakSubstring:
		return "contains a commonly used password"
	default:
		return string(r)
	}
}
