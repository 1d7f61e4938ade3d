package entropass

// GenerateRequest asks the server for a password. Nil fields use the server
// defaults.
type GenerateRequest struct {
	Letters          *int     `json:"letters,omitempty"`
	Symbols          *int     `json:"symbols,omitempty"`
	Numbers          *int     `json:"numbers,omitempty"`
	MinEntropyBits   *float64 `json:"minEntropyBits,omitempty"`
	ExcludeAmbiguous *bool    `json:"excludeAmbiguous,omitempty"`
	MaxAttempts      *int     `json:"maxAttempts,omitempty"`
}

// GenerateResponse is returned by Generate. Secure is false when the server
// gave up after MaxAttempts candidates; Password then holds the last one.
type GenerateResponse struct {
	Password         string  `json:"password"`
	EntropyBits      float64 `json:"entropyBits"`
	MinEntropyBits   float64 `json:"minEntropyBits"`
	Label            string  `json:"label"`
	Secure           bool    `json:"secure"`
	Attempts         int     `json:"attempts"`
	Length           int     `json:"length"`
	Letters          int     `json:"letters"`
	Symbols          int     `json:"symbols"`
	Numbers          int     `json:"numbers"`
	ExcludeAmbiguous bool    `json:"excludeAmbiguous"`
}

// CheckResponse lists the weaknesses found in a password.
type CheckResponse struct {
	Weak           bool     `json:"weak"`
	Reasons        []string `json:"reasons"`
	CommonPassword bool     `json:"commonPassword"`
	AscendingPair  bool     `json:"ascendingPair"`
	TripleRepeat   bool     `json:"tripleRepeat"`
	WeakSubstring  bool     `json:"weakSubstring"`
}

// Composition is a per-class character count.
type Composition struct {
	Letters int `json:"letters"`
	Symbols int `json:"symbols"`
	Numbers int `json:"numbers"`
}

// Policy describes the server's generation limits and defaults.
type Policy struct {
	MinLetters         int         `json:"minLetters"`
	MinSymbols         int         `json:"minSymbols"`
	MinNumbers         int         `json:"minNumbers"`
	MinLength          int         `json:"minLength"`
	ExcludeAmbiguous   bool        `json:"excludeAmbiguous"`
	LetterPoolSize     int         `json:"letterPoolSize"`
	SymbolPoolSize     int         `json:"symbolPoolSize"`
	NumberPoolSize     int         `json:"numberPoolSize"`
	Defaults           Composition `json:"defaults"`
	MinEntropyBits     float64     `json:"minEntropyBits"`
	DefaultEntropyBits float64     `json:"defaultEntropyBits"`
	MaxAttempts        int         `json:"maxAttempts"`
}

// Int returns a pointer to v, for optional request fields.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
