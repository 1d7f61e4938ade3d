// Package entropy estimates the information content of a password composition.
package entropy

import "math"

// EstimateBits returns the entropy in bits of a password with the given
// number of letters, symbols and numbers drawn from pools of the given sizes.
//
// The estimate is the log2 of the multinomial coefficient
// total!/(nLetters! nSymbols! nNumbers!), which counts the arrangements of the
// three classes, plus the log2 of the per-position choices within each class.
// Log-gamma keeps it finite for large counts.
func EstimateBits(nLetters, nSymbols, nNumbers, letterPool, symbolPool, numberPool int) float64 {
	total := nLetters + nSymbols + nNumbers
	if total == 0 {
		return 0
	}

	logMultinomial := (lgamma(total+1) - lgamma(nLetters+1) - lgamma(nSymbols+1) - lgamma(nNumbers+1)) / math.Ln2

	logChoices := choices(nLetters, letterPool) +
		choices(nSymbols, symbolPool) +
		choices(nNumbers, numberPool)

	return logMultinomial + logChoices
}

// Label describes bits relative to the required minimum.
func Label(bits, minBits float64) string {
	if bits >= minBits {
		return "Secure"
	}
	return "Weak"
}

func lgamma(n int) float64 {
	v, _ := math.Lgamma(float64(n))
	return v
}

// choices returns n*log2(poolSize). An empty class contributes nothing even
// when its pool is empty.
func choices(n, poolSize int) float64 {
	if n == 0 {
		return 0
	}
	return float64(n) * math.Log2(float64(poolSize))
}
