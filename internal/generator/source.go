package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/entropass/entropass/internal/charset"
)

// ErrRandomSource is returned when the random source cannot produce a value.
var ErrRandomSource = errors.New("random source failure")

// Source supplies the randomness the generator needs.
type Source interface {
	// ChooseOne returns a uniformly chosen member of pool.
	ChooseOne(pool charset.Pool) (rune, error)
	// Shuffle permutes chars in place uniformly at random.
	Shuffle(chars []rune) error
}

// CryptoSource draws from a cryptographically secure reader. The zero value
// uses crypto/rand and is safe for concurrent use.
type CryptoSource struct {
	// Reader overrides crypto/rand.Reader when set.
	Reader io.Reader
}

// NewCryptoSource returns a CryptoSource backed by crypto/rand.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{}
}

// ChooseOne implements Source.
func (s *CryptoSource) ChooseOne(pool charset.Pool) (rune, error) {
	if pool.Size() == 0 {
		return 0, fmt.Errorf("%w: empty pool", ErrRandomSource)
	}
	idx, err := s.intn(pool.Size())
	if err != nil {
		return 0, err
	}
	return pool.At(idx), nil
}

// Shuffle implements Source with a Fisher-Yates shuffle.
func (s *CryptoSource) Shuffle(chars []rune) error {
	for i := len(chars) - 1; i > 0; i-- {
		j, err := s.intn(i + 1)
		if err != nil {
			return err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}
	return nil
}

// intn returns a uniform random int in [0, n).
func (s *CryptoSource) intn(n int) (int, error) {
	r := s.Reader
	if r == nil {
		r = rand.Reader
	}
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return int(v.Int64()), nil
}
