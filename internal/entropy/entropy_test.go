package entropy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateBitsZeroTotal(t *testing.T) {
	assert.Equal(t, 0.0, EstimateBits(0, 0, 0, 47, 20, 8))
	assert.Equal(t, 0.0, EstimateBits(0, 0, 0, 0, 0, 0))
}

func TestEstimateBitsGolden(t *testing.T) {
	// 8!/(4!2!2!) = 420 arrangements.
	want := math.Log2(420) + 4*math.Log2(46) + 2*math.Log2(20) + 2*math.Log2(8)

	got := EstimateBits(4, 2, 2, 46, 20, 8)
	assert.InDelta(t, want, got, 1e-6)
	assert.InDelta(t, 45.4523495316689, got, 1e-6)
}

func TestEstimateBitsMinimumComposition(t *testing.T) {
	// 12!/(4!2!6!) = 13860
	want := math.Log2(13860) + 4*math.Log2(47) + 2*math.Log2(20) + 6*math.Log2(8)

	assert.InDelta(t, want, EstimateBits(4, 2, 6, 47, 20, 8), 1e-6)
}

func TestEstimateBitsMonotonic(t *testing.T) {
	pools := [][3]int{{47, 20, 8}, {52, 31, 10}, {2, 2, 2}}
	for _, p := range pools {
		for l := 4; l < 40; l++ {
			for s := 2; s < 20; s += 3 {
				for n := 2; n < 20; n += 3 {
					base := EstimateBits(l, s, n, p[0], p[1], p[2])
					require.GreaterOrEqual(t, EstimateBits(l+1, s, n, p[0], p[1], p[2]), base)
					require.GreaterOrEqual(t, EstimateBits(l, s+1, n, p[0], p[1], p[2]), base)
					require.GreaterOrEqual(t, EstimateBits(l, s, n+1, p[0], p[1], p[2]), base)
				}
			}
		}
	}
}

func TestEstimateBitsLargeCountsFinite(t *testing.T) {
	bits := EstimateBits(500, 400, 300, 52, 31, 10)

	assert.False(t, math.IsInf(bits, 0))
	assert.False(t, math.IsNaN(bits))
	assert.Greater(t, bits, 0.0)
}

func TestEstimateBitsSingleClass(t *testing.T) {
	// One class means one arrangement, so only the choices count.
	assert.InDelta(t, 10*math.Log2(47), EstimateBits(10, 0, 0, 47, 0, 0), 1e-9)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Secure", Label(60, 60))
	assert.Equal(t, "Secure", Label(80.5, 60))
	assert.Equal(t, "Weak", Label(59.9, 60))
}
