package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-resize/images"
	"github.com/nvr-ai/go-resize/resize"
)

func patternImage(t *testing.T, w, h, c int) *images.Image {
	t.Helper()
	img, err := images.New(w, h, c)
	require.NoError(t, err)
	for i := range img.Data {
		img.Data[i] = byte((i*37 + 11) % 256)
	}
	return img
}

func TestCompareIdentical(t *testing.T) {
	a := patternImage(t, 8, 6, 3)
	b := a.Clone()

	stats, err := Compare(a, b)
	require.NoError(t, err)
	assert.True(t, stats.Identical())
	assert.Equal(t, uint64(0), stats.DifferentValues)
	assert.Equal(t, 0, stats.MaxAbsDiff)
}

func TestCompareCountsAndMax(t *testing.T) {
	a := patternImage(t, 4, 4, 1)
	b := a.Clone()

	// Introduce three known differences: +1, -5 and a 200-step jump.
	b.Data[0] = a.Data[0] + 1
	b.Data[7] = a.Data[7] - 5
	a.Data[12] = 10
	b.Data[12] = 210

	stats, err := Compare(a, b)
	require.NoError(t, err)
	assert.False(t, stats.Identical())
	assert.Equal(t, uint64(3), stats.DifferentValues)
	assert.Equal(t, 200, stats.MaxAbsDiff)
}

func TestCompareShapeMismatch(t *testing.T) {
	a := patternImage(t, 4, 4, 1)

	tests := []struct {
		name string
		b    *images.Image
	}{
		{name: "width", b: patternImage(t, 5, 4, 1)},
		{name: "height", b: patternImage(t, 4, 3, 1)},
		{name: "channels", b: patternImage(t, 4, 4, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compare(a, tt.b)
			require.Error(t, err)
			assert.ErrorIs(t, err, images.ErrInvalidArgument)
		})
	}
}

func TestCompareHasNoSideEffects(t *testing.T) {
	a := patternImage(t, 6, 6, 4)
	b := patternImage(t, 6, 6, 4)
	aBefore := append([]byte(nil), a.Data...)
	bBefore := append([]byte(nil), b.Data...)

	_, err := Compare(a, b)
	require.NoError(t, err)
	assert.Equal(t, aBefore, a.Data)
	assert.Equal(t, bBefore, b.Data)
}

// TestCompareBackends certifies the cross-backend equivalence contract for
// every method and a spread of thread counts, including more workers than
// output rows.
func TestCompareBackends(t *testing.T) {
	img := patternImage(t, 31, 27, 3)

	for _, method := range []resize.Method{resize.MethodNearest, resize.MethodBilinear} {
		for _, threads := range []int{0, 1, 2, 8} {
			stats, err := CompareBackends(img, 44, 19, method, threads)
			require.NoError(t, err)
			assert.True(t, stats.Identical(),
				"%s with %d threads differs from sequential: %+v", method, threads, stats)
		}
	}

	// Tiny output, many workers.
	stats, err := CompareBackends(img, 5, 2, resize.MethodBilinear, 16)
	require.NoError(t, err)
	assert.True(t, stats.Identical())
}

func TestCompareBackendsPropagatesInvalidArguments(t *testing.T) {
	img := patternImage(t, 8, 8, 1)

	_, err := CompareBackends(img, 0, 4, resize.MethodNearest, 2)
	assert.ErrorIs(t, err, images.ErrInvalidArgument)

	_, err = CompareBackends(img, 4, 4, resize.Method("area"), 2)
	assert.ErrorIs(t, err, images.ErrInvalidArgument)
}
