package attacks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-resize/images"
	"github.com/nvr-ai/go-resize/resize"
)

func grayImage(t *testing.T, w, h int, v byte) *images.Image {
	t.Helper()
	img, err := images.New(w, h, 1)
	require.NoError(t, err)
	for i := range img.Data {
		img.Data[i] = v
	}
	return img
}

func TestDiffMetricsKnownValues(t *testing.T) {
	a, err := images.FromData(4, 1, 1, []byte{0, 10, 20, 30})
	require.NoError(t, err)
	b, err := images.FromData(4, 1, 1, []byte{0, 12, 16, 30})
	require.NoError(t, err)

	m, err := DiffMetrics(a, b)
	require.NoError(t, err)

	// Diffs are 0, 2, 4, 0.
	assert.InDelta(t, 1.5, m.MAE, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0), m.RMSE, 1e-12)
	assert.InDelta(t, 20.0*math.Log10(255.0)-10.0*math.Log10(5.0), m.PSNR, 1e-12)
	assert.Equal(t, 4, m.MaxAbsDiff)
}

func TestDiffMetricsExactReconstruction(t *testing.T) {
	a, err := images.FromData(2, 2, 1, []byte{9, 9, 9, 9})
	require.NoError(t, err)

	m, err := DiffMetrics(a, a.Clone())
	require.NoError(t, err)
	assert.Zero(t, m.MAE)
	assert.Zero(t, m.RMSE)
	assert.Zero(t, m.MaxAbsDiff)
	assert.True(t, math.IsInf(m.PSNR, 1), "PSNR must be +Inf for an exact reconstruction")
}

func TestDiffMetricsShapeMismatch(t *testing.T) {
	a := grayImage(t, 4, 4, 1)
	b := grayImage(t, 4, 5, 1)
	_, err := DiffMetrics(a, b)
	assert.ErrorIs(t, err, images.ErrInvalidArgument)
}

// TestDownUpUniformGray runs the canonical scenario: a flat 100x100 gray
// buffer survives any down/up round trip untouched, because both kernels
// reproduce a constant signal exactly.
func TestDownUpUniformGray(t *testing.T) {
	src := grayImage(t, 100, 100, 128)

	pairs := []struct {
		down, up resize.Method
	}{
		{resize.MethodNearest, resize.MethodNearest},
		{resize.MethodBilinear, resize.MethodBilinear},
		{resize.MethodNearest, resize.MethodBilinear},
		{resize.MethodBilinear, resize.MethodNearest},
	}

	for _, p := range pairs {
		for _, backend := range []resize.Backend{resize.BackendSequential, resize.BackendParallel} {
			m, err := DownUp(src, 10, 10, p.down, p.up, backend, 4)
			require.NoError(t, err)
			assert.Zero(t, m.MAE, "%s/%s %s", p.down, p.up, backend)
			assert.Zero(t, m.RMSE, "%s/%s %s", p.down, p.up, backend)
			assert.Zero(t, m.MaxAbsDiff, "%s/%s %s", p.down, p.up, backend)
			assert.True(t, math.IsInf(m.PSNR, 1), "%s/%s %s", p.down, p.up, backend)
		}
	}
}

func TestDownUpLossyRoundTrip(t *testing.T) {
	// A sharp checkerboard cannot survive an 8x downscale; the metrics
	// must report real distortion.
	src, err := images.New(64, 64, 1)
	require.NoError(t, err)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if (x+y)%2 == 0 {
				src.Data[y*64+x] = 255
			}
		}
	}

	m, err := DownUp(src, 8, 8, resize.MethodBilinear, resize.MethodBilinear, resize.BackendSequential, 0)
	require.NoError(t, err)
	assert.Greater(t, m.MAE, 0.0)
	assert.Greater(t, m.RMSE, 0.0)
	assert.Greater(t, m.MaxAbsDiff, 0)
	assert.False(t, math.IsInf(m.PSNR, 1))
	assert.GreaterOrEqual(t, m.RMSE, m.MAE, "RMSE is always >= MAE")
}

func TestDownUpPreconditions(t *testing.T) {
	src := grayImage(t, 16, 16, 7)

	_, err := DownUp(nil, 4, 4, resize.MethodNearest, resize.MethodNearest, resize.BackendSequential, 0)
	assert.ErrorIs(t, err, images.ErrInvalidArgument)

	_, err = DownUp(src, 0, 4, resize.MethodNearest, resize.MethodNearest, resize.BackendSequential, 0)
	assert.ErrorIs(t, err, images.ErrInvalidArgument)

	_, err = DownUp(src, 4, -1, resize.MethodNearest, resize.MethodNearest, resize.BackendSequential, 0)
	assert.ErrorIs(t, err, images.ErrInvalidArgument)

	_, err = DownUp(src, 4, 4, resize.Method("area"), resize.MethodNearest, resize.BackendSequential, 0)
	assert.ErrorIs(t, err, images.ErrInvalidArgument)
}

func TestLanczosDownUpUniform(t *testing.T) {
	src := grayImage(t, 50, 50, 128)

	m, err := LanczosDownUp(src, 10, 10)
	require.NoError(t, err)
	assert.Zero(t, m.MaxAbsDiff, "a flat signal must survive the Lanczos baseline too")
	assert.True(t, math.IsInf(m.PSNR, 1))
}

func TestLanczosDownUpPreconditions(t *testing.T) {
	_, err := LanczosDownUp(&images.Image{}, 4, 4)
	assert.ErrorIs(t, err, images.ErrInvalidArgument)

	src := grayImage(t, 16, 16, 1)
	_, err = LanczosDownUp(src, 0, 4)
	assert.ErrorIs(t, err, images.ErrInvalidArgument)
}
