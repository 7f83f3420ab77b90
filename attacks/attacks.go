// Package attacks quantifies scaling-attack distortion: how much
// information a downscale->upscale round trip destroys for a given pair of
// interpolation methods. Large reconstruction error means scaling
// artifacts can hide or alter content.
package attacks

import (
	"fmt"
	"math"

	"github.com/nvr-ai/go-resize/images"
	"github.com/nvr-ai/go-resize/resize"
)

// Metrics captures the distortion between an original image and its
// reconstruction after a down/up round trip.
type Metrics struct {
	// MAE is the mean absolute error over all channel values.
	MAE float64 `json:"mae" yaml:"mae"`
	// RMSE is the root mean squared error over all channel values.
	RMSE float64 `json:"rmse" yaml:"rmse"`
	// PSNR is the peak signal-to-noise ratio in decibels. +Inf when the
	// reconstruction is exact.
	PSNR float64 `json:"psnr" yaml:"psnr"`
	// MaxAbsDiff is the largest single channel difference (0..255).
	MaxAbsDiff int `json:"maxAbsDiff" yaml:"maxAbsDiff"`
}

// DiffMetrics computes MAE, RMSE, PSNR and the max absolute difference
// between two images of identical shape.
func DiffMetrics(a, b *images.Image) (Metrics, error) {
	if a.Width != b.Width || a.Height != b.Height || a.Channels != b.Channels {
		return Metrics{}, fmt.Errorf("%w: shape mismatch %s vs %s",
			images.ErrInvalidArgument, a.String(), b.String())
	}
	n := len(a.Data)
	if n == 0 {
		return Metrics{}, fmt.Errorf("%w: empty images", images.ErrInvalidArgument)
	}

	var sumAbs, sumSq float64
	maxAbs := 0
	for i := 0; i < n; i++ {
		d := int(a.Data[i]) - int(b.Data[i])
		ad := d
		if ad < 0 {
			ad = -ad
		}
		sumAbs += float64(ad)
		sumSq += float64(d) * float64(d)
		if ad > maxAbs {
			maxAbs = ad
		}
	}

	mse := sumSq / float64(n)
	m := Metrics{
		MAE:        sumAbs / float64(n),
		RMSE:       math.Sqrt(mse),
		MaxAbsDiff: maxAbs,
	}
	if mse == 0 {
		m.PSNR = math.Inf(1)
	} else {
		const peak = 255.0
		m.PSNR = 20.0*math.Log10(peak) - 10.0*math.Log10(mse)
	}
	return m, nil
}

// DownUp downscales src to downW x downH with downMethod, upscales the
// result back to src's own dimensions with upMethod, and returns the
// distortion metrics between src and the reconstruction. The up target is
// src's shape by construction, so no separate shape check is needed.
//
// Arguments:
//   - src: The source image. Must be non-empty.
//   - downW: Downscale width, must be > 0.
//   - downH: Downscale height, must be > 0.
//   - downMethod: Interpolation used for the downscale.
//   - upMethod: Interpolation used for the upscale.
//   - backend: Execution backend used for both resizes.
//   - threads: Worker count for the parallel backend.
//
// Returns:
//   - Metrics: The round-trip distortion metrics.
//   - error: An invalid-argument error on malformed input.
func DownUp(
	src *images.Image,
	downW, downH int,
	downMethod, upMethod resize.Method,
	backend resize.Backend,
	threads int,
) (Metrics, error) {
	if src.Empty() {
		return Metrics{}, fmt.Errorf("%w: empty source image", images.ErrInvalidArgument)
	}
	if downW <= 0 || downH <= 0 {
		return Metrics{}, fmt.Errorf("%w: invalid downscale size %dx%d",
			images.ErrInvalidArgument, downW, downH)
	}

	down, err := resize.Resize(src, downW, downH, downMethod, backend, threads)
	if err != nil {
		return Metrics{}, fmt.Errorf("downscale: %w", err)
	}
	up, err := resize.Resize(down, src.Width, src.Height, upMethod, backend, threads)
	if err != nil {
		return Metrics{}, fmt.Errorf("upscale: %w", err)
	}

	return DiffMetrics(src, up)
}
