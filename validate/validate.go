// Package validate compares images produced by different resize backends
// and reports how far apart they are. It is the tool used to certify that
// the sequential and parallel execution paths stay numerically identical.
package validate

import (
	"fmt"

	"github.com/nvr-ai/go-resize/images"
	"github.com/nvr-ai/go-resize/resize"
)

// DiffStats summarizes the channel-value differences between two images of
// equal shape.
type DiffStats struct {
	// DifferentValues is the number of channel positions whose absolute
	// difference is nonzero.
	DifferentValues uint64 `json:"differentValues" yaml:"differentValues"`
	// MaxAbsDiff is the largest |a-b| over all channel positions (0..255).
	MaxAbsDiff int `json:"maxAbsDiff" yaml:"maxAbsDiff"`
}

// Identical reports whether the two compared images were byte-identical.
func (s DiffStats) Identical() bool {
	return s.DifferentValues == 0
}

// Compare scans every channel value position of a and b once and returns
// difference statistics. It has no side effects.
//
// Arguments:
//   - a: First image.
//   - b: Second image. Must have the same width, height and channels as a.
//
// Returns:
//   - DiffStats: The computed difference statistics.
//   - error: An invalid-argument error on shape mismatch.
func Compare(a, b *images.Image) (DiffStats, error) {
	if a.Width != b.Width || a.Height != b.Height || a.Channels != b.Channels {
		return DiffStats{}, fmt.Errorf("%w: shape mismatch %s vs %s",
			images.ErrInvalidArgument, a.String(), b.String())
	}
	if len(a.Data) != len(b.Data) {
		return DiffStats{}, fmt.Errorf("%w: buffer length mismatch %d vs %d",
			images.ErrInvalidArgument, len(a.Data), len(b.Data))
	}

	var s DiffStats
	for i := range a.Data {
		d := int(a.Data[i]) - int(b.Data[i])
		if d < 0 {
			d = -d
		}
		if d != 0 {
			s.DifferentValues++
		}
		if d > s.MaxAbsDiff {
			s.MaxAbsDiff = d
		}
	}
	return s, nil
}

// CompareBackends resizes img once with the sequential backend and once
// with the parallel backend at the given thread count, then compares the
// two outputs. This is the canonical cross-backend validation contract:
// the sequential output is always the reference.
func CompareBackends(img *images.Image, outW, outH int, method resize.Method, threads int) (DiffStats, error) {
	seq, err := resize.Resize(img, outW, outH, method, resize.BackendSequential, 0)
	if err != nil {
		return DiffStats{}, fmt.Errorf("sequential resize: %w", err)
	}
	par, err := resize.Resize(img, outW, outH, method, resize.BackendParallel, threads)
	if err != nil {
		return DiffStats{}, fmt.Errorf("parallel resize: %w", err)
	}
	return Compare(seq, par)
}
