// Package resize implements nearest-neighbor and bilinear image resizing
// with selectable sequential or row-parallel execution. Both execution
// backends run the exact same per-row kernel, so their outputs are
// byte-identical for any thread count.
package resize

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/nvr-ai/go-resize/images"
)

// Method selects the interpolation algorithm.
type Method string

const (
	// MethodNearest copies the single closest source pixel.
	MethodNearest Method = "nearest"
	// MethodBilinear blends the four source pixels around the mapped coordinate.
	MethodBilinear Method = "bilinear"
)

// ParseMethod converts a CLI token into a Method.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodNearest:
		return MethodNearest, nil
	case MethodBilinear:
		return MethodBilinear, nil
	default:
		return "", fmt.Errorf("%w: unknown method %q", images.ErrInvalidArgument, s)
	}
}

// Backend selects the execution strategy.
type Backend string

const (
	// BackendSequential computes output rows in order on the calling goroutine.
	BackendSequential Backend = "seq"
	// BackendParallel fans output rows out over a bounded set of worker goroutines.
	BackendParallel Backend = "parallel"
)

// ParseBackend converts a CLI token into a Backend.
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case BackendSequential:
		return BackendSequential, nil
	case BackendParallel:
		return BackendParallel, nil
	default:
		return "", fmt.Errorf("%w: unknown backend %q", images.ErrInvalidArgument, s)
	}
}

// Resize scales in to outW x outH using the given interpolation method and
// execution backend. The channel count is preserved. The input is never
// mutated; a freshly allocated image is returned. threads configures the
// parallel backend only (<= 0 picks one worker per CPU) and is ignored by
// the sequential backend.
//
// Arguments:
//   - in: The source image. Must be non-empty with 1, 3 or 4 channels.
//   - outW: Target width, must be > 0.
//   - outH: Target height, must be > 0.
//   - method: MethodNearest or MethodBilinear.
//   - backend: BackendSequential or BackendParallel.
//   - threads: Worker count for BackendParallel; <= 0 chooses a default.
//
// Returns:
//   - *images.Image: The resized image, shape outW x outH x in.Channels.
//   - error: An invalid-argument error; no allocation happens on failure.
func Resize(in *images.Image, outW, outH int, method Method, backend Backend, threads int) (*images.Image, error) {
	if in.Empty() {
		return nil, fmt.Errorf("%w: input image is empty", images.ErrInvalidArgument)
	}
	if outW <= 0 || outH <= 0 {
		return nil, fmt.Errorf("%w: output size must be > 0, got %dx%d", images.ErrInvalidArgument, outW, outH)
	}
	if !images.ValidChannels(in.Channels) {
		return nil, fmt.Errorf("%w: supported channels are 1, 3 or 4, got %d", images.ErrInvalidArgument, in.Channels)
	}

	var kernel rowKernel
	switch method {
	case MethodNearest:
		kernel = nearestRows
	case MethodBilinear:
		kernel = bilinearRows
	default:
		return nil, fmt.Errorf("%w: unknown method %q", images.ErrInvalidArgument, method)
	}

	switch backend {
	case BackendSequential, BackendParallel:
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", images.ErrInvalidArgument, backend)
	}

	out, err := images.New(outW, outH, in.Channels)
	if err != nil {
		return nil, err
	}

	if backend == BackendParallel {
		forEachRowChunk(outH, threads, func(y0, y1 int) {
			kernel(in, out, y0, y1)
		})
	} else {
		kernel(in, out, 0, outH)
	}

	return out, nil
}

// rowKernel computes output rows [y0, y1). Each row writes only its own
// disjoint slice of out and reads at most two input rows, which is what
// makes the row partitioning lock-free.
type rowKernel func(in, out *images.Image, y0, y1 int)

// mapCoord applies the pixel-center transform (o + 0.5) * (I / O) - 0.5.
func mapCoord(o, inSize, outSize float32) float32 {
	return (o+0.5)*(inSize/outSize) - 0.5
}

func nearestRows(in, out *images.Image, y0, y1 int) {
	ch := in.Channels
	for y := y0; y < y1; y++ {
		sy := mapCoord(float32(y), float32(in.Height), float32(out.Height))
		iy := clampInt(int(math32.Round(sy)), 0, in.Height-1)

		src := in.Row(iy)
		dst := out.Row(y)

		for x := 0; x < out.Width; x++ {
			sx := mapCoord(float32(x), float32(in.Width), float32(out.Width))
			ix := clampInt(int(math32.Round(sx)), 0, in.Width-1)
			copy(dst[x*ch:(x+1)*ch], src[ix*ch:(ix+1)*ch])
		}
	}
}

func bilinearRows(in, out *images.Image, y0, y1 int) {
	ch := in.Channels
	for y := y0; y < y1; y++ {
		sy := mapCoord(float32(y), float32(in.Height), float32(out.Height))
		iy0 := clampInt(int(math32.Floor(sy)), 0, in.Height-1)
		iy1 := clampInt(iy0+1, 0, in.Height-1)
		wy := sy - float32(iy0)

		row0 := in.Row(iy0)
		row1 := in.Row(iy1)
		dst := out.Row(y)

		for x := 0; x < out.Width; x++ {
			sx := mapCoord(float32(x), float32(in.Width), float32(out.Width))
			ix0 := clampInt(int(math32.Floor(sx)), 0, in.Width-1)
			ix1 := clampInt(ix0+1, 0, in.Width-1)
			wx := sx - float32(ix0)

			p00 := row0[ix0*ch:]
			p10 := row0[ix1*ch:]
			p01 := row1[ix0*ch:]
			p11 := row1[ix1*ch:]

			for c := 0; c < ch; c++ {
				v00 := float32(p00[c])
				v10 := float32(p10[c])
				v01 := float32(p01[c])
				v11 := float32(p11[c])

				// Lerp along X at both neighbor rows, then along Y.
				v0 := v00 + wx*(v10-v00)
				v1 := v01 + wx*(v11-v01)
				v := v0 + wy*(v1-v0)

				dst[x*ch+c] = clampU8(int(math32.Round(v)))
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampU8(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
