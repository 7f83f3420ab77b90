// Package benchmark - Steady-state timing of resize calls with warmup,
// inner-repetition amortization and basic statistics, plus CSV export of
// the results.
package benchmark

import (
	"fmt"
	"math"
	"time"

	"github.com/nvr-ai/go-resize/images"
	"github.com/nvr-ai/go-resize/resize"
)

// Result holds the aggregated statistics of one benchmark call.
type Result struct {
	// Runs is the number of timed trials.
	Runs int `json:"runs"`
	// MeanMS is the mean elapsed time per resize in milliseconds.
	MeanMS float64 `json:"mean_ms"`
	// StddevMS is the sample standard deviation (divisor N-1; 0 when N < 2).
	StddevMS float64 `json:"stddev_ms"`
	// MinMS is the fastest trial.
	MinMS float64 `json:"min_ms"`
	// MaxMS is the slowest trial.
	MaxMS float64 `json:"max_ms"`
}

// sink absorbs one byte of every produced buffer. Writing the result into
// package state forces the compiler to treat each timed resize as
// observable, so none of them can be elided or hoisted out of the loop.
var sink byte

func consume(img *images.Image) {
	sink ^= img.Data[0] ^ img.Data[len(img.Data)-1]
}

// Measure times repeated resize calls and aggregates the samples.
//
// It first executes warmup full resize calls whose results are discarded,
// letting allocator and cache effects stabilize. It then executes runs
// timed trials; each trial invokes the resize innerReps times back-to-back
// and records elapsed/innerReps as one sample, which amortizes timer
// resolution for very fast kernels. Trials execute strictly one after
// another; timings are never concurrent with each other even when the
// parallel backend is used inside a trial.
//
// Arguments:
//   - img: Source image, must be non-empty.
//   - outW: Target width, must be > 0.
//   - outH: Target height, must be > 0.
//   - method: Interpolation method.
//   - backend: Execution backend.
//   - threads: Worker count for the parallel backend.
//   - warmup: Untimed resize calls before measuring, must be >= 0.
//   - runs: Timed trials, must be >= 1.
//   - innerReps: Resizes per trial; values < 1 are normalized to 1.
//
// Returns:
//   - Result: Mean, sample stddev, min and max over all samples.
//   - error: An invalid-argument error; nothing is timed or written on failure.
func Measure(
	img *images.Image,
	outW, outH int,
	method resize.Method,
	backend resize.Backend,
	threads int,
	warmup, runs, innerReps int,
) (Result, error) {
	if img.Empty() {
		return Result{}, fmt.Errorf("%w: input image is empty", images.ErrInvalidArgument)
	}
	if outW <= 0 || outH <= 0 {
		return Result{}, fmt.Errorf("%w: output size must be > 0, got %dx%d",
			images.ErrInvalidArgument, outW, outH)
	}
	if warmup < 0 {
		return Result{}, fmt.Errorf("%w: warmup must be >= 0, got %d", images.ErrInvalidArgument, warmup)
	}
	if runs < 1 {
		return Result{}, fmt.Errorf("%w: runs must be >= 1, got %d", images.ErrInvalidArgument, runs)
	}
	if innerReps < 1 {
		innerReps = 1
	}

	// Warmup: full resize calls, results consumed and dropped.
	for i := 0; i < warmup; i++ {
		for k := 0; k < innerReps; k++ {
			out, err := resize.Resize(img, outW, outH, method, backend, threads)
			if err != nil {
				return Result{}, err
			}
			consume(out)
		}
	}

	samples := make([]float64, 0, runs)
	for i := 0; i < runs; i++ {
		start := time.Now()
		for k := 0; k < innerReps; k++ {
			out, err := resize.Resize(img, outW, outH, method, backend, threads)
			if err != nil {
				return Result{}, err
			}
			consume(out)
		}
		elapsed := time.Since(start)
		samples = append(samples, float64(elapsed.Nanoseconds())/1e6/float64(innerReps))
	}

	return aggregate(samples), nil
}

func aggregate(samples []float64) Result {
	r := Result{
		Runs:  len(samples),
		MinMS: samples[0],
		MaxMS: samples[0],
	}

	var sum float64
	for _, s := range samples {
		sum += s
		if s < r.MinMS {
			r.MinMS = s
		}
		if s > r.MaxMS {
			r.MaxMS = s
		}
	}
	r.MeanMS = sum / float64(len(samples))

	if len(samples) >= 2 {
		var sq float64
		for _, s := range samples {
			d := s - r.MeanMS
			sq += d * d
		}
		r.StddevMS = math.Sqrt(sq / float64(len(samples)-1))
	}
	return r
}
