package benchmark

import (
	"fmt"
	"math"

	"github.com/nvr-ai/go-resize/images"
	"github.com/nvr-ai/go-resize/resize"
)

// SweepCSVHeader is the column layout of the rows Sweep appends.
const SweepCSVHeader = "backend,input,out_w,out_h,channels,method,threads,warmup,runs,inner_reps,mean_ms,stddev_ms,min_ms,max_ms"

// SweepOptions configures a geometric output-size sweep.
type SweepOptions struct {
	// Input labels the source image in the CSV rows (usually its path).
	Input string `json:"input" yaml:"input"`
	// BaseW and BaseH are the starting output size.
	BaseW int `json:"baseW" yaml:"baseW"`
	BaseH int `json:"baseH" yaml:"baseH"`
	// Steps is the number of sizes to measure, must be > 0.
	Steps int `json:"steps" yaml:"steps"`
	// Scale multiplies the output size each step, must be > 1.
	Scale float64 `json:"scale" yaml:"scale"`

	Method  resize.Method  `json:"method" yaml:"method"`
	Backend resize.Backend `json:"backend" yaml:"backend"`

	Threads   int `json:"threads" yaml:"threads"`
	Warmup    int `json:"warmup" yaml:"warmup"`
	Runs      int `json:"runs" yaml:"runs"`
	InnerReps int `json:"innerReps" yaml:"innerReps"`

	// CSVPath is the file rows are appended to.
	CSVPath string `json:"csvPath" yaml:"csvPath"`
}

// Sweep benchmarks the resize over a geometric series of output sizes
// (next = round(previous * scale)) and appends one CSV row per step. It
// returns the per-step results in sweep order.
func Sweep(img *images.Image, opt SweepOptions) ([]Result, error) {
	if img.Empty() {
		return nil, fmt.Errorf("%w: input image is empty", images.ErrInvalidArgument)
	}
	if opt.BaseW <= 0 || opt.BaseH <= 0 {
		return nil, fmt.Errorf("%w: base size must be > 0, got %dx%d",
			images.ErrInvalidArgument, opt.BaseW, opt.BaseH)
	}
	if opt.Steps <= 0 {
		return nil, fmt.Errorf("%w: steps must be > 0, got %d", images.ErrInvalidArgument, opt.Steps)
	}
	if opt.Scale <= 1.0 {
		return nil, fmt.Errorf("%w: scale must be > 1.0, got %g", images.ErrInvalidArgument, opt.Scale)
	}

	results := make([]Result, 0, opt.Steps)
	w, h := opt.BaseW, opt.BaseH

	for i := 0; i < opt.Steps; i++ {
		fmt.Printf("[STEP %d/%d] size = %dx%d\n", i+1, opt.Steps, w, h)

		r, err := Measure(img, w, h, opt.Method, opt.Backend, opt.Threads,
			opt.Warmup, opt.Runs, opt.InnerReps)
		if err != nil {
			return results, err
		}

		row := fmt.Sprintf("%s,%s,%d,%d,%d,%s,%d,%d,%d,%d,%.6f,%.6f,%.6f,%.6f",
			opt.Backend, opt.Input, w, h, img.Channels, opt.Method,
			opt.Threads, opt.Warmup, r.Runs, max(opt.InnerReps, 1),
			r.MeanMS, r.StddevMS, r.MinMS, r.MaxMS)
		if err := AppendCSVRow(opt.CSVPath, SweepCSVHeader, row); err != nil {
			return results, err
		}

		fmt.Printf("  mean = %.3f ms (stddev %.3f)\n", r.MeanMS, r.StddevMS)
		results = append(results, r)

		w = int(math.Round(float64(w) * opt.Scale))
		h = int(math.Round(float64(h) * opt.Scale))
	}
	return results, nil
}
