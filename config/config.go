// Package config - Process-wide defaults, threaded explicitly through the
// CLI entry points instead of living as globals next to the code that uses
// them.
package config

// Config carries the tunables shared by the CLI subcommands.
type Config struct {
	// Threads is the parallel backend worker count. 0 lets the runtime
	// decide; the sequential backend ignores it.
	Threads int `json:"threads" yaml:"threads"`
	// WarmupRuns is the number of untimed resize calls before measuring.
	WarmupRuns int `json:"warmupRuns" yaml:"warmupRuns"`
	// MeasuredRuns is the number of timed trials per benchmark.
	MeasuredRuns int `json:"measuredRuns" yaml:"measuredRuns"`
	// InnerReps is the number of back-to-back resizes per timed trial.
	InnerReps int `json:"innerReps" yaml:"innerReps"`
	// PNGCompression is the PNG output compression level (0..9).
	PNGCompression int `json:"pngCompression" yaml:"pngCompression"`
	// JPEGQuality is the JPEG output quality (1..100).
	JPEGQuality int `json:"jpegQuality" yaml:"jpegQuality"`
	// CSVPath is where benchmark rows are appended by default.
	CSVPath string `json:"csvPath" yaml:"csvPath"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Threads:        0,
		WarmupRuns:     2,
		MeasuredRuns:   10,
		InnerReps:      1,
		PNGCompression: 3,
		JPEGQuality:    95,
		CSVPath:        "benchmark_results.csv",
	}
}
