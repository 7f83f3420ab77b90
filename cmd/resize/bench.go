package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvr-ai/go-resize/benchmark"
	"github.com/nvr-ai/go-resize/imageio"
	"github.com/nvr-ai/go-resize/resize"
)

// benchCSVHeader is the column layout of single-benchmark rows.
const benchCSVHeader = "backend,out_w,out_h,channels,inner_reps,mean_ms,stddev_ms,min_ms,max_ms"

func init() {
	rootCmd.AddCommand(benchCmd)
}

var benchCmd = &cobra.Command{
	Use:   "bench <input> <out_w> <out_h> <nearest|bilinear> <seq|parallel> [threads] [warmup] [runs] [csv_path]",
	Short: "benchmark one resize configuration",
	Example: `  resize bench lena.png 3840 2160 bilinear parallel 12 2 10 results.csv
  resize bench lena.png 1024 1024 nearest seq`,
	Args: cobra.RangeArgs(5, 9),
	RunE: func(cmd *cobra.Command, args []string) error {
		outW, err := parseInt(args[1], "out_w")
		if err != nil {
			return err
		}
		outH, err := parseInt(args[2], "out_h")
		if err != nil {
			return err
		}
		method, err := resize.ParseMethod(args[3])
		if err != nil {
			return err
		}
		backend, err := resize.ParseBackend(args[4])
		if err != nil {
			return err
		}

		threads, warmup, runs := cfg.Threads, cfg.WarmupRuns, cfg.MeasuredRuns
		csvPath := cfg.CSVPath
		if len(args) >= 6 {
			if threads, err = parseInt(args[5], "threads"); err != nil {
				return err
			}
		}
		if len(args) >= 7 {
			if warmup, err = parseInt(args[6], "warmup"); err != nil {
				return err
			}
		}
		if len(args) >= 8 {
			if runs, err = parseInt(args[7], "runs"); err != nil {
				return err
			}
		}
		if len(args) >= 9 {
			csvPath = args[8]
		}

		img, err := imageio.Load(args[0], 0)
		if err != nil {
			return err
		}

		r, err := benchmark.Measure(img, outW, outH, method, backend, threads,
			warmup, runs, cfg.InnerReps)
		if err != nil {
			return err
		}

		fmt.Printf("Benchmark results:\n")
		fmt.Printf("  runs   = %d\n", r.Runs)
		fmt.Printf("  mean   = %.6f ms\n", r.MeanMS)
		fmt.Printf("  stddev = %.6f ms\n", r.StddevMS)
		fmt.Printf("  min    = %.6f ms\n", r.MinMS)
		fmt.Printf("  max    = %.6f ms\n", r.MaxMS)

		row := fmt.Sprintf("%s,%d,%d,%d,%d,%.6f,%.6f,%.6f,%.6f",
			backend, outW, outH, img.Channels, cfg.InnerReps,
			r.MeanMS, r.StddevMS, r.MinMS, r.MaxMS)
		return benchmark.AppendCSVRow(csvPath, benchCSVHeader, row)
	},
}
