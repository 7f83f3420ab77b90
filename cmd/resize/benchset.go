package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvr-ai/go-resize/benchmark"
	"github.com/nvr-ai/go-resize/imageio"
	"github.com/nvr-ai/go-resize/resize"
)

func init() {
	rootCmd.AddCommand(benchsetCmd)
}

var benchsetCmd = &cobra.Command{
	Use:   "benchset <input> <base_w> <base_h> <steps> <scale> <nearest|bilinear> <seq|parallel> [threads] [warmup] [runs] [csv_path]",
	Short: "benchmark a geometric sweep of output sizes into CSV",
	Long: `benchset measures the resize at a series of output sizes starting at
base_w x base_h and multiplying by scale each step
(next = round(previous * scale), scale > 1), appending one CSV row per
step.`,
	Example: `  resize benchset lena.png 512 512 6 1.5 bilinear parallel 12 2 10 sweep.csv`,
	Args:    cobra.RangeArgs(7, 11),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseW, err := parseInt(args[1], "base_w")
		if err != nil {
			return err
		}
		baseH, err := parseInt(args[2], "base_h")
		if err != nil {
			return err
		}
		steps, err := parseInt(args[3], "steps")
		if err != nil {
			return err
		}
		scale, err := parseFloat(args[4], "scale")
		if err != nil {
			return err
		}
		method, err := resize.ParseMethod(args[5])
		if err != nil {
			return err
		}
		backend, err := resize.ParseBackend(args[6])
		if err != nil {
			return err
		}

		opt := benchmark.SweepOptions{
			Input:     args[0],
			BaseW:     baseW,
			BaseH:     baseH,
			Steps:     steps,
			Scale:     scale,
			Method:    method,
			Backend:   backend,
			Threads:   cfg.Threads,
			Warmup:    cfg.WarmupRuns,
			Runs:      cfg.MeasuredRuns,
			InnerReps: cfg.InnerReps,
			CSVPath:   cfg.CSVPath,
		}
		if len(args) >= 8 {
			if opt.Threads, err = parseInt(args[7], "threads"); err != nil {
				return err
			}
		}
		if len(args) >= 9 {
			if opt.Warmup, err = parseInt(args[8], "warmup"); err != nil {
				return err
			}
		}
		if len(args) >= 10 {
			if opt.Runs, err = parseInt(args[9], "runs"); err != nil {
				return err
			}
		}
		if len(args) >= 11 {
			opt.CSVPath = args[10]
		}

		img, err := imageio.Load(args[0], 0)
		if err != nil {
			return err
		}

		if _, err := benchmark.Sweep(img, opt); err != nil {
			return err
		}
		fmt.Printf("sweep complete, rows appended to %s\n", opt.CSVPath)
		return nil
	},
}
