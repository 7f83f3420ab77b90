// Command resize scales raster images with selectable interpolation
// methods and execution backends, benchmarks the kernels, validates that
// the sequential and parallel backends agree byte-for-byte, and measures
// down/up scaling distortion.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvr-ai/go-resize/config"
)

// errMismatch marks a validation run that found differing backend outputs.
// It is not a crash: the diff statistics were already printed, the process
// just exits with a distinct code.
var errMismatch = errors.New("backend outputs differ")

// cfg carries the process defaults; trailing positional arguments override
// individual fields per invocation.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "resize",
	Short: "image resizing, benchmarking and validation",
	Long: `resize scales raster images using nearest-neighbor or bilinear
interpolation, with a sequential or row-parallel execution backend.
It can benchmark the kernels, sweep output sizes into CSV, certify that
both backends produce byte-identical output, and quantify the distortion
of a downscale->upscale round trip.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errMismatch) {
			fmt.Fprintln(os.Stderr, "VALIDATION FAILED")
			os.Exit(3)
		}
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(2)
	}
}
