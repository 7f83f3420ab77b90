package benchmark

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-resize/images"
	"github.com/nvr-ai/go-resize/resize"
)

func sweepOptions(csvPath string) SweepOptions {
	return SweepOptions{
		Input:     "fixture",
		BaseW:     4,
		BaseH:     4,
		Steps:     3,
		Scale:     1.5,
		Method:    resize.MethodNearest,
		Backend:   resize.BackendSequential,
		Threads:   0,
		Warmup:    0,
		Runs:      2,
		InnerReps: 1,
		CSVPath:   csvPath,
	}
}

func TestSweepGeometricSteps(t *testing.T) {
	img := measureImage(t, 16, 16)
	path := filepath.Join(t.TempDir(), "sweep.csv")

	results, err := Sweep(img, sweepOptions(path))
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, 2, r.Runs)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 4, "header plus one row per step")
	assert.Equal(t, SweepCSVHeader, lines[0])

	// Sizes follow next = round(prev * 1.5): 4, 6, 9.
	assert.Contains(t, lines[1], "seq,fixture,4,4,3,nearest")
	assert.Contains(t, lines[2], "seq,fixture,6,6,3,nearest")
	assert.Contains(t, lines[3], "seq,fixture,9,9,3,nearest")
}

func TestSweepAppendsAcrossCalls(t *testing.T) {
	img := measureImage(t, 16, 16)
	path := filepath.Join(t.TempDir(), "sweep.csv")

	opt := sweepOptions(path)
	opt.Steps = 1
	_, err := Sweep(img, opt)
	require.NoError(t, err)
	_, err = Sweep(img, opt)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3, "one header, two data rows")
	assert.Equal(t, 1, strings.Count(string(data), SweepCSVHeader))
}

func TestSweepPreconditions(t *testing.T) {
	img := measureImage(t, 16, 16)
	path := filepath.Join(t.TempDir(), "sweep.csv")

	tests := []struct {
		name   string
		mutate func(*SweepOptions)
	}{
		{name: "zero steps", mutate: func(o *SweepOptions) { o.Steps = 0 }},
		{name: "scale one", mutate: func(o *SweepOptions) { o.Scale = 1.0 }},
		{name: "scale below one", mutate: func(o *SweepOptions) { o.Scale = 0.5 }},
		{name: "zero base", mutate: func(o *SweepOptions) { o.BaseW = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt := sweepOptions(path)
			tt.mutate(&opt)
			_, err := Sweep(img, opt)
			require.Error(t, err)
			assert.ErrorIs(t, err, images.ErrInvalidArgument)

			_, statErr := os.Stat(path)
			assert.True(t, os.IsNotExist(statErr), "no CSV may be written on precondition failure")
		})
	}
}
