package main

import (
	"fmt"
	"strconv"

	"github.com/nvr-ai/go-resize/images"
)

// parseInt converts a positional argument to an int, naming the argument
// in the error so CLI failures read well.
func parseInt(s, name string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid integer for %s: %q", images.ErrInvalidArgument, name, s)
	}
	return v, nil
}

func parseFloat(s, name string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid number for %s: %q", images.ErrInvalidArgument, name, s)
	}
	return v, nil
}
