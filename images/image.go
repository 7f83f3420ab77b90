// Package images - Pixel buffer definition for the resize pipeline.
package images

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the category for malformed dimensions, unsupported
// channel counts and shape mismatches. Every precondition failure in the
// resize, validate, attacks and benchmark packages wraps this sentinel so
// callers can classify it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Image represents one raster image as a contiguous, row-major,
// channel-interleaved byte buffer.
type Image struct {
	// The width of the image in pixels. Always > 0 for a valid image.
	Width int `json:"width" yaml:"width"`
	// The height of the image in pixels. Always > 0 for a valid image.
	Height int `json:"height" yaml:"height"`
	// The number of channels: 1 (gray), 3 (RGB) or 4 (RGBA).
	Channels int `json:"channels" yaml:"channels"`
	// The pixel data. Length is always Width*Height*Channels.
	Data []byte `json:"data" yaml:"data"`
}

// ValidChannels reports whether c is a channel count the pipeline supports.
func ValidChannels(c int) bool {
	return c == 1 || c == 3 || c == 4
}

// New allocates a zeroed image with the given shape.
//
// Arguments:
//   - width: Image width in pixels, must be > 0.
//   - height: Image height in pixels, must be > 0.
//   - channels: Channel count, must be 1, 3 or 4.
//
// Returns:
//   - *Image: The allocated image.
//   - error: An invalid-argument error if the shape is malformed.
func New(width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width/height must be > 0, got %dx%d", ErrInvalidArgument, width, height)
	}
	if !ValidChannels(channels) {
		return nil, fmt.Errorf("%w: channels must be 1, 3 or 4, got %d", ErrInvalidArgument, channels)
	}
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Data:     make([]byte, width*height*channels),
	}, nil
}

// FromData wraps an existing pixel slice after validating that its length
// matches the given shape exactly. The slice is retained, not copied.
func FromData(width, height, channels int, data []byte) (*Image, error) {
	img, err := New(width, height, channels)
	if err != nil {
		return nil, err
	}
	if len(data) != width*height*channels {
		return nil, fmt.Errorf("%w: data length %d does not match %dx%dx%d",
			ErrInvalidArgument, len(data), width, height, channels)
	}
	img.Data = data
	return img, nil
}

// Empty reports whether the image has no usable pixel data.
func (img *Image) Empty() bool {
	return img == nil || img.Width <= 0 || img.Height <= 0 || img.Channels <= 0 || len(img.Data) == 0
}

// SizeBytes returns the total byte length of the pixel buffer.
func (img *Image) SizeBytes() int {
	return len(img.Data)
}

// Row returns the byte slice backing row y. The caller must keep x and
// channel offsets within Width*Channels.
func (img *Image) Row(y int) []byte {
	stride := img.Width * img.Channels
	return img.Data[y*stride : (y+1)*stride : (y+1)*stride]
}

// At returns the value of channel c at pixel (x, y).
//
// Returns:
//   - byte: The channel value.
//   - error: An invalid-argument error if the position is out of bounds.
func (img *Image) At(x, y, c int) (byte, error) {
	if err := img.check(x, y, c); err != nil {
		return 0, err
	}
	return img.Data[(y*img.Width+x)*img.Channels+c], nil
}

// Set writes the value of channel c at pixel (x, y). Intended for building
// fixtures and synthetic inputs; pipeline stages never mutate a published
// image.
func (img *Image) Set(x, y, c int, v byte) error {
	if err := img.check(x, y, c); err != nil {
		return err
	}
	img.Data[(y*img.Width+x)*img.Channels+c] = v
	return nil
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	dup := &Image{
		Width:    img.Width,
		Height:   img.Height,
		Channels: img.Channels,
		Data:     make([]byte, len(img.Data)),
	}
	copy(dup.Data, img.Data)
	return dup
}

func (img *Image) check(x, y, c int) error {
	if img.Empty() {
		return fmt.Errorf("%w: empty image", ErrInvalidArgument)
	}
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height || c < 0 || c >= img.Channels {
		return fmt.Errorf("%w: position (%d,%d,%d) outside %dx%dx%d",
			ErrInvalidArgument, x, y, c, img.Width, img.Height, img.Channels)
	}
	return nil
}

// String returns a human-readable summary of the image shape.
func (img *Image) String() string {
	return fmt.Sprintf("%dx%dx%d (%d bytes)", img.Width, img.Height, img.Channels, len(img.Data))
}
