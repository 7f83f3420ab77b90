// Package imageio is the codec boundary of the pipeline: it loads common
// image formats into pixel buffers and writes buffers back out as
// PNG/JPEG/WebP/BMP. Everything else in the repo works on decoded buffers
// and never touches a file format.
package imageio

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"github.com/nvr-ai/go-resize/images"
)

// Load reads and decodes the image at path.
//
// requestedChannels forces the decoded channel count: 1 (gray), 3 (RGB) or
// 4 (RGBA). 0 keeps the native channel count of the file; a native count
// the pipeline does not support (e.g. gray+alpha) is normalized to 3.
//
// Arguments:
//   - path: File to read. PNG, JPEG, WebP and BMP are supported.
//   - requestedChannels: 0, 1, 3 or 4.
//
// Returns:
//   - *images.Image: The decoded pixel buffer.
//   - error: Invalid-argument for a bad channel request, otherwise an I/O
//     failure carrying the underlying decoder reason.
func Load(path string, requestedChannels int) (*images.Image, error) {
	if requestedChannels != 0 && !images.ValidChannels(requestedChannels) {
		return nil, errors.Wrapf(images.ErrInvalidArgument,
			"requested channels must be 0, 1, 3 or 4, got %d", requestedChannels)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image %s", path)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode image %s", path)
	}

	channels := requestedChannels
	if channels == 0 {
		channels = nativeChannels(decoded)
	}
	return FromGoImage(decoded, channels)
}

// nativeChannels maps a decoded Go image to the closest supported channel
// count. Gray stays single-channel, opaque color becomes RGB, anything
// with alpha becomes RGBA. Two-channel (gray+alpha) sources land on RGB,
// mirroring how the loader normalizes unsupported counts.
func nativeChannels(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr:
		return 3
	case *image.Paletted:
		if m.Opaque() {
			return 3
		}
		return 4
	default:
		if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
			return 3
		}
		return 4
	}
}

// FromGoImage converts a Go image into a pixel buffer with the given
// channel count (1, 3 or 4). Gray conversion uses the standard luminance
// weights of color.GrayModel.
func FromGoImage(src image.Image, channels int) (*images.Image, error) {
	if !images.ValidChannels(channels) {
		return nil, errors.Wrapf(images.ErrInvalidArgument, "unsupported channel count %d", channels)
	}
	b := src.Bounds()
	out, err := images.New(b.Dx(), b.Dy(), channels)
	if err != nil {
		return nil, err
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			switch channels {
			case 1:
				g := color.GrayModel.Convert(src.At(x, y)).(color.Gray)
				out.Data[i] = g.Y
				i++
			case 3:
				r, g, bb, _ := src.At(x, y).RGBA()
				out.Data[i+0] = byte(r >> 8)
				out.Data[i+1] = byte(g >> 8)
				out.Data[i+2] = byte(bb >> 8)
				i += 3
			case 4:
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				out.Data[i+0] = c.R
				out.Data[i+1] = c.G
				out.Data[i+2] = c.B
				out.Data[i+3] = c.A
				i += 4
			}
		}
	}
	return out, nil
}

// ToGoImage converts a pixel buffer into a Go image: Gray for 1 channel,
// opaque NRGBA for 3 channels, NRGBA for 4 channels.
func ToGoImage(img *images.Image) (image.Image, error) {
	if img.Empty() {
		return nil, errors.Wrap(images.ErrInvalidArgument, "empty image")
	}

	switch img.Channels {
	case 1:
		out := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
		for y := 0; y < img.Height; y++ {
			copy(out.Pix[y*out.Stride:y*out.Stride+img.Width], img.Row(y))
		}
		return out, nil
	case 3:
		out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
		for y := 0; y < img.Height; y++ {
			src := img.Row(y)
			dst := out.Pix[y*out.Stride:]
			for x := 0; x < img.Width; x++ {
				dst[x*4+0] = src[x*3+0]
				dst[x*4+1] = src[x*3+1]
				dst[x*4+2] = src[x*3+2]
				dst[x*4+3] = 255
			}
		}
		return out, nil
	case 4:
		out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
		for y := 0; y < img.Height; y++ {
			copy(out.Pix[y*out.Stride:y*out.Stride+img.Width*4], img.Row(y))
		}
		return out, nil
	default:
		return nil, errors.Wrapf(images.ErrInvalidArgument, "unsupported channel count %d", img.Channels)
	}
}

// SavePNG writes img to path as PNG. compression maps onto the encoder's
// levels: <= 0 disables compression, >= 7 asks for best compression,
// anything between uses the default.
func SavePNG(img *images.Image, path string, compression int) error {
	goImg, err := ToGoImage(img)
	if err != nil {
		return err
	}

	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if compression <= 0 {
		enc.CompressionLevel = png.NoCompression
	} else if compression >= 7 {
		enc.CompressionLevel = png.BestCompression
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	if err := enc.Encode(f, goImg); err != nil {
		return errors.Wrapf(err, "failed to write PNG %s", path)
	}
	return nil
}

// SaveJPEG writes img to path as JPEG with the given quality (clamped to
// 1..100). A 4-channel buffer has its alpha channel dropped before
// encoding; JPEG carries no transparency.
func SaveJPEG(img *images.Image, path string, quality int) error {
	if img.Empty() {
		return errors.Wrap(images.ErrInvalidArgument, "empty image")
	}
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}

	src := img
	if img.Channels == 4 {
		src = dropAlpha(img)
	}

	goImg, err := ToGoImage(src)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	if err := jpeg.Encode(f, goImg, &jpeg.Options{Quality: quality}); err != nil {
		return errors.Wrapf(err, "failed to write JPEG %s", path)
	}
	return nil
}

// SaveWebP writes img to path as lossy WebP with the given quality (1..100).
func SaveWebP(img *images.Image, path string, quality int) error {
	goImg, err := ToGoImage(img)
	if err != nil {
		return err
	}
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	if err := webp.Encode(f, goImg, &webp.Options{Quality: float32(quality)}); err != nil {
		return errors.Wrapf(err, "failed to write WebP %s", path)
	}
	return nil
}

// SaveBMP writes img to path as BMP.
func SaveBMP(img *images.Image, path string) error {
	goImg, err := ToGoImage(img)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	if err := bmp.Encode(f, goImg); err != nil {
		return errors.Wrapf(err, "failed to write BMP %s", path)
	}
	return nil
}

// Save picks the output codec from the file extension: .jpg/.jpeg, .webp
// and .bmp get their matching encoder, everything else is written as PNG.
func Save(img *images.Image, path string, pngCompression, jpegQuality int) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return SaveJPEG(img, path, jpegQuality)
	case ".webp":
		return SaveWebP(img, path, jpegQuality)
	case ".bmp":
		return SaveBMP(img, path)
	default:
		return SavePNG(img, path, pngCompression)
	}
}

// dropAlpha copies an RGBA buffer into an RGB one, discarding the alpha
// channel without premultiplying.
func dropAlpha(img *images.Image) *images.Image {
	out := &images.Image{
		Width:    img.Width,
		Height:   img.Height,
		Channels: 3,
		Data:     make([]byte, img.Width*img.Height*3),
	}
	pixels := img.Width * img.Height
	for i := 0; i < pixels; i++ {
		out.Data[3*i+0] = img.Data[4*i+0]
		out.Data[3*i+1] = img.Data[4*i+1]
		out.Data[3*i+2] = img.Data[4*i+2]
	}
	return out
}
