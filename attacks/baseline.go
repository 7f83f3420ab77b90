package attacks

import (
	"fmt"

	nfnt "github.com/nfnt/resize"

	"github.com/nvr-ai/go-resize/imageio"
	"github.com/nvr-ai/go-resize/images"
)

// LanczosDownUp runs the same downscale->upscale round trip through the
// nfnt/resize Lanczos3 resampler and computes the same distortion metrics.
// It gives an external baseline to judge the first-party kernels against:
// a windowed-sinc filter is the usual "how good can simple resampling get"
// reference point.
func LanczosDownUp(src *images.Image, downW, downH int) (Metrics, error) {
	if src.Empty() {
		return Metrics{}, fmt.Errorf("%w: empty source image", images.ErrInvalidArgument)
	}
	if downW <= 0 || downH <= 0 {
		return Metrics{}, fmt.Errorf("%w: invalid downscale size %dx%d",
			images.ErrInvalidArgument, downW, downH)
	}

	goImg, err := imageio.ToGoImage(src)
	if err != nil {
		return Metrics{}, err
	}

	down := nfnt.Resize(uint(downW), uint(downH), goImg, nfnt.Lanczos3)
	up := nfnt.Resize(uint(src.Width), uint(src.Height), down, nfnt.Lanczos3)

	rec, err := imageio.FromGoImage(up, src.Channels)
	if err != nil {
		return Metrics{}, err
	}
	return DiffMetrics(src, rec)
}
