package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"

	"github.com/disintegration/imaging"

	"github.com/wastetrack/slips-tracker/constants"
	"github.com/wastetrack/slips-tracker/internal/common"
)

const (
	// maxDimension caps the longest side before dispatch to the vision
	// service; larger photos cost tokens without adding legibility.
	maxDimension = 2048
	// minDimension is the upscale floor for tiny captures.
	minDimension = 1024

	jpegQuality = 95
)

// Conditioner prepares a capture for recognition: orientation fix, size
// bounds, and a per-layout enhancement recipe.
type Conditioner struct {
	cfg    common.ImagingConfig
	logger *slog.Logger
}

func NewConditioner(cfg common.ImagingConfig, logger *slog.Logger) *Conditioner {
	return &Conditioner{cfg: cfg, logger: logger}
}

// Decode reads image bytes honoring EXIF orientation.
func Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %v", common.ErrInvalidInput, err)
	}
	return img, nil
}

// Condition returns an enhanced JPEG rendition of the capture. Conditioning
// is best-effort: any internal failure logs and returns the original bytes
// so recognition still gets a chance at the raw photo.
func (c *Conditioner) Condition(data []byte, slipType constants.SlipType) []byte {
	img, err := Decode(data)
	if err != nil {
		c.logger.Warn("imaging.condition.decode_failed", "error", err)
		return data
	}

	img = boundSize(img)
	if c.cfg.DenoiseEnable {
		img = denoise(img)
	}
	img = profileFor(slipType)(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		c.logger.Warn("imaging.condition.encode_failed", "error", err)
		return data
	}

	c.logger.Debug("imaging.condition.done",
		"slip_type", slipType.String(),
		"in_bytes", len(data),
		"out_bytes", buf.Len())
	return buf.Bytes()
}

// boundSize keeps the longest side within [minDimension, maxDimension].
func boundSize(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	longest := width
	if height > longest {
		longest = height
	}

	switch {
	case longest > maxDimension:
		if width >= height {
			return imaging.Resize(img, maxDimension, 0, imaging.Lanczos)
		}
		return imaging.Resize(img, 0, maxDimension, imaging.Lanczos)
	case longest < minDimension:
		if width >= height {
			return imaging.Resize(img, minDimension, 0, imaging.Lanczos)
		}
		return imaging.Resize(img, 0, minDimension, imaging.Lanczos)
	default:
		return img
	}
}
