package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/wastetrack/slips-tracker/constants"
)

// enhanceFunc applies a slip-type specific enhancement recipe.
type enhanceFunc func(image.Image) image.Image

// profileFor returns the enhancement recipe tuned for a layout. Falls back
// to the general recipe for unknown types so conditioning never hard-fails.
func profileFor(slipType constants.SlipType) enhanceFunc {
	switch slipType {
	case constants.SlipTypeReceipt:
		return enhanceReceipt
	case constants.SlipTypeInspection:
		return enhanceInspection
	case constants.SlipTypeWeighing:
		return enhanceWeighing
	case constants.SlipTypeTicket:
		return enhanceTicket
	default:
		return enhanceGeneral
	}
}

// enhanceReceipt keeps color so the printed comparison table stays legible,
// boosting saturation and edge sharpness.
func enhanceReceipt(img image.Image) image.Image {
	result := imaging.AdjustSaturation(img, 20)
	result = imaging.AdjustContrast(result, 20)
	result = imaging.Sharpen(result, 1.5)
	return result
}

// enhanceInspection targets handwriting: normalize tones, then sharpen hard
// so pen strokes separate from the paper grain.
func enhanceInspection(img image.Image) image.Image {
	result := imaging.Grayscale(img)
	result = imaging.AdjustContrast(result, 40)
	result = imaging.Sharpen(result, 2.5)
	result = imaging.AdjustGamma(result, 1.1)
	return result
}

// enhanceWeighing lifts the dark blue weighbridge paper before desaturating.
func enhanceWeighing(img image.Image) image.Image {
	result := imaging.AdjustBrightness(img, 30)
	result = imaging.Grayscale(result)
	result = imaging.AdjustContrast(result, 30)
	result = imaging.Sharpen(result, 2.0)
	return result
}

// enhanceTicket approximates adaptive equalization with a gamma lift and a
// two-pass contrast stretch.
func enhanceTicket(img image.Image) image.Image {
	result := imaging.Grayscale(img)
	result = imaging.AdjustGamma(result, 1.2)
	result = imaging.AdjustContrast(result, 35)
	result = imaging.Sharpen(result, 2.0)
	result = imaging.AdjustContrast(result, 15)
	return result
}

func enhanceGeneral(img image.Image) image.Image {
	result := imaging.Grayscale(img)
	result = imaging.AdjustContrast(result, 30)
	result = imaging.Sharpen(result, 2.0)
	return result
}

// denoise runs a small median filter, useful on grainy low-light captures.
func denoise(img image.Image) image.Image {
	return effect.Median(img, 3)
}
