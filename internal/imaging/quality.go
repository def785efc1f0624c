package imaging

import (
	"image"
	"math"

	"github.com/wastetrack/slips-tracker/internal/entity"
)

const (
	minGoodWidth  = 800
	minGoodHeight = 600

	darkBrightness   = 50.0
	brightBrightness = 200.0
	lowContrastStdev = 30.0

	conditioningThreshold = 80
)

// AnalyzeQuality scores a capture from 0 to 100 and flags the defects that
// lowered the score. Pixels are sampled on a grid to keep large photos cheap.
func AnalyzeQuality(img image.Image) *entity.QualityReport {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	step := 10
	if width < step || height < step {
		step = 1
	}

	var sum, sumSq float64
	pixelCount := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			brightness := (float64(r>>8) + float64(g>>8) + float64(b>>8)) / 3.0
			sum += brightness
			sumSq += brightness * brightness
			pixelCount++
		}
	}

	report := &entity.QualityReport{
		Width:  width,
		Height: height,
		Score:  100,
	}
	if pixelCount == 0 {
		report.Score = 0
		report.Issues = append(report.Issues, "empty image")
		report.NeedConditioning = true
		return report
	}

	mean := sum / float64(pixelCount)
	variance := sumSq/float64(pixelCount) - mean*mean
	if variance < 0 {
		variance = 0
	}
	stdev := math.Sqrt(variance)

	report.Brightness = mean
	report.Contrast = stdev

	if width < minGoodWidth || height < minGoodHeight {
		report.Score -= 20
		report.Issues = append(report.Issues, "low resolution")
	}
	if mean < darkBrightness {
		report.Score -= 15
		report.Issues = append(report.Issues, "too dark")
	}
	if mean > brightBrightness {
		report.Score -= 15
		report.Issues = append(report.Issues, "overexposed")
	}
	if stdev < lowContrastStdev {
		report.Score -= 10
		report.Issues = append(report.Issues, "low contrast")
	}

	report.NeedConditioning = report.Score < conditioningThreshold
	return report
}
