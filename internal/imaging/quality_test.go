package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformImage(w, h int, gray uint8) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{gray, gray, gray, 255})
		}
	}
	return img
}

func checkerImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/8+y/8)%2 == 0 {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			} else {
				img.Set(x, y, color.RGBA{0, 0, 0, 255})
			}
		}
	}
	return img
}

func TestAnalyzeQualityCleanCapture(t *testing.T) {
	report := AnalyzeQuality(checkerImage(1200, 900))

	require.NotNil(t, report)
	assert.Equal(t, 100, report.Score)
	assert.False(t, report.NeedConditioning)
	assert.Empty(t, report.Issues)
	assert.Equal(t, 1200, report.Width)
	assert.Equal(t, 900, report.Height)
}

func TestAnalyzeQualityDarkCapture(t *testing.T) {
	// Uniform dark gray is both too dark and flat.
	report := AnalyzeQuality(uniformImage(1200, 900, 30))

	assert.Contains(t, report.Issues, "too dark")
	assert.Contains(t, report.Issues, "low contrast")
	assert.Equal(t, 75, report.Score)
	assert.True(t, report.NeedConditioning)
}

func TestAnalyzeQualityOverexposed(t *testing.T) {
	report := AnalyzeQuality(uniformImage(1200, 900, 240))

	assert.Contains(t, report.Issues, "overexposed")
	assert.Equal(t, 75, report.Score)
	assert.True(t, report.NeedConditioning)
}

func TestAnalyzeQualityLowResolution(t *testing.T) {
	report := AnalyzeQuality(checkerImage(640, 480))

	assert.Contains(t, report.Issues, "low resolution")
	assert.Equal(t, 80, report.Score)
	assert.False(t, report.NeedConditioning)
}

func TestAnalyzeQualityStackedPenalties(t *testing.T) {
	// Small, dark, and flat: 100 - 20 - 15 - 10.
	report := AnalyzeQuality(uniformImage(320, 240, 20))

	assert.Equal(t, 55, report.Score)
	assert.True(t, report.NeedConditioning)
	assert.Len(t, report.Issues, 3)
}
