package imaging

import (
	"bytes"
	"image/jpeg"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastetrack/slips-tracker/constants"
	"github.com/wastetrack/slips-tracker/internal/common"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func encodeJPEG(t *testing.T, w, h int, gray uint8) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, uniformImage(w, h, gray), nil))
	return buf.Bytes()
}

func TestConditionDownscalesOversized(t *testing.T) {
	c := NewConditioner(common.ImagingConfig{}, testLogger())
	data := encodeJPEG(t, 4000, 3000, 128)

	out := c.Condition(data, constants.SlipTypeReceipt)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 2048, img.Bounds().Dx())
	assert.Equal(t, 1536, img.Bounds().Dy())
}

func TestConditionUpscalesTiny(t *testing.T) {
	c := NewConditioner(common.ImagingConfig{}, testLogger())
	data := encodeJPEG(t, 640, 480, 128)

	out := c.Condition(data, constants.SlipTypeWeighing)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1024, img.Bounds().Dx())
	assert.Equal(t, 768, img.Bounds().Dy())
}

func TestConditionKeepsInBoundsDimensions(t *testing.T) {
	c := NewConditioner(common.ImagingConfig{}, testLogger())
	data := encodeJPEG(t, 1600, 1200, 128)

	out := c.Condition(data, constants.SlipTypeTicket)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1600, img.Bounds().Dx())
	assert.Equal(t, 1200, img.Bounds().Dy())
}

func TestConditionReturnsOriginalOnGarbage(t *testing.T) {
	c := NewConditioner(common.ImagingConfig{}, testLogger())
	garbage := []byte("not an image at all")

	out := c.Condition(garbage, constants.SlipTypeInspection)

	assert.Equal(t, garbage, out)
}

func TestConditionWithDenoiseEnabled(t *testing.T) {
	c := NewConditioner(common.ImagingConfig{DenoiseEnable: true}, testLogger())
	data := encodeJPEG(t, 1200, 900, 128)

	out := c.Condition(data, constants.SlipTypeInspection)

	_, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
}

func TestDecodeRejectsEmptyInput(t *testing.T) {
	_, err := Decode(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
