package pipeline

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastetrack/slips-tracker/constants"
	"github.com/wastetrack/slips-tracker/internal/common"
	"github.com/wastetrack/slips-tracker/internal/imaging"
	"github.com/wastetrack/slips-tracker/internal/parser"
	"github.com/wastetrack/slips-tracker/internal/recognition"
)

type fakeRecognizer struct {
	content string
	err     error
	calls   int
	lastLen int
}

func (f *fakeRecognizer) Recognize(_ context.Context, img []byte, _ recognition.Strategy) (recognition.Result, error) {
	f.calls++
	f.lastLen = len(img)
	if f.err != nil {
		return recognition.Result{}, f.err
	}
	return recognition.Result{Content: f.content, Model: "fake"}, nil
}

type fakeDupes struct {
	dup  bool
	err  error
	seen [3]string
}

func (f *fakeDupes) IsDuplicate(_ context.Context, date, client, weight string) (bool, error) {
	f.seen = [3]string{date, client, weight}
	return f.dup, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func slipImage(t *testing.T, w, h int, gray uint8) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// A faint checker keeps contrast up so quality stays clean.
			c := gray
			if (x/8+y/8)%2 == 0 {
				c = 255 - gray
			}
			img.Set(x, y, color.RGBA{c, c, c, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func newExtractor(t *testing.T, rec recognition.Recognizer, dupes DuplicateChecker) *Extractor {
	t.Helper()
	cfg := common.ImagingConfig{ArtifactDir: t.TempDir(), MaxUploadMB: 10}
	return NewExtractor(
		testLogger(),
		cfg,
		imaging.NewConditioner(cfg, testLogger()),
		rec,
		parser.New(testLogger()),
		dupes,
	)
}

const weighingTranscript = `2025年6月27日
コード1 1234 妙高アクアクリーンセンター
コード2 5678 汚泥
正味重量 2,110 kg`

func TestExtractWeighingSlip(t *testing.T) {
	rec := &fakeRecognizer{content: weighingTranscript}
	dupes := &fakeDupes{}
	e := newExtractor(t, rec, dupes)

	res, err := e.Extract(context.Background(), slipImage(t, 1200, 900, 40), constants.SlipTypeWeighing)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-27", res.Fields.Date)
	assert.Equal(t, "妙高アクアクリーンセンター", res.Fields.ClientName)
	assert.Equal(t, "汚泥", res.Fields.ItemName)
	assert.Equal(t, "2110", res.Fields.NetWeight)
	assert.False(t, res.Duplicate)
	assert.Equal(t, 100, res.Confidence["netWeight"].Score)
	assert.NotNil(t, res.Quality)
	assert.Equal(t, 1, rec.calls)

	// Duplicate lookup got the identity triple.
	assert.Equal(t, [3]string{"2025-06-27", "妙高アクアクリーンセンター", "2110"}, dupes.seen)
}

func TestExtractFlagsDuplicate(t *testing.T) {
	rec := &fakeRecognizer{content: weighingTranscript}
	e := newExtractor(t, rec, &fakeDupes{dup: true})

	res, err := e.Extract(context.Background(), slipImage(t, 1200, 900, 40), constants.SlipTypeWeighing)
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
}

func TestExtractDuplicateCheckErrorIsNotFatal(t *testing.T) {
	rec := &fakeRecognizer{content: weighingTranscript}
	e := newExtractor(t, rec, &fakeDupes{err: errors.New("db down")})

	res, err := e.Extract(context.Background(), slipImage(t, 1200, 900, 40), constants.SlipTypeWeighing)
	require.NoError(t, err)
	assert.False(t, res.Duplicate)
}

func TestExtractRejectsUnknownSlipType(t *testing.T) {
	rec := &fakeRecognizer{content: "x"}
	e := newExtractor(t, rec, nil)

	_, err := e.Extract(context.Background(), slipImage(t, 1200, 900, 40), constants.SlipType("納品書"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Zero(t, rec.calls)
}

func TestExtractRejectsEmptyImage(t *testing.T) {
	e := newExtractor(t, &fakeRecognizer{}, nil)

	_, err := e.Extract(context.Background(), nil, constants.SlipTypeReceipt)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestExtractRejectsOversizedImage(t *testing.T) {
	rec := &fakeRecognizer{}
	cfg := common.ImagingConfig{ArtifactDir: t.TempDir(), MaxUploadMB: 1}
	e := NewExtractor(testLogger(), cfg, imaging.NewConditioner(cfg, testLogger()), rec, parser.New(testLogger()), nil)

	huge := make([]byte, 2*1024*1024)
	_, err := e.Extract(context.Background(), huge, constants.SlipTypeReceipt)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Zero(t, rec.calls)
}

func TestExtractRejectsUndecodableImage(t *testing.T) {
	rec := &fakeRecognizer{}
	e := newExtractor(t, rec, nil)

	_, err := e.Extract(context.Background(), []byte("not a jpeg"), constants.SlipTypeTicket)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Zero(t, rec.calls)
}

func TestExtractPropagatesRefusal(t *testing.T) {
	rec := &fakeRecognizer{err: common.ErrContentNotReadable}
	e := newExtractor(t, rec, nil)

	_, err := e.Extract(context.Background(), slipImage(t, 1200, 900, 40), constants.SlipTypeTicket)
	assert.ErrorIs(t, err, common.ErrContentNotReadable)
	assert.Equal(t, 1, rec.calls)
}

func TestExtractHonorsCancelledContext(t *testing.T) {
	rec := &fakeRecognizer{content: "x"}
	e := newExtractor(t, rec, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Extract(ctx, slipImage(t, 1200, 900, 40), constants.SlipTypeWeighing)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, rec.calls)
}

func TestExtractConditionsPoorCaptures(t *testing.T) {
	rec := &fakeRecognizer{content: weighingTranscript}
	e := newExtractor(t, rec, nil)

	// Uniform dark image scores below the conditioning threshold.
	img := image.NewRGBA(image.Rect(0, 0, 1200, 900))
	for y := 0; y < 900; y++ {
		for x := 0; x < 1200; x++ {
			img.Set(x, y, color.RGBA{25, 25, 25, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	original := buf.Bytes()

	res, err := e.Extract(context.Background(), original, constants.SlipTypeWeighing)
	require.NoError(t, err)
	assert.True(t, res.Quality.NeedConditioning)
	// The recognizer saw the conditioned rendition, not the original bytes.
	assert.NotEqual(t, len(original), rec.lastLen)
}

func TestExtractCleansUpArtifacts(t *testing.T) {
	dir := t.TempDir()
	cfg := common.ImagingConfig{ArtifactDir: dir, MaxUploadMB: 10}
	rec := &fakeRecognizer{content: weighingTranscript}
	e := NewExtractor(testLogger(), cfg, imaging.NewConditioner(cfg, testLogger()), rec, parser.New(testLogger()), nil)

	_, err := e.Extract(context.Background(), slipImage(t, 1200, 900, 40), constants.SlipTypeWeighing)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtractCleansUpArtifactsOnFailure(t *testing.T) {
	dir := t.TempDir()
	cfg := common.ImagingConfig{ArtifactDir: dir, MaxUploadMB: 10}
	rec := &fakeRecognizer{err: common.ErrServiceUnavailable}
	e := NewExtractor(testLogger(), cfg, imaging.NewConditioner(cfg, testLogger()), rec, parser.New(testLogger()), nil)

	_, err := e.Extract(context.Background(), slipImage(t, 1200, 900, 40), constants.SlipTypeWeighing)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCheckQuality(t *testing.T) {
	e := newExtractor(t, &fakeRecognizer{}, nil)

	report, err := e.CheckQuality(slipImage(t, 1200, 900, 40))
	require.NoError(t, err)
	assert.Equal(t, 100, report.Score)

	_, err = e.CheckQuality(nil)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
