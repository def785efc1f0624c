package batch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastetrack/slips-tracker/constants"
	"github.com/wastetrack/slips-tracker/internal/entity"
)

type fakeProcessor struct {
	mu    sync.Mutex
	calls int
	fail  map[string]bool // keyed by image contents
	dup   map[string]bool
}

func (f *fakeProcessor) Extract(_ context.Context, image []byte, slipType constants.SlipType) (*entity.ExtractionResult, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	key := string(image)
	if f.fail[key] {
		return nil, os.ErrInvalid
	}
	return &entity.ExtractionResult{
		SlipType:  slipType,
		Fields:    entity.ExtractedFields{ClientName: key},
		Duplicate: f.dup[key],
	}, nil
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRunExtractsMatchingImages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.jpg", "one")
	writeFile(t, dir, "two.JPEG", "two")
	writeFile(t, dir, "three.png", "three")
	writeFile(t, dir, "notes.txt", "skip me")

	proc := &fakeProcessor{dup: map[string]bool{"two": true}}
	r := NewRunner(proc, slog.New(slog.NewTextHandler(os.Stderr, nil)), WithWorkers(2))

	results, stats, err := r.Run(context.Background(), dir, constants.SlipTypeWeighing, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(4), stats.Scanned)
	assert.Equal(t, uint32(3), stats.Matched)
	assert.Equal(t, uint32(3), stats.Succeeded)
	assert.Equal(t, uint32(1), stats.Duplicates)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Len(t, results, 3)
	assert.Equal(t, 3, proc.calls)

	byClient := map[string]Result{}
	for _, res := range results {
		byClient[res.Fields.ClientName] = res
	}
	assert.True(t, byClient["two"].Duplicate)
	assert.False(t, byClient["one"].Duplicate)
}

func TestRunRecordsPerFileFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.jpg", "good")
	writeFile(t, dir, "bad.jpg", "bad")

	proc := &fakeProcessor{fail: map[string]bool{"bad": true}}
	r := NewRunner(proc, nil, WithWorkers(1))

	results, stats, err := r.Run(context.Background(), dir, constants.SlipTypeReceipt, false)
	require.NoError(t, err)

	assert.Equal(t, uint32(1), stats.Succeeded)
	assert.Equal(t, uint32(1), stats.Failed)
	require.Len(t, results, 2)
	for _, res := range results {
		if filepath.Base(res.Path) == "bad.jpg" {
			assert.NotEmpty(t, res.Err)
		} else {
			assert.Empty(t, res.Err)
		}
	}
}

func TestRunSkipsHiddenDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "visible.jpg", "visible")
	writeFile(t, dir, filepath.Join(".cache", "hidden.jpg"), "hidden")

	proc := &fakeProcessor{}
	r := NewRunner(proc, nil)

	_, stats, err := r.Run(context.Background(), dir, constants.SlipTypeTicket, true)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), stats.Matched)
	assert.Equal(t, 1, proc.calls)
}

func TestRunRejectsBadArguments(t *testing.T) {
	r := NewRunner(&fakeProcessor{}, nil)

	_, _, err := r.Run(context.Background(), "", constants.SlipTypeReceipt, false)
	assert.Error(t, err)

	_, _, err = r.Run(context.Background(), t.TempDir(), constants.SlipType("納品書"), false)
	assert.Error(t, err)
}
