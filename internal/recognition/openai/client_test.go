package openai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastetrack/slips-tracker/constants"
	"github.com/wastetrack/slips-tracker/internal/common"
	"github.com/wastetrack/slips-tracker/internal/recognition"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(baseURL string) *Client {
	return NewClient(common.RecognitionConfig{
		APIKey:     "test-key",
		BaseURL:    baseURL,
		Model:      "gpt-4o",
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
	}, testLogger())
}

func chatResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func TestRecognizeSuccess(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = io.WriteString(w, chatResponse("コード1 1234 妙高アクアクリーンセンター"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	strat := recognition.StrategyFor(constants.SlipTypeWeighing)

	res, err := c.Recognize(context.Background(), []byte("fake-jpeg"), strat)
	require.NoError(t, err)
	assert.Contains(t, res.Content, "妙高アクアクリーンセンター")
	assert.Equal(t, "gpt-4o", res.Model)

	// Free-text layouts carry no system message.
	msgs := gotBody["messages"].([]any)
	assert.Len(t, msgs, 1)
	assert.Equal(t, float64(4000), gotBody["max_tokens"])
}

func TestRecognizeStructuredSendsSystemPrompt(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = io.WriteString(w, chatResponse(`{"date":"2025-06-27"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	strat := recognition.StrategyFor(constants.SlipTypeReceipt)

	_, err := c.Recognize(context.Background(), []byte("fake-jpeg"), strat)
	require.NoError(t, err)

	msgs := gotBody["messages"].([]any)
	require.Len(t, msgs, 2)
	first := msgs[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
}

func TestRecognizeRefusalNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = io.WriteString(w, chatResponse("申し訳ありませんが、この画像のテキストを読み取ることはできません。"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	strat := recognition.StrategyFor(constants.SlipTypeTicket)

	_, err := c.Recognize(context.Background(), []byte("fake-jpeg"), strat)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrContentNotReadable)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRecognizeRetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = io.WriteString(w, `{"error":{"message":"rate limited"}}`)
			return
		}
		_, _ = io.WriteString(w, chatResponse("日付 2025/06/27"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	strat := recognition.StrategyFor(constants.SlipTypeInspection)

	res, err := c.Recognize(context.Background(), []byte("fake-jpeg"), strat)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Contains(t, res.Content, "2025/06/27")
}

func TestRecognizeExhaustedRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	strat := recognition.StrategyFor(constants.SlipTypeWeighing)

	_, err := c.Recognize(context.Background(), []byte("fake-jpeg"), strat)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrServiceUnavailable)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRecognizeBadRequestNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"message":"invalid image"}}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	strat := recognition.StrategyFor(constants.SlipTypeReceipt)

	_, err := c.Recognize(context.Background(), []byte("fake-jpeg"), strat)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrServiceUnavailable)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRecognizeHonorsContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(common.RecognitionConfig{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		MaxRetries: 3,
		RetryDelay: time.Second,
	}, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	strat := recognition.StrategyFor(constants.SlipTypeWeighing)
	_, err := c.Recognize(ctx, []byte("fake-jpeg"), strat)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
