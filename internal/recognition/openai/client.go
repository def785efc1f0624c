package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wastetrack/slips-tracker/internal/common"
	"github.com/wastetrack/slips-tracker/internal/recognition"
)

// statusError carries the HTTP status so the retry loop can classify it.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("openai status %d: %s", e.code, e.body)
}

func retryable(err error) bool {
	if se, ok := err.(*statusError); ok {
		return se.code == http.StatusTooManyRequests || se.code >= 500
	}
	// Transport-level failures (timeouts, resets) are worth another try.
	return true
}

// Recognize implements recognition.Recognizer against chat/completions.
// Rate limits and server errors are retried with a linearly growing delay;
// a refusal from the model is terminal and returned as ErrContentNotReadable.
func (c *Client) Recognize(ctx context.Context, image []byte, strat recognition.Strategy) (recognition.Result, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("recognition.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"slip_type", strat.SlipType.String(),
		"mode", string(strat.Mode),
		"detail", strat.Detail,
		"image_bytes", len(image),
	)

	body := c.buildRequest(image, strat)
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"

	var raw []byte
	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxRetries; attempt++ {
		raw, lastErr = c.post(ctx, endpoint, body)
		if lastErr == nil {
			break
		}
		if ctx.Err() != nil {
			return recognition.Result{}, ctx.Err()
		}
		if !retryable(lastErr) || attempt == c.cfg.MaxRetries {
			c.log.Error("recognition.http_error",
				"req_id", rid, "attempt", attempt, "error", lastErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return recognition.Result{}, fmt.Errorf("%w: %v", common.ErrServiceUnavailable, lastErr)
		}

		delay := c.cfg.RetryDelay * time.Duration(attempt)
		c.log.Warn("recognition.retry",
			"req_id", rid, "attempt", attempt, "delay", delay.String(), "error", lastErr,
		)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return recognition.Result{}, ctx.Err()
		}
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("recognition.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return recognition.Result{}, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("recognition.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return recognition.Result{}, fmt.Errorf("no choices in openai response")
	}

	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	if recognition.IsRefusal(content) {
		c.log.Warn("recognition.refused",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return recognition.Result{}, common.ErrContentNotReadable
	}

	c.log.Info("recognition.ok",
		"req_id", rid,
		"content_len", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return recognition.Result{Content: content, Model: c.cfg.Model}, nil
}

func (c *Client) buildRequest(image []byte, strat recognition.Strategy) map[string]any {
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)

	userContent := []map[string]any{
		{"type": "text", "text": strat.UserPrompt},
		{"type": "image_url", "image_url": map[string]any{
			"url":    dataURL,
			"detail": strat.Detail,
		}},
	}

	messages := make([]map[string]any, 0, 2)
	if strat.SystemPrompt != "" {
		messages = append(messages, map[string]any{
			"role": "system", "content": strat.SystemPrompt,
		})
	}
	messages = append(messages, map[string]any{
		"role": "user", "content": userContent,
	})

	return map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"max_tokens":  strat.MaxTokens,
		"messages":    messages,
	}
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if cerr := Body.Close(); cerr != nil {
			c.log.Warn("openai response body close error", "error", cerr)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{code: resp.StatusCode, body: buf.String()}
	}
	return buf.Bytes(), nil
}
