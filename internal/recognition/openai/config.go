package openai

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/wastetrack/slips-tracker/internal/common"
)

// Client talks to the OpenAI vision chat/completions endpoint.
type Client struct {
	cfg        common.RecognitionConfig
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg common.RecognitionConfig, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 3 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}
