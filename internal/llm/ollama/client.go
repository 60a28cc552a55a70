// Package ollama implements llm.Generator against a local Ollama server's
// /api/generate endpoint.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parcelworks/labelextract/internal/common"
)

type Client struct {
	cfg        common.LLMConfig
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient builds a client for the configured Ollama endpoint. The timeout
// bounds each Generate call end to end.
func NewClient(cfg common.LLMConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// Generate sends the prompt with streaming off and the configured
// temperature (0 for reproducible output) and returns the backend's raw
// textual response verbatim. Connectivity failures and non-2xx statuses
// wrap common.ErrBackendUnavailable; deadline overruns wrap
// common.ErrTimeout.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	body := map[string]any{
		"model":  c.cfg.Model,
		"prompt": prompt,
		"stream": false,
		"options": map[string]any{
			"temperature": c.cfg.Temperature,
		},
	}
	bs, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Info("llm.generate.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"prompt_len", len(prompt),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		elapsed := time.Since(start).Milliseconds()
		if isTimeout(err) {
			c.log.Error("llm.generate.timeout", "req_id", rid, "error", err, "elapsed_ms", elapsed)
			return "", common.NewAppError("LLM_TIMEOUT",
				fmt.Sprintf("generate call exceeded %s", c.cfg.Timeout), common.ErrTimeout)
		}
		c.log.Error("llm.generate.send_error", "req_id", rid, "error", err, "elapsed_ms", elapsed)
		return "", common.NewAppError("LLM_UNAVAILABLE", err.Error(), common.ErrBackendUnavailable)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Warn("llm.generate.body_close_error", "req_id", rid, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		c.log.Error("llm.generate.bad_status",
			"req_id", rid, "status", resp.StatusCode,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", common.NewAppError("LLM_UNAVAILABLE",
			fmt.Sprintf("non-2xx status: %d", resp.StatusCode), common.ErrBackendUnavailable)
	}

	var out struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		c.log.Error("llm.generate.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return "", common.NewAppError("LLM_UNAVAILABLE",
			"undecodable backend envelope", common.ErrBackendUnavailable)
	}

	c.log.Info("llm.generate.ok",
		"req_id", rid,
		"response_len", len(out.Response),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out.Response, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
