// Package discourse fetches raw topic payloads from a Discourse forum.
package discourse

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sandevgo/nutshell/internal/config"
	"github.com/sandevgo/nutshell/internal/core"
	"github.com/sandevgo/nutshell/pkg/log"
	"github.com/sandevgo/nutshell/pkg/retry"
)

const (
	maxResponseSize     = 16 << 20 // 16MB; large topics are big payloads
	defaultFetchTimeout = 30 * time.Second
)

type Client struct {
	client  *http.Client
	retrier *retry.Retrier
	baseURL string
	apiKey  string
}

func NewClient(cfg *config.DiscourseConfig) *Client {
	return &Client{
		client: &http.Client{
			Timeout: defaultFetchTimeout,
		},
		retrier: retry.NewDefaultRetrier(),
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

// FetchTopic retrieves the raw topic payload for one topic id. The
// payload is returned as-is; extraction and validation happen in the
// pipeline.
func (c *Client) FetchTopic(ctx context.Context, topicID int) ([]byte, error) {
	url := fmt.Sprintf("%s/t/%d.json?print=true", c.baseURL, topicID)

	var body []byte
	err := c.retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", core.UserAgent)
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("failed to fetch topic: %w", err)
		}
		defer resp.Body.Close()

		log.FromCtx(ctx).Info().
			Int("status", resp.StatusCode).
			Str("content_type", resp.Header.Get("Content-Type")).
			Int("topic_id", topicID).
			Msg("topic fetched")

		if resp.StatusCode >= 400 {
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		if err != nil {
			return fmt.Errorf("failed to read body: %w", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return body, nil
}

// FetchTopicToFile writes the raw payload to path, overwriting it.
func (c *Client) FetchTopicToFile(ctx context.Context, topicID int, path string) error {
	body, err := c.FetchTopic(ctx, topicID)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, body, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
