// file: internal/maproulette/client.go
// version: 1.1.0
// guid: 7f9b1d3c-5e8a-4a0c-b2d4-6e8a0c2e4b6d

package maproulette

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/osmlint/roadname-checker/internal/task"
)

// Client submits tasks to a MapRoulette server. Requests are paced with a
// token bucket so bulk submissions stay inside the server's posted limits.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// NewClient creates a MapRoulette API client. requestsPerSecond caps the
// submission rate; values below or equal to zero fall back to 1 rps.
func NewClient(baseURL, apiKey string, requestsPerSecond float64) *Client {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// SubmitTask posts one task document under the given challenge.
func (c *Client) SubmitTask(ctx context.Context, challengeID int64, t *task.Task) error {
	doc, err := t.Generate(challengeID)
	if err != nil {
		return err
	}
	return c.post(ctx, "/task", doc)
}

// SubmitBatch posts every task in the batch, stopping at the first error.
func (c *Client) SubmitBatch(ctx context.Context, challengeID int64, tasks []*task.Task) error {
	for _, t := range tasks {
		if err := c.SubmitTask(ctx, challengeID, t); err != nil {
			return fmt.Errorf("task %s: %w", t.Identifier, err)
		}
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apiKey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return nil
}
