package billplz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type rawResponse struct {
	StatusCode int
	Body       []byte
}

func (c *Client) get(ctx context.Context, path string) (*rawResponse, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, payload any) (*rawResponse, error) {
	return c.do(ctx, http.MethodPost, path, payload)
}

// do performs a single round trip. Only transport failures are errors here;
// status handling belongs to the caller.
func (c *Client) do(ctx context.Context, method, path string, payload any) (*rawResponse, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, transportError(err)
	}
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(fmt.Errorf("read response: %w", err))
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("billplz request")

	return &rawResponse{StatusCode: resp.StatusCode, Body: respBody}, nil
}

func resourcePath(base, id string) string {
	return base + "/" + url.PathEscape(id)
}
