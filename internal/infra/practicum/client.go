// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"
)

const maxErrorBody = 512

// Client implements homework.ReviewClient against the Practicum homework_statuses API.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

func NewClient(endpoint, token string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Statuses requests homework status changes since fromDate (unix seconds).
func (c *Client) Statuses(ctx context.Context, fromDate int64) (*homework.Response, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, &homework.FetchError{Err: fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err)}
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &homework.FetchError{Err: err}
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &homework.FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &homework.FetchError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response %s: %s", resp.Status, body),
		}
	}

	var out homework.Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &homework.FetchError{Err: fmt.Errorf("cannot decode response body: %w", err)}
	}
	return &out, nil
}
