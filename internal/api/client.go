// Package api is the client for the remote price-comparison service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PortellaAlly/bestprice/internal/catalog"
)

// Requests that run longer than this are abandoned and reported as
// transport failures. Store scraping on the backend is slow, hence the
// generous ceiling.
const requestTimeout = 30 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func New(baseURL string, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

// Search runs a product search for query. Failures are logged and
// returned to the caller, never swallowed.
func (c *Client) Search(ctx context.Context, query string) (*catalog.SearchResponse, error) {
	const opn = "api.Search"

	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("%s: encoding request: %w", opn, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/products/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: building request: %w", opn, err)
	}
	req.Header.Set("Content-Type", "application/json")

	var out catalog.SearchResponse
	if err := c.do(req, &out); err != nil {
		c.log.ErrorContext(ctx, "product search failed", "op", opn, "query", query, "error", err)
		return nil, err
	}

	c.log.InfoContext(ctx, "product search finished", "op", opn, "query", query, "count", out.Count)
	return &out, nil
}

// History fetches the recorded price history for a product id.
func (c *Client) History(ctx context.Context, productID int) (*catalog.History, error) {
	const opn = "api.History"

	url := fmt.Sprintf("%s/products/%d/history", c.baseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: building request: %w", opn, err)
	}

	var out catalog.History
	if err := c.do(req, &out); err != nil {
		c.log.ErrorContext(ctx, "history fetch failed", "op", opn, "product_id", productID, "error", err)
		return nil, err
	}

	c.log.InfoContext(ctx, "history fetched", "op", opn, "product_id", productID, "points", len(out.Points))
	return &out, nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
