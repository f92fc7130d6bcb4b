/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package bing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/google/go-querystring/query"

	"chainguard.dev/issueassistant/agents/toolcall/callbacks"
)

// DefaultEndpoint is the Bing Web Search v7 endpoint.
const DefaultEndpoint = "https://api.bing.microsoft.com/v7.0/search"

// MaxCount is the largest page size the service accepts.
const MaxCount = 50

// ErrEmptyQuery is returned when Search is called without a query.
var ErrEmptyQuery = errors.New("search query is empty")

// Result is one web page from a search.
type Result struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// APIError is a non-2xx answer from the search service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("bing search: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("bing search: %d %s", e.StatusCode, e.Message)
}

// Client queries Bing Web Search.
type Client struct {
	httpClient      *http.Client
	endpoint        string
	subscriptionKey string
	market          string
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides DefaultEndpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMarket sets the mkt parameter, e.g. "en-US".
func WithMarket(market string) Option {
	return func(c *Client) { c.market = market }
}

// NewClient returns a client authenticating with subscriptionKey.
func NewClient(subscriptionKey string, opts ...Option) *Client {
	c := &Client{
		httpClient:      http.DefaultClient,
		endpoint:        DefaultEndpoint,
		subscriptionKey: subscriptionKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchParams struct {
	Query  string `url:"q"`
	Count  int    `url:"count,omitempty"`
	Market string `url:"mkt,omitempty"`
}

type searchResponse struct {
	WebPages struct {
		Value []Result `json:"value"`
	} `json:"webPages"`
}

// Bing reports errors in two shapes depending on which layer rejected the
// request: the gateway uses "error", the search service uses "errors".
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// Search returns up to count web pages for q. A count outside 1..MaxCount
// is clamped.
func (c *Client) Search(ctx context.Context, q string, count int) ([]Result, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, ErrEmptyQuery
	}
	count = min(max(count, 1), MaxCount)

	values, err := query.Values(searchParams{Query: q, Count: count, Market: c.market})
	if err != nil {
		return nil, fmt.Errorf("encoding search parameters: %w", err)
	}
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parsing search endpoint: %w", err)
	}
	u.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.subscriptionKey)
	req.Header.Set("Accept", "application/json")

	clog.FromContext(ctx).With("query", q).With("count", count).Debug("Querying Bing")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bing search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("reading search response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	if sr.WebPages.Value == nil {
		return []Result{}, nil
	}
	return sr.WebPages.Value, nil
}

func errorMessage(body []byte) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return strings.TrimSpace(string(body))
	}
	if er.Error.Message != "" {
		return er.Error.Message
	}
	if len(er.Errors) > 0 {
		return er.Errors[0].Message
	}
	return ""
}

// Callbacks exposes the client as the search callbacks of an agent's tools.
func (c *Client) Callbacks() callbacks.SearchCallbacks {
	return callbacks.SearchCallbacks{
		Search: func(ctx context.Context, q string, count int) ([]callbacks.SearchResult, error) {
			results, err := c.Search(ctx, q, count)
			if err != nil {
				return nil, err
			}
			out := make([]callbacks.SearchResult, len(results))
			for i, r := range results {
				out[i] = callbacks.SearchResult(r)
			}
			return out, nil
		},
		MaxResults: 10,
	}
}
