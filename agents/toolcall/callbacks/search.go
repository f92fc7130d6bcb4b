/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package callbacks

import "context"

// SearchResult is one web page returned by a search.
type SearchResult struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// SearchCallbacks gives an agent access to web search.
type SearchCallbacks struct {
	// Search returns up to count results for query.
	Search func(ctx context.Context, query string, count int) ([]SearchResult, error)

	// MaxResults caps the count a model may request. Zero means 10.
	MaxResults int
}

// HasSearch reports whether the Search callback is available.
func (s SearchCallbacks) HasSearch() bool {
	return s.Search != nil
}

// Limit returns the effective result cap.
func (s SearchCallbacks) Limit() int {
	if s.MaxResults <= 0 {
		return 10
	}
	return s.MaxResults
}
