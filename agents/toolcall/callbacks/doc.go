/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package callbacks holds the callback types tools are built from. It has no
SDK dependencies, so clients such as the bing package can produce callbacks
without importing the agent stack.

	cb := callbacks.SearchCallbacks{
		Search: func(ctx context.Context, query string, count int) ([]callbacks.SearchResult, error) {
			// query a search engine
		},
	}
*/
package callbacks
