/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package toolcall

import (
	"context"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/issueassistant/agents/agenttrace"
	"chainguard.dev/issueassistant/agents/toolcall/callbacks"
	"chainguard.dev/issueassistant/agents/toolcall/params"
)

// SearchToolName is the name the model uses to call web search.
const SearchToolName = "bing_search"

// SearchTools wraps a base tools type and adds search callbacks.
type SearchTools[T any] struct {
	base T
	callbacks.SearchCallbacks
}

// NewSearchTools creates a SearchTools wrapping the given base tools.
func NewSearchTools[T any](base T, cb callbacks.SearchCallbacks) SearchTools[T] {
	return SearchTools[T]{base: base, SearchCallbacks: cb}
}

type searchToolsProvider[Resp, T any] struct {
	baseProvider ToolProvider[Resp, T]
}

var _ ToolProvider[any, SearchTools[any]] = (*searchToolsProvider[any, any])(nil)

// NewSearchToolsProvider adds bing_search on top of the base provider's
// tools, when a Search callback is available.
func NewSearchToolsProvider[Resp, T any](base ToolProvider[Resp, T]) ToolProvider[Resp, SearchTools[T]] {
	return searchToolsProvider[Resp, T]{baseProvider: base}
}

func (p searchToolsProvider[Resp, T]) Tools(cb SearchTools[T]) map[string]Tool[Resp] {
	tools := p.baseProvider.Tools(cb.base)
	if cb.HasSearch() {
		tools[SearchToolName] = searchTool[Resp](cb.SearchCallbacks)
	}
	return tools
}

func searchTool[Resp any](cb callbacks.SearchCallbacks) Tool[Resp] {
	return Tool[Resp]{
		Def: Definition{
			Name: SearchToolName,
			Description: "Search the web with Bing. Use this to check current facts, " +
				"such as whether an Azure feature or API is generally available or still in preview.",
			Parameters: []Parameter{
				{Name: "query", Type: "string", Description: "The search query.", Required: true},
				{Name: "count", Type: "integer", Description: "Number of results to return (default and maximum 10)."},
			},
		},
		Handler: func(ctx context.Context, call ToolCall, trace *agenttrace.Trace[Resp]) map[string]any {
			log := clog.FromContext(ctx)

			query, errResp := Param[string](call, trace, "query")
			if errResp != nil {
				return errResp
			}
			count, errResp := OptionalParam(call, trace, "count", cb.Limit())
			if errResp != nil {
				return errResp
			}
			count = min(max(count, 1), cb.Limit())

			tc := trace.StartToolCall(call.ID, call.Name, map[string]any{"query": query, "count": count})

			results, err := cb.Search(ctx, query, count)
			if err != nil {
				log.With("query", query).With("error", err).Warn("Search failed")
				result := params.ErrorWithContext(err, map[string]any{"query": query})
				tc.Complete(result, err)
				return result
			}

			if results == nil {
				results = []callbacks.SearchResult{}
			}
			log.With("query", query).With("results", len(results)).Info("Searched the web")
			result := map[string]any{
				"query":   query,
				"results": results,
			}
			tc.Complete(result, nil)
			return result
		},
	}
}

