/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package toolcall_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"chainguard.dev/issueassistant/agents/agenttrace"
	"chainguard.dev/issueassistant/agents/toolcall"
	"chainguard.dev/issueassistant/agents/toolcall/callbacks"
)

func TestEmptyProvider(t *testing.T) {
	tools := toolcall.NewEmptyToolsProvider[string]().Tools(toolcall.EmptyTools{})
	if len(tools) != 0 {
		t.Errorf("tools: got = %d, wanted = 0", len(tools))
	}
}

func TestSearchProviderWithoutCallback(t *testing.T) {
	provider := toolcall.NewSearchToolsProvider(toolcall.NewEmptyToolsProvider[string]())
	tools := provider.Tools(toolcall.NewSearchTools(toolcall.EmptyTools{}, callbacks.SearchCallbacks{}))
	if len(tools) != 0 {
		t.Errorf("tools: got = %d, wanted = 0", len(tools))
	}
}

func TestSearchTool(t *testing.T) {
	var gotQuery string
	var gotCount int
	cb := callbacks.SearchCallbacks{
		Search: func(_ context.Context, query string, count int) ([]callbacks.SearchResult, error) {
			gotQuery, gotCount = query, count
			if query == "fail" {
				return nil, errors.New("quota exceeded")
			}
			return []callbacks.SearchResult{{Name: "Docs", URL: "https://learn.microsoft.com", Snippet: "GA"}}, nil
		},
	}
	provider := toolcall.NewSearchToolsProvider(toolcall.NewEmptyToolsProvider[string]())
	tools := provider.Tools(toolcall.NewSearchTools(toolcall.EmptyTools{}, cb))

	tool, ok := tools[toolcall.SearchToolName]
	if !ok {
		t.Fatalf("tools: got = %v, wanted = %s", tools, toolcall.SearchToolName)
	}

	tests := []struct {
		name      string
		args      map[string]any
		wantQuery string
		wantCount int
		wantKey   string
	}{{
		name:      "default count",
		args:      map[string]any{"query": "azure vnet preview"},
		wantQuery: "azure vnet preview",
		wantCount: 10,
		wantKey:   "results",
	}, {
		name:      "count is clamped",
		args:      map[string]any{"query": "q", "count": float64(50)},
		wantQuery: "q",
		wantCount: 10,
		wantKey:   "results",
	}, {
		name:      "explicit count",
		args:      map[string]any{"query": "q", "count": float64(3)},
		wantQuery: "q",
		wantCount: 3,
		wantKey:   "results",
	}, {
		name:      "search error",
		args:      map[string]any{"query": "fail"},
		wantQuery: "fail",
		wantCount: 10,
		wantKey:   "error",
	}, {
		name:    "missing query",
		args:    map[string]any{},
		wantKey: "error",
	}, {
		name:    "bad count",
		args:    map[string]any{"query": "q", "count": "many"},
		wantKey: "error",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotQuery, gotCount = "", 0
			trace := agenttrace.ByCode[string]().NewTrace(context.Background(), "prompt")

			resp := tool.Handler(context.Background(), toolcall.ToolCall{ID: "c1", Name: toolcall.SearchToolName, Args: tt.args}, trace)

			if _, ok := resp[tt.wantKey]; !ok {
				t.Errorf("response: got = %v, wanted key %q", resp, tt.wantKey)
			}
			if gotQuery != tt.wantQuery || gotCount != tt.wantCount {
				t.Errorf("Search(%q, %d), wanted Search(%q, %d)", gotQuery, gotCount, tt.wantQuery, tt.wantCount)
			}
			if len(trace.ToolCalls) != 1 {
				t.Errorf("trace tool calls: got = %d, wanted = 1", len(trace.ToolCalls))
			}
		})
	}
}

func TestSearchToolNoResults(t *testing.T) {
	cb := callbacks.SearchCallbacks{
		Search: func(context.Context, string, int) ([]callbacks.SearchResult, error) {
			return nil, nil
		},
	}
	tools := toolcall.NewSearchToolsProvider(toolcall.NewEmptyToolsProvider[string]()).
		Tools(toolcall.NewSearchTools(toolcall.EmptyTools{}, cb))
	trace := agenttrace.ByCode[string]().NewTrace(context.Background(), "prompt")

	resp := tools[toolcall.SearchToolName].Handler(context.Background(),
		toolcall.ToolCall{ID: "c1", Name: toolcall.SearchToolName, Args: map[string]any{"query": "q"}}, trace)

	b, err := json.Marshal(resp["results"])
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != "[]" {
		t.Errorf("results JSON: got = %s, wanted = []", b)
	}
}

func TestDefinitionSchema(t *testing.T) {
	def := toolcall.Definition{
		Name: "t",
		Parameters: []toolcall.Parameter{
			{Name: "query", Type: "string", Description: "q", Required: true},
			{Name: "count", Type: "integer"},
		},
	}
	got, err := def.Schema()
	if err != nil {
		t.Fatalf("Schema() error = %v", err)
	}
	if diff := cmp.Diff([]any{"query"}, got["required"]); diff != "" {
		t.Errorf("required (-want +got):\n%s", diff)
	}
	props, _ := got["properties"].(map[string]any)
	if len(props) != 2 {
		t.Errorf("properties: got = %v, wanted = 2 entries", props)
	}
}
