/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package toolcall

import (
	"context"
	"fmt"

	"chainguard.dev/issueassistant/agents/agenttrace"
	"chainguard.dev/issueassistant/agents/schema"
	"chainguard.dev/issueassistant/agents/toolcall/params"
)

// ToolCall is a provider-independent representation of a tool call.
type ToolCall struct {
	ID   string
	Name string
	Args map[string]any
}

// Definition describes a tool's schema (name, description, parameters).
type Definition struct {
	Name        string
	Description string
	Parameters  []Parameter
}

// Parameter describes a single tool parameter.
type Parameter struct {
	Name        string
	Type        string // "string", "integer", "boolean", "number"
	Description string
	Required    bool
}

// Schema returns the JSON schema of the tool's arguments.
func (d Definition) Schema() (map[string]any, error) {
	fields := make([]schema.Field, 0, len(d.Parameters))
	for _, p := range d.Parameters {
		fields = append(fields, schema.Field{
			Name:        p.Name,
			Type:        p.Type,
			Description: p.Description,
			Required:    p.Required,
		})
	}
	m, err := schema.ToMap(schema.Object(fields...))
	if err != nil {
		return nil, fmt.Errorf("tool %s: %w", d.Name, err)
	}
	return m, nil
}

// Tool pairs a definition with the handler that serves it. The handler's
// return value is sent back to the model as the tool result.
type Tool[Resp any] struct {
	Def     Definition
	Handler func(ctx context.Context, call ToolCall, trace *agenttrace.Trace[Resp]) map[string]any
}

// Param extracts a required parameter from the tool call args.
// On error, records a bad tool call on the trace and returns an error response.
func Param[T any](call ToolCall, trace interface {
	BadToolCall(string, string, map[string]any, error)
}, name string) (T, map[string]any) {
	v, err := params.Extract[T](call.Args, name)
	if err != nil {
		trace.BadToolCall(call.ID, call.Name, call.Args, err)
		return v, params.Error("%s", err)
	}
	return v, nil
}

// OptionalParam extracts an optional parameter, returning defaultValue when
// it is absent. A present but malformed value is a bad tool call, as in Param.
func OptionalParam[T any](call ToolCall, trace interface {
	BadToolCall(string, string, map[string]any, error)
}, name string, defaultValue T) (T, map[string]any) {
	v, err := params.ExtractOptional(call.Args, name, defaultValue)
	if err != nil {
		trace.BadToolCall(call.ID, call.Name, call.Args, err)
		return v, params.Error("%s", err)
	}
	return v, nil
}
