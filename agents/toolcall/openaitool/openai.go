/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package openaitool

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/openai/openai-go"
	"github.com/samber/lo"

	"chainguard.dev/issueassistant/agents/agenttrace"
	"chainguard.dev/issueassistant/agents/toolcall"
	"chainguard.dev/issueassistant/agents/toolcall/params"
)

// Metadata describes a tool available to an OpenAI agent.
type Metadata[Response any] struct {
	// Definition is the chat completions tool definition.
	Definition openai.ChatCompletionToolParam

	// Handler serves one tool call and returns the payload sent back to the model.
	Handler func(ctx context.Context, call openai.ChatCompletionMessageToolCall, trace *agenttrace.Trace[Response]) map[string]any
}

// FromTool converts a unified tool into OpenAI metadata.
func FromTool[Resp any](t toolcall.Tool[Resp]) (Metadata[Resp], error) {
	schema, err := t.Def.Schema()
	if err != nil {
		return Metadata[Resp]{}, err
	}

	fn := openai.FunctionDefinitionParam{
		Name:       t.Def.Name,
		Parameters: openai.FunctionParameters(schema),
	}
	if t.Def.Description != "" {
		fn.Description = openai.String(t.Def.Description)
	}

	return Metadata[Resp]{
		Definition: openai.ChatCompletionToolParam{Function: fn},
		Handler: func(ctx context.Context, call openai.ChatCompletionMessageToolCall, trace *agenttrace.Trace[Resp]) map[string]any {
			args, errResp := NewParams(call)
			if errResp != nil {
				trace.BadToolCall(call.ID, call.Function.Name, nil, fmt.Errorf("%v", errResp["error"]))
				return errResp
			}
			return t.Handler(ctx, toolcall.ToolCall{
				ID:   call.ID,
				Name: call.Function.Name,
				Args: args,
			}, trace)
		},
	}, nil
}

// Map converts every tool in tools.
func Map[Resp any](tools map[string]toolcall.Tool[Resp]) (map[string]Metadata[Resp], error) {
	out := make(map[string]Metadata[Resp], len(tools))
	for name, t := range tools {
		meta, err := FromTool(t)
		if err != nil {
			return nil, err
		}
		out[name] = meta
	}
	return out, nil
}

// Definitions returns the tool definitions sorted by name, so requests are
// stable across runs.
func Definitions[Resp any](tools map[string]Metadata[Resp]) []openai.ChatCompletionToolParam {
	names := lo.Keys(tools)
	slices.Sort(names)
	return lo.Map(names, func(name string, _ int) openai.ChatCompletionToolParam {
		return tools[name].Definition
	})
}

// FunctionDefinitions returns the tools in the legacy "functions" form,
// sorted by name. Azure API versions before 2023-12-01-preview accept only
// this form.
func FunctionDefinitions[Resp any](tools map[string]Metadata[Resp]) []openai.ChatCompletionNewParamsFunction {
	return lo.Map(Definitions(tools), func(def openai.ChatCompletionToolParam, _ int) openai.ChatCompletionNewParamsFunction {
		return openai.ChatCompletionNewParamsFunction{
			Name:        def.Function.Name,
			Description: def.Function.Description,
			Parameters:  def.Function.Parameters,
		}
	})
}

// FromFunctionCall presents a legacy function call as a tool call so the
// same handlers serve both forms. Function calls carry no ID; id is used.
func FromFunctionCall(id string, fc openai.ChatCompletionMessageFunctionCall) openai.ChatCompletionMessageToolCall {
	return openai.ChatCompletionMessageToolCall{
		ID: id,
		Function: openai.ChatCompletionMessageToolCallFunction{
			Name:      fc.Name,
			Arguments: fc.Arguments,
		},
	}
}

// NewParams decodes the JSON arguments of a tool call. Empty arguments
// decode to an empty map.
func NewParams(call openai.ChatCompletionMessageToolCall) (map[string]any, map[string]any) {
	raw := strings.TrimSpace(call.Function.Arguments)
	if raw == "" {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var args map[string]any
	if err := dec.Decode(&args); err != nil {
		return nil, params.Error("Failed to parse tool arguments: %v", err)
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}
