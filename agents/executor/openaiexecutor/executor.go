/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package openaiexecutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"

	"chainguard.dev/issueassistant/agents/agenttrace"
	"chainguard.dev/issueassistant/agents/metrics"
	"chainguard.dev/issueassistant/agents/promptbuilder"
	"chainguard.dev/issueassistant/agents/toolcall/openaitool"
)

var (
	// ErrMaxTurns is returned when the model keeps calling tools past the turn limit.
	ErrMaxTurns = errors.New("agent did not produce an answer within the turn limit")

	// ErrEmptyResponse is returned when the model answers with no text.
	ErrEmptyResponse = errors.New("model returned an empty response")
)

// DefaultDeployment is the deployment used when WithDeployment is not given.
const DefaultDeployment = "gpt-35-turbo-16k"

// ToolsAPIVersion is the first Azure API version that accepts "tools" and
// answers with "tool_calls". Version strings start with a date, so they
// compare in release order.
const ToolsAPIVersion = "2023-12-01-preview"

var apiVersionPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(-preview)?$`)

// DefaultMaxTurns bounds the tool loop when WithMaxTurns is not given.
const DefaultMaxTurns = 15

// Interface is the public interface for OpenAI agent execution
type Interface[Request promptbuilder.Bindable] interface {
	// Execute renders the request into the prompt and runs the tool loop
	// until the model answers with text. The text is returned unmodified.
	Execute(ctx context.Context, request Request, tools map[string]openaitool.Metadata[string]) (string, error)
}

type executor[Request promptbuilder.Bindable] struct {
	client             openai.Client
	deployment         string
	systemInstructions *promptbuilder.Prompt
	prompt             *promptbuilder.Prompt
	temperature        float64
	maxTurns           int
	maxTokens          int64 // zero leaves the limit to the service
	legacyFunctions    bool
	genaiMetrics       *metrics.GenAI
}

// New creates a new Executor with minimal required configuration
func New[Request promptbuilder.Bindable](
	client openai.Client,
	prompt *promptbuilder.Prompt,
	opts ...Option[Request],
) (Interface[Request], error) {
	if prompt == nil {
		return nil, errors.New("prompt cannot be nil")
	}

	e := &executor[Request]{
		client:       client,
		deployment:   DefaultDeployment,
		prompt:       prompt,
		maxTurns:     DefaultMaxTurns,
		genaiMetrics: metrics.NewGenAI("chainguard.dev/issueassistant/agents"),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return e, nil
}

func (e *executor[Request]) Execute(
	ctx context.Context,
	request Request,
	tools map[string]openaitool.Metadata[string],
) (response string, err error) {
	log := clog.FromContext(ctx)

	prompt, err := promptbuilder.Render(e.prompt, request)
	if err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}

	trace := agenttrace.StartTrace[string](ctx, prompt)
	defer func() {
		trace.Complete(response, err)
		e.genaiMetrics.RecordRun(ctx, e.deployment, outcome(err))
	}()

	log.With("prompt_length", len(prompt)).
		With("tools", len(tools)).
		Info("Starting OpenAI agent execution")

	var messages []openai.ChatCompletionMessageParamUnion
	if e.systemInstructions != nil {
		system, err := e.systemInstructions.Build()
		if err != nil {
			return "", fmt.Errorf("building system prompt: %w", err)
		}
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(e.deployment),
		Messages:    messages,
		Temperature: openai.Float(e.temperature),
	}
	switch {
	case len(tools) == 0:
	case e.legacyFunctions:
		params.Functions = openaitool.FunctionDefinitions(tools)
	default:
		params.Tools = openaitool.Definitions(tools)
	}
	if e.maxTokens > 0 {
		params.MaxTokens = openai.Int(e.maxTokens)
	}

	for turn := 1; turn <= e.maxTurns; turn++ {
		completion, err := e.client.Chat.Completions.New(ctx, params)
		if err != nil {
			return "", fmt.Errorf("chat completion (turn %d): %w", turn, err)
		}

		if u := completion.Usage; u.PromptTokens > 0 || u.CompletionTokens > 0 {
			e.genaiMetrics.RecordTokens(ctx, e.deployment, u.PromptTokens, u.CompletionTokens)
			trace.RecordTokenUsage(e.deployment, u.PromptTokens, u.CompletionTokens)
		}

		if len(completion.Choices) == 0 {
			return "", ErrEmptyResponse
		}
		msg := completion.Choices[0].Message

		if e.legacyFunctions && msg.FunctionCall.Name != "" {
			// One function call per turn, answered by a function message.
			call := openaitool.FromFunctionCall(fmt.Sprintf("function_call_%d", turn), msg.FunctionCall)
			e.genaiMetrics.RecordToolCall(ctx, e.deployment, call.Function.Name)

			result, err := e.executeToolCall(ctx, call, tools, trace)
			if err != nil {
				return "", err
			}
			params.Messages = append(params.Messages, msg.ToParam(), openai.ChatCompletionMessageParamUnion{
				OfFunction: &openai.ChatCompletionFunctionMessageParam{
					Name:    call.Function.Name,
					Content: openai.String(result),
				},
			})
			continue
		}

		if len(msg.ToolCalls) == 0 {
			if strings.TrimSpace(msg.Content) == "" {
				return "", ErrEmptyResponse
			}
			trace.SetMetadata("turns", turn)
			log.With("turns", turn).Info("Successfully completed OpenAI agent execution")
			return msg.Content, nil
		}

		params.Messages = append(params.Messages, msg.ToParam())
		for _, call := range msg.ToolCalls {
			e.genaiMetrics.RecordToolCall(ctx, e.deployment, call.Function.Name)

			result, err := e.executeToolCall(ctx, call, tools, trace)
			if err != nil {
				return "", err
			}
			params.Messages = append(params.Messages, openai.ToolMessage(result, call.ID))
		}
	}

	trace.SetMetadata("turns", e.maxTurns)
	return "", fmt.Errorf("%w (%d)", ErrMaxTurns, e.maxTurns)
}

func (e *executor[Request]) executeToolCall(
	ctx context.Context,
	call openai.ChatCompletionMessageToolCall,
	tools map[string]openaitool.Metadata[string],
	trace *agenttrace.Trace[string],
) (string, error) {
	log := clog.FromContext(ctx).With("tool", call.Function.Name).With("id", call.ID)
	log.Info("Executing tool call")

	var result map[string]any
	if meta, ok := tools[call.Function.Name]; ok {
		result = meta.Handler(ctx, call, trace)
	} else {
		log.Error("Unknown tool requested")
		err := fmt.Errorf("unknown tool: %q", call.Function.Name)
		trace.BadToolCall(call.ID, call.Function.Name,
			map[string]any{"arguments": call.Function.Arguments}, err)
		result = map[string]any{"error": err.Error()}
	}

	b, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tool result: %w", err)
	}
	return string(b), nil
}

func outcome(err error) string {
	var apiErr *openai.Error
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrMaxTurns):
		return "max_turns"
	case errors.Is(err, ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.As(err, &apiErr):
		return "api_error"
	default:
		return "error"
	}
}
