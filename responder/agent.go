/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package responder

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openai/openai-go/option"

	"chainguard.dev/issueassistant/agents/executor/openaiexecutor"
	"chainguard.dev/issueassistant/agents/metrics"
	"chainguard.dev/issueassistant/agents/promptbuilder"
	"chainguard.dev/issueassistant/agents/toolcall"
	"chainguard.dev/issueassistant/agents/toolcall/openaitool"
	"chainguard.dev/issueassistant/bing"
	"chainguard.dev/issueassistant/config"
)

// Agent is the Generator backed by an Azure OpenAI deployment that can
// search the web with Bing.
type Agent struct {
	exec  openaiexecutor.Interface[renderedPrompt]
	tools map[string]openaitool.Metadata[string]
}

var _ Generator = (*Agent)(nil)

// renderedPrompt is a prompt already built by BuildPrompt.
type renderedPrompt string

// Bind implements promptbuilder.Bindable.
func (r renderedPrompt) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	return p.BindText("prompt", string(r))
}

var (
	passthroughPrompt = promptbuilder.MustNewPrompt("{{prompt}}")
	systemPrompt      = promptbuilder.MustNewPrompt("You are a helpful AI assistant.")
)

// AgentOption customizes the clients of an Agent.
type AgentOption func(*agentOptions)

type agentOptions struct {
	httpClient *http.Client
}

// WithHTTPClient routes both the model and the search calls through hc.
func WithHTTPClient(hc *http.Client) AgentOption {
	return func(o *agentOptions) { o.httpClient = hc }
}

// NewAgent wires the model client, the search tool and the executor.
func NewAgent(cfg config.Agent, opts ...AgentOption) (*Agent, error) {
	var o agentOptions
	for _, opt := range opts {
		opt(&o)
	}

	var (
		reqOpts  []option.RequestOption
		bingOpts = []bing.Option{bing.WithEndpoint(cfg.BingSearchURL)}
	)
	if cfg.BingMarket != "" {
		bingOpts = append(bingOpts, bing.WithMarket(cfg.BingMarket))
	}
	if o.httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(o.httpClient))
		bingOpts = append(bingOpts, bing.WithHTTPClient(o.httpClient))
	}

	execOpts := []openaiexecutor.Option[renderedPrompt]{
		openaiexecutor.WithDeployment[renderedPrompt](cfg.Deployment),
		openaiexecutor.WithAPIVersion[renderedPrompt](cfg.APIVersion),
		openaiexecutor.WithTemperature[renderedPrompt](cfg.Temperature),
		openaiexecutor.WithMaxTurns[renderedPrompt](cfg.MaxTurns),
		openaiexecutor.WithSystemInstructions[renderedPrompt](systemPrompt),
		openaiexecutor.WithAttributeEnricher[renderedPrompt](metrics.ExecutionContextEnricher),
	}
	if cfg.MaxTokens > 0 {
		execOpts = append(execOpts, openaiexecutor.WithMaxTokens[renderedPrompt](cfg.MaxTokens))
	}

	client := openaiexecutor.NewAzureClient(cfg.OpenAIAPIBase, cfg.APIVersion, cfg.OpenAIAPIKey, reqOpts...)
	exec, err := openaiexecutor.New[renderedPrompt](client, passthroughPrompt, execOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating executor: %w", err)
	}

	search := bing.NewClient(cfg.BingSubscriptionKey, bingOpts...)
	provider := toolcall.NewSearchToolsProvider(toolcall.NewEmptyToolsProvider[string]())
	tools, err := openaitool.Map(provider.Tools(toolcall.NewSearchTools(toolcall.EmptyTools{}, search.Callbacks())))
	if err != nil {
		return nil, fmt.Errorf("converting tools: %w", err)
	}

	return &Agent{exec: exec, tools: tools}, nil
}

// Generate implements Generator.
func (a *Agent) Generate(ctx context.Context, prompt string) (string, error) {
	return a.exec.Execute(ctx, renderedPrompt(prompt), a.tools)
}
