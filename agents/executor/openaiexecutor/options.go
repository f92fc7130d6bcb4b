/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package openaiexecutor

import (
	"errors"
	"fmt"

	"chainguard.dev/issueassistant/agents/metrics"
	"chainguard.dev/issueassistant/agents/promptbuilder"
)

// Option is a functional option for configuring the executor
type Option[Request promptbuilder.Bindable] func(*executor[Request]) error

// WithDeployment sets the Azure OpenAI deployment the requests are routed to.
func WithDeployment[Request promptbuilder.Bindable](deployment string) Option[Request] {
	return func(e *executor[Request]) error {
		if deployment == "" {
			return errors.New("deployment cannot be empty")
		}
		e.deployment = deployment
		return nil
	}
}

// WithTemperature sets the sampling temperature. OpenAI models accept 0.0 to 2.0.
func WithTemperature[Request promptbuilder.Bindable](temp float64) Option[Request] {
	return func(e *executor[Request]) error {
		if temp < 0.0 || temp > 2.0 {
			return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", temp)
		}
		e.temperature = temp
		return nil
	}
}

// WithMaxTurns bounds the number of model round trips in one execution.
func WithMaxTurns[Request promptbuilder.Bindable](turns int) Option[Request] {
	return func(e *executor[Request]) error {
		if turns <= 0 {
			return fmt.Errorf("max turns must be positive, got %d", turns)
		}
		e.maxTurns = turns
		return nil
	}
}

// WithMaxTokens caps the completion length of each model turn.
func WithMaxTokens[Request promptbuilder.Bindable](tokens int64) Option[Request] {
	return func(e *executor[Request]) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		e.maxTokens = tokens
		return nil
	}
}

// WithSystemInstructions sets custom system instructions
func WithSystemInstructions[Request promptbuilder.Bindable](prompt *promptbuilder.Prompt) Option[Request] {
	return func(e *executor[Request]) error {
		if prompt == nil {
			return errors.New("system instructions prompt cannot be nil")
		}
		e.systemInstructions = prompt
		return nil
	}
}

// WithAttributeEnricher sets the enricher applied to every recorded metric.
func WithAttributeEnricher[Request promptbuilder.Bindable](enricher metrics.AttributeEnricher) Option[Request] {
	return func(e *executor[Request]) error {
		e.genaiMetrics.SetAttributeEnricher(enricher)
		return nil
	}
}

// WithAPIVersion tells the executor which Azure API version the client
// targets. Versions before ToolsAPIVersion only understand the legacy
// "functions" request fields, so tools are offered that way.
func WithAPIVersion[Request promptbuilder.Bindable](version string) Option[Request] {
	return func(e *executor[Request]) error {
		if !apiVersionPattern.MatchString(version) {
			return fmt.Errorf("api version must look like 2024-02-01 or 2023-07-01-preview, got %q", version)
		}
		e.legacyFunctions = version < ToolsAPIVersion
		return nil
	}
}
