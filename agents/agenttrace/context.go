/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// ExecutionContext describes which issue an agent run is working on.
type ExecutionContext struct {
	Repository  string `json:"repository,omitempty"`   // "owner/name"
	IssueNumber int    `json:"issue_number,omitempty"` // zero for local runs
	Mode        string `json:"mode,omitempty"`         // "action" or "local"
}

// SpanAttributes returns the attributes recorded on trace spans. Issue
// numbers are fine here since each span is a single run.
func (e ExecutionContext) SpanAttributes() []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if e.Repository != "" {
		attrs = append(attrs, attribute.String("repository", e.Repository))
	}
	if e.IssueNumber != 0 {
		attrs = append(attrs, attribute.Int("issue_number", e.IssueNumber))
	}
	if e.Mode != "" {
		attrs = append(attrs, attribute.String("mode", e.Mode))
	}
	return attrs
}

// EnrichAttributes appends the bounded execution attributes to baseAttrs for
// use on metrics. The issue number is left out to keep cardinality bounded.
func (e ExecutionContext) EnrichAttributes(baseAttrs []attribute.KeyValue) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, len(baseAttrs), len(baseAttrs)+2)
	copy(attrs, baseAttrs)
	if e.Repository != "" {
		attrs = append(attrs, attribute.String("repository", e.Repository))
	}
	if e.Mode != "" {
		attrs = append(attrs, attribute.String("mode", e.Mode))
	}
	return attrs
}

type executionContextKey struct{}

// WithExecutionContext stores execCtx in ctx.
func WithExecutionContext(ctx context.Context, execCtx ExecutionContext) context.Context {
	return context.WithValue(ctx, executionContextKey{}, execCtx)
}

// GetExecutionContext returns the execution context stored in ctx, or the zero value.
func GetExecutionContext(ctx context.Context) ExecutionContext {
	execCtx, _ := ctx.Value(executionContextKey{}).(ExecutionContext)
	return execCtx
}
