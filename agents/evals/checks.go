/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"chainguard.dev/issueassistant/agents/agenttrace"
)

// ToolCallCount checks that the trace made between min and max tool calls.
func ToolCallCount[T any](min, max int) ObservableTraceCallback[T] {
	return func(o Observer, trace *agenttrace.Trace[T]) {
		if got := len(trace.ToolCalls); got < min || got > max {
			o.Fail(fmt.Sprintf("tool call count: got = %d, wanted = %d..%d", got, min, max))
		}
	}
}

// NoToolCalls checks that the agent answered without tools.
func NoToolCalls[T any]() ObservableTraceCallback[T] {
	return ToolCallCount[T](0, 0)
}

// OnlyToolCalls checks that no tool outside names was called.
func OnlyToolCalls[T any](names ...string) ObservableTraceCallback[T] {
	return func(o Observer, trace *agenttrace.Trace[T]) {
		for _, tc := range trace.ToolCalls {
			if !slices.Contains(names, tc.Name) {
				o.Fail(fmt.Sprintf("unexpected tool call %q, only allowed: %v", tc.Name, names))
				return
			}
		}
	}
}

// RequiredToolCalls checks that each of names was called at least once.
func RequiredToolCalls[T any](names ...string) ObservableTraceCallback[T] {
	return func(o Observer, trace *agenttrace.Trace[T]) {
		var missing []string
		for _, name := range names {
			if !slices.ContainsFunc(trace.ToolCalls, func(tc *agenttrace.ToolCall[T]) bool { return tc.Name == name }) {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			slices.Sort(missing)
			o.Fail(fmt.Sprintf("missing required tool calls: %v", missing))
		}
	}
}

// ToolCallNamed runs validate on every call of the named tool and fails
// when there is none.
func ToolCallNamed[T any](name string, validate func(tc *agenttrace.ToolCall[T]) error) ObservableTraceCallback[T] {
	return func(o Observer, trace *agenttrace.Trace[T]) {
		found := false
		for _, tc := range trace.ToolCalls {
			if tc.Name != name {
				continue
			}
			found = true
			if err := validate(tc); err != nil {
				o.Fail(fmt.Sprintf("tool call %s validation failed: %v", name, err))
				return
			}
		}
		if !found {
			o.Fail(fmt.Sprintf("tool call named %q: got = not found, wanted = found", name))
		}
	}
}

// NoErrors checks that neither the trace nor any tool call failed.
func NoErrors[T any]() ObservableTraceCallback[T] {
	return func(o Observer, trace *agenttrace.Trace[T]) {
		if trace.Error != nil {
			o.Fail(fmt.Sprintf("trace error: got = %v, wanted = nil", trace.Error))
			return
		}
		for _, tc := range trace.ToolCalls {
			if tc.Error != nil {
				o.Fail(fmt.Sprintf("tool call %s error: got = %v, wanted = nil", tc.Name, tc.Error))
				return
			}
		}
	}
}

// ResultContains checks that a text result contains substr.
func ResultContains(substr string) ObservableTraceCallback[string] {
	return func(o Observer, trace *agenttrace.Trace[string]) {
		if !strings.Contains(trace.Result, substr) {
			o.Fail(fmt.Sprintf("result does not contain %q", substr))
		}
	}
}

// MaxResultLength checks that a text result has at most n characters.
func MaxResultLength(n int) ObservableTraceCallback[string] {
	return func(o Observer, trace *agenttrace.Trace[string]) {
		if got := utf8.RuneCountInString(trace.Result); got > n {
			o.Fail(fmt.Sprintf("result length: got = %d, wanted <= %d", got, n))
		}
	}
}
