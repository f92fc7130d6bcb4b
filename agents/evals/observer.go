/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"slices"

	"github.com/samber/lo"

	"chainguard.dev/issueassistant/agents/agenttrace"
)

// Observer receives the outcome of evaluating traces.
type Observer interface {
	// Fail records a failed check. Called at most once per check and trace.
	Fail(string)
	// Log records an informational message.
	Log(string)
	// Increment is called each time a trace is evaluated.
	Increment()
	// Total returns the number of evaluated traces.
	Total() int64
}

// ObservableTraceCallback checks one completed trace.
type ObservableTraceCallback[T any] func(Observer, *agenttrace.Trace[T])

// Inject binds obs to callback, producing a callback for agenttrace.ByCode.
func Inject[T any](obs Observer, callback ObservableTraceCallback[T]) agenttrace.TraceCallback[T] {
	return func(trace *agenttrace.Trace[T]) {
		obs.Increment()
		callback(obs, trace)
	}
}

// Callbacks injects each named check with the observer factory returns for
// its name. The result is ordered by name.
func Callbacks[T any](factory func(name string) Observer, checks map[string]ObservableTraceCallback[T]) []agenttrace.TraceCallback[T] {
	names := lo.Keys(checks)
	slices.Sort(names)
	return lo.Map(names, func(name string, _ int) agenttrace.TraceCallback[T] {
		return Inject(factory(name), checks[name])
	})
}
