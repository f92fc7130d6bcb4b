/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package evals checks completed agent traces in code.

An ObservableTraceCallback inspects an agenttrace.Trace and reports
problems to an Observer. Inject binds a callback to an observer so it can be
handed to agenttrace.ByCode:

	collector := evals.NewResultCollector(nil)
	tracer := agenttrace.ByCode(evals.Callbacks(
		func(string) evals.Observer { return collector },
		map[string]evals.ObservableTraceCallback[string]{
			"searched": evals.RequiredToolCalls[string]("bing_search"),
			"signed":   evals.ResultContains(responder.Signature),
		})...)
	ctx = agenttrace.WithTracer(ctx, tracer)

The testevals subpackage adapts *testing.T to Observer, so failed checks fail
the test that produced the trace.
*/
package evals
