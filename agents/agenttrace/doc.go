/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package agenttrace records what an agent did while answering an issue: the
prompt it was given, each tool call it made, and the final comment or error.

Traces are also OpenTelemetry spans. Identify the issue being worked on with
an ExecutionContext so spans and metrics carry the repository:

	ctx = agenttrace.WithExecutionContext(ctx, agenttrace.ExecutionContext{
		Repository:  "Azure/terraform-azurerm-avm-res-network-vnet",
		IssueNumber: 42,
		Mode:        "action",
	})

The tracer found in the context decides what happens to completed traces.
Without one, traces are logged through clog:

	ctx = agenttrace.WithTracer[string](ctx, agenttrace.ByCode[string](func(tr *agenttrace.Trace[string]) {
		fmt.Println(tr.String())
	}))

	trace := agenttrace.StartTrace[string](ctx, prompt)
	tc := trace.StartToolCall("call_1", "bing_search", map[string]any{"query": "azure feature preview"})
	tc.Complete(results, nil)
	trace.Complete(comment, nil)
*/
package agenttrace
