/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package openaiexecutor runs a tool-using chat agent against Azure OpenAI.
//
// The executor renders a promptbuilder template for each request, sends it as
// the user message, and keeps serving tool calls until the model replies with
// text. That text is returned unmodified.
//
//	client := openaiexecutor.NewAzureClient(endpoint, "2023-07-01-preview", apiKey)
//
//	exec, err := openaiexecutor.New[*Request](client, prompt,
//	    openaiexecutor.WithDeployment[*Request]("gpt-35-turbo-16k"),
//	    openaiexecutor.WithTemperature[*Request](0),
//	    openaiexecutor.WithAPIVersion[*Request]("2023-07-01-preview"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	tools, err := openaitool.Map(provider.Tools(cb))
//	if err != nil {
//	    return err
//	}
//	comment, err := exec.Execute(ctx, request, tools)
//
// WithAPIVersion should match the client. API versions before
// ToolsAPIVersion get the legacy "functions" request form and their
// function_call replies are answered with function messages; later versions
// use "tools" and "tool_calls". The same tool handlers serve both.
//
// Each execution is recorded as an agenttrace.Trace[string] and counted in the
// GenAI metrics. Failures are not retried. A tool loop that runs past
// WithMaxTurns ends with ErrMaxTurns.
package openaiexecutor
