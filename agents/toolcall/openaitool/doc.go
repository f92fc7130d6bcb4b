/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package openaitool adapts provider-independent toolcall.Tool values to the
OpenAI chat completions API, as served by Azure OpenAI.

	tools, err := openaitool.Map(provider.Tools(cb))
	if err != nil {
		return err
	}
	params := openai.ChatCompletionNewParams{
		Tools: openaitool.Definitions(tools),
		// ...
	}

When the model answers with tool calls, decode each one and run the handler:

	for _, call := range msg.ToolCalls {
		meta, ok := tools[call.Function.Name]
		...
		result := meta.Handler(ctx, call, trace)
	}

Arguments arrive as a JSON string. Arguments that do not decode to an object
produce an error payload instead of reaching the handler.
*/
package openaitool
