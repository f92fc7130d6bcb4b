/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package promptbuilder builds LLM prompts from developer-owned templates and
encoded request data, in the spirit of prepared SQL statements.

Templates are untyped string constants with {{name}} placeholders:

	var issuePrompt = promptbuilder.MustNewPrompt(`Comment on this issue:
	{{issue}}
	Sign as {{signature}}.`)

Developer text is bound with BindStringLiteral, which only accepts constants,
or BindText for text the program rendered itself.
Anything that comes from users (an issue body, for example) goes through an
encoder: BindXML or BindYAML. Encoders escape the data, and Build
substitutes every placeholder in a single pass, so a value containing
"{{signature}}" is emitted as-is and never expanded.

Prompts are immutable. Every Bind method returns a new Prompt, and binding an
unknown or already-bound placeholder is an error, as is calling Build while a
placeholder is still unbound.

Request types implement Bindable so callers can render a template per request:

	text, err := promptbuilder.Render(issuePrompt, &Request{Body: body})
*/
package promptbuilder
