/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

// Bindable is implemented by request types that know how to fill a prompt
// template with their own data.
type Bindable interface {
	// Bind returns a new prompt with the receiver's values bound.
	Bind(prompt *Prompt) (*Prompt, error)
}

// Noop binds nothing and returns the prompt unchanged.
type Noop struct{}

// Bind implements Bindable.
func (Noop) Bind(prompt *Prompt) (*Prompt, error) {
	return prompt, nil
}

// Render binds request into prompt and builds the result.
func Render(prompt *Prompt, request Bindable) (string, error) {
	bound, err := request.Bind(prompt)
	if err != nil {
		return "", err
	}
	return bound.Build()
}
