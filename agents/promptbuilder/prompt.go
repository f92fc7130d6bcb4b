/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"fmt"
	"maps"
	"slices"
)

// stringLiteral only accepts untyped string constants, so values bound with
// BindStringLiteral always come from the program text and never from input.
type stringLiteral string

// Prompt is an immutable template with named {{placeholders}}.
type Prompt struct {
	template string
	bindings map[string]binding
}

// NewPrompt parses the template and records every placeholder as unbound.
func NewPrompt(template stringLiteral) (*Prompt, error) {
	bindings := make(map[string]binding)
	if _, err := walkTemplate(string(template), func(name string) (string, error) {
		bindings[name] = unboundBinding(name)
		return "", nil
	}); err != nil {
		return nil, err
	}
	return &Prompt{template: string(template), bindings: bindings}, nil
}

// GetBindings returns the set of placeholder names found in the template.
func (p *Prompt) GetBindings() map[string]struct{} {
	names := make(map[string]struct{}, len(p.bindings))
	for name := range p.bindings {
		names[name] = struct{}{}
	}
	return names
}

// Unbound returns the sorted names of placeholders that still need a value.
func (p *Prompt) Unbound() []string {
	var names []string
	for name, b := range p.bindings {
		if _, ok := b.(unboundBinding); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// with returns a copy of p with name bound to b.
func (p *Prompt) with(name string, b binding) (*Prompt, error) {
	current, ok := p.bindings[name]
	if !ok {
		return nil, fmt.Errorf("binding %q not found in template", name)
	}
	if _, unbound := current.(unboundBinding); !unbound {
		return nil, fmt.Errorf("binding %q already bound", name)
	}
	next := &Prompt{template: p.template, bindings: maps.Clone(p.bindings)}
	next.bindings[name] = b
	return next, nil
}

// BindStringLiteral binds a developer-provided constant to a placeholder.
func (p *Prompt) BindStringLiteral(name string, value stringLiteral) (*Prompt, error) {
	return p.with(name, literalBinding(value))
}

// BindText binds text verbatim, without escaping. Use it only for text the
// program produced itself, such as the output of another Prompt's Build.
func (p *Prompt) BindText(name string, text string) (*Prompt, error) {
	return p.with(name, literalBinding(text))
}

// BindXML binds data marshaled with encoding/xml. Text nodes are escaped,
// which makes XML the right choice for free-form user input such as issue bodies.
func (p *Prompt) BindXML(name string, data any) (*Prompt, error) {
	return p.with(name, xmlBinding{data: data})
}

// BindYAML binds data marshaled as YAML.
func (p *Prompt) BindYAML(name string, data any) (*Prompt, error) {
	return p.with(name, yamlBinding{data: data})
}

// Build renders the template. Every placeholder must be bound, and each is
// substituted in a single pass so bound values are never re-expanded.
func (p *Prompt) Build() (string, error) {
	values := make(map[string]string, len(p.bindings))
	for name, b := range p.bindings {
		v, err := b.value()
		if err != nil {
			return "", err
		}
		values[name] = v
	}
	return walkTemplate(p.template, func(name string) (string, error) {
		v, ok := values[name]
		if !ok {
			return "", fmt.Errorf("internal error: binding %q not found in values map", name)
		}
		return v, nil
	})
}
