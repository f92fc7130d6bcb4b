/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"encoding/xml"
	"fmt"

	"gopkg.in/yaml.v3"
)

// binding produces the text substituted for a placeholder.
type binding interface {
	value() (string, error)
}

// unboundBinding carries the placeholder name so Build can report it.
type unboundBinding string

func (u unboundBinding) value() (string, error) {
	return "", fmt.Errorf("unbound placeholder: %s", string(u))
}

type literalBinding string

func (l literalBinding) value() (string, error) {
	return string(l), nil
}

type xmlBinding struct{ data any }

func (x xmlBinding) value() (string, error) {
	b, err := xml.MarshalIndent(x.data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal XML: %w", err)
	}
	return string(b), nil
}

type yamlBinding struct{ data any }

func (y yamlBinding) value() (string, error) {
	b, err := yaml.Marshal(y.data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(b), nil
}
