/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// actionInputs maps envconfig keys onto the names GitHub Actions exports.
// Actions keeps hyphens from input ids, which envconfig does not accept.
var actionInputs = map[string]string{
	"INPUT_REPO_TOKEN": "INPUT_REPO-TOKEN",
}

type actionsLookuper struct {
	base envconfig.Lookuper
}

// ActionsLookuper adapts l to the GitHub Actions environment. Hyphenated
// input names are looked up under their Actions spelling first, and empty
// values count as unset, since Actions exports omitted inputs as "".
func ActionsLookuper(l envconfig.Lookuper) envconfig.Lookuper {
	return &actionsLookuper{base: l}
}

func (a *actionsLookuper) Lookup(key string) (string, bool) {
	if alias, ok := actionInputs[key]; ok {
		if v, ok := a.base.Lookup(alias); ok && strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	v, ok := a.base.Lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// Key reports the Actions spelling in missing-value errors.
func (a *actionsLookuper) Key(key string) string {
	if alias, ok := actionInputs[key]; ok {
		return alias
	}
	return key
}

// Unwrap lets envconfig expand defaults against the underlying lookuper.
func (a *actionsLookuper) Unwrap() envconfig.Lookuper {
	return a.base
}
