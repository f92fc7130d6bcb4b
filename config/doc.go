/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package config loads the assistant's settings from the environment.
//
// Agent holds what both modes need (Azure OpenAI and Bing credentials).
// Action adds the issue coordinates GitHub Actions provides. Both are read
// once at startup and passed down explicitly:
//
//	agent, err := config.LoadAgent(ctx, envconfig.OsLookuper())
//	action, err := config.LoadAction(ctx, envconfig.OsLookuper())
//
// Missing settings wrap envconfig.ErrMissingRequired. Malformed ones wrap ErrInvalid.
package config
