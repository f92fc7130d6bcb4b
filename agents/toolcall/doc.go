/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package toolcall defines tools once, independent of any model provider.
//
// A Tool is a Definition plus a Handler. Providers build tool sets from
// callbacks and compose by wrapping one another:
//
//	provider := toolcall.NewSearchToolsProvider(toolcall.NewEmptyToolsProvider[string]())
//	tools := provider.Tools(toolcall.NewSearchTools(toolcall.EmptyTools{}, callbacks.SearchCallbacks{
//		Search: bingClient.Search,
//	}))
//
// The executor converts the result into its SDK's tool type.
package toolcall
