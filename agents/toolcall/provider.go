/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package toolcall

// ToolProvider defines the tools available to an agent given its callbacks.
// Providers compose by wrapping: Empty -> Search.
// Conversion to SDK-specific types happens in the executor.
type ToolProvider[Resp, CB any] interface {
	Tools(cb CB) map[string]Tool[Resp]
}
