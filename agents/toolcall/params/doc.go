/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package params decodes tool call arguments and formats the error payloads
// returned to the model when arguments are missing or malformed.
package params
