/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package bing is a small client for the Bing Web Search v7 API, used as
// the assistant's web search tool.
package bing
