/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package testevals adapts testing.TB to evals.Observer, so trace checks
// report through the test that ran the agent:
//
//	tracer := agenttrace.ByCode(evals.Callbacks(
//		func(name string) evals.Observer { return testevals.NewPrefix(t, name) },
//		checks)...)
package testevals
