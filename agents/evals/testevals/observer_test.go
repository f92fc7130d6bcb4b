/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package testevals

import (
	"context"
	"testing"

	"chainguard.dev/issueassistant/agents/agenttrace"
	"chainguard.dev/issueassistant/agents/evals"
)

// fakeTB records failures instead of failing the real test.
type fakeTB struct {
	testing.TB
	errors []string
	logs   []string
}

func (f *fakeTB) Helper()                           {}
func (f *fakeTB) Error(args ...any)                 { f.errors = append(f.errors, args[0].(string)) }
func (f *fakeTB) Errorf(format string, args ...any) { f.errors = append(f.errors, args[0].(string)+": "+args[1].(string)) }
func (f *fakeTB) Log(args ...any)                   { f.logs = append(f.logs, args[0].(string)) }
func (f *fakeTB) Logf(format string, args ...any)   { f.logs = append(f.logs, args[0].(string)+": "+args[1].(string)) }

func TestObserver(t *testing.T) {
	tb := &fakeTB{}
	obs := NewPrefix(tb, "signed")

	tracer := agenttrace.ByCode(evals.Inject(obs, evals.ResultContains("GitHub AI Issue Assistant")))
	trace := tracer.NewTrace(context.Background(), "prompt")
	trace.Complete("no signature here", nil)

	if len(tb.errors) != 1 || tb.errors[0] != `signed: result does not contain "GitHub AI Issue Assistant"` {
		t.Errorf("errors = %q, wanted one prefixed failure", tb.errors)
	}
	if got := obs.Total(); got != 1 {
		t.Errorf("Total() = %d, wanted = 1", got)
	}
}

func TestObserverWithoutPrefix(t *testing.T) {
	tb := &fakeTB{}
	obs := New(tb)
	obs.Log("hello")
	obs.Fail("bad")

	if len(tb.logs) != 1 || tb.logs[0] != "hello" {
		t.Errorf("logs = %q, wanted [hello]", tb.logs)
	}
	if len(tb.errors) != 1 || tb.errors[0] != "bad" {
		t.Errorf("errors = %q, wanted [bad]", tb.errors)
	}
}
