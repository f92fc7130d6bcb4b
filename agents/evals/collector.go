/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"sync"
	"sync/atomic"
)

// ResultCollector is an Observer that keeps failure messages for later
// inspection. Calls are forwarded to inner when it is non-nil.
type ResultCollector struct {
	inner    Observer
	count    atomic.Int64
	mu       sync.Mutex
	failures []string
}

var _ Observer = (*ResultCollector)(nil)

// NewResultCollector creates a ResultCollector forwarding to inner.
func NewResultCollector(inner Observer) *ResultCollector {
	return &ResultCollector{inner: inner}
}

// Fail stores msg. The inner observer only logs it.
func (r *ResultCollector) Fail(msg string) {
	if r.inner != nil {
		r.inner.Log(msg)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, msg)
}

func (r *ResultCollector) Log(msg string) {
	if r.inner != nil {
		r.inner.Log(msg)
	}
}

func (r *ResultCollector) Increment() {
	r.count.Add(1)
	if r.inner != nil {
		r.inner.Increment()
	}
}

func (r *ResultCollector) Total() int64 {
	return r.count.Load()
}

// Failures returns a copy of the collected failure messages.
func (r *ResultCollector) Failures() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.failures...)
}
