/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package bing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSearch(t *testing.T) {
	var gotKey, gotQuery, gotCount, gotMarket string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Ocp-Apim-Subscription-Key")
		gotQuery = r.URL.Query().Get("q")
		gotCount = r.URL.Query().Get("count")
		gotMarket = r.URL.Query().Get("mkt")
		fmt.Fprint(w, `{"_type":"SearchResponse","webPages":{"value":[
			{"name":"Azure updates","url":"https://azure.microsoft.com/updates","snippet":"Now generally available"},
			{"name":"Docs","url":"https://learn.microsoft.com","snippet":"Preview feature"}
		]}}`)
	}))
	defer srv.Close()

	c := NewClient("sub-key", WithEndpoint(srv.URL), WithMarket("en-US"))
	got, err := c.Search(context.Background(), "  azure private endpoint preview ", 200)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	want := []Result{
		{Name: "Azure updates", URL: "https://azure.microsoft.com/updates", Snippet: "Now generally available"},
		{Name: "Docs", URL: "https://learn.microsoft.com", Snippet: "Preview feature"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Search (-want +got):\n%s", diff)
	}
	if gotKey != "sub-key" {
		t.Errorf("subscription key: got = %q, wanted = %q", gotKey, "sub-key")
	}
	if gotQuery != "azure private endpoint preview" {
		t.Errorf("q: got = %q, wanted trimmed query", gotQuery)
	}
	if gotCount != "50" {
		t.Errorf("count: got = %q, wanted = 50", gotCount)
	}
	if gotMarket != "en-US" {
		t.Errorf("mkt: got = %q, wanted = en-US", gotMarket)
	}
}

func TestSearchNoWebPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"_type":"SearchResponse"}`)
	}))
	defer srv.Close()

	got, err := NewClient("k", WithEndpoint(srv.URL)).Search(context.Background(), "q", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Search: got = %#v, wanted = empty non-nil slice", got)
	}

	// The tool payload must carry an array, never null.
	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != "[]" {
		t.Errorf("results JSON: got = %s, wanted = []", b)
	}
}

func TestSearchErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{{
		name:        "gateway error",
		status:      http.StatusUnauthorized,
		body:        `{"error":{"code":"401","message":"Access denied due to invalid subscription key."}}`,
		wantMessage: "Access denied due to invalid subscription key.",
	}, {
		name:        "service error",
		status:      http.StatusBadRequest,
		body:        `{"_type":"ErrorResponse","errors":[{"code":"InvalidRequest","message":"Parameter has invalid value."}]}`,
		wantMessage: "Parameter has invalid value.",
	}, {
		name:        "plain text",
		status:      http.StatusTooManyRequests,
		body:        "rate limited\n",
		wantMessage: "rate limited",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewClient("k", WithEndpoint(srv.URL)).Search(context.Background(), "q", 5)
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("Search: got = %v, wanted = *APIError", err)
			}
			if apiErr.StatusCode != tt.status || apiErr.Message != tt.wantMessage {
				t.Errorf("APIError: got = %d %q, wanted = %d %q", apiErr.StatusCode, apiErr.Message, tt.status, tt.wantMessage)
			}
			if calls != 1 {
				t.Errorf("requests: got = %d, wanted = 1", calls)
			}
		})
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	c := NewClient("k", WithEndpoint("http://127.0.0.1:0"))
	if _, err := c.Search(context.Background(), "   ", 10); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("Search: got = %v, wanted = %v", err, ErrEmptyQuery)
	}
}

func TestCallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("count"); got != "3" {
			t.Errorf("count: got = %q, wanted = 3", got)
		}
		fmt.Fprint(w, `{"webPages":{"value":[{"name":"n","url":"u","snippet":"s"}]}}`)
	}))
	defer srv.Close()

	cb := NewClient("k", WithEndpoint(srv.URL)).Callbacks()
	if !cb.HasSearch() {
		t.Fatal("HasSearch: got = false, wanted = true")
	}
	got, err := cb.Search(context.Background(), "q", 3)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 1 || got[0].URL != "u" {
		t.Errorf("Search: got = %+v", got)
	}
}
