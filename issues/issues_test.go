/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package issues

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseRepository(t *testing.T) {
	tests := []struct {
		in        string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{in: "Azure/terraform-azurerm-avm", wantOwner: "Azure", wantName: "terraform-azurerm-avm"},
		{in: "noslash", wantErr: true},
		{in: "/name", wantErr: true},
		{in: "owner/", wantErr: true},
		{in: "a/b/c", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			owner, name, err := ParseRepository(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRepository) {
					t.Errorf("ParseRepository(%q): got = %v, wanted = %v", tt.in, err, ErrInvalidRepository)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRepository(%q) error = %v", tt.in, err)
			}
			if owner != tt.wantOwner || name != tt.wantName {
				t.Errorf("ParseRepository(%q): got = %s, %s, wanted = %s, %s", tt.in, owner, name, tt.wantOwner, tt.wantName)
			}
		})
	}
}

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), "ghs_token", srv.URL)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func TestGetIssueBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/o/r/issues/7", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer ghs_token" {
			t.Errorf("Authorization: got = %q, wanted = Bearer ghs_token", got)
		}
		fmt.Fprint(w, `{"number":7,"body":"Feature X would be great"}`)
	})
	mux.HandleFunc("GET /repos/o/r/issues/8", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"number":8,"body":null}`)
	})
	c := newTestClient(t, mux)

	got, err := c.GetIssueBody(context.Background(), Ref{Owner: "o", Repo: "r", Number: 7})
	if err != nil {
		t.Fatalf("GetIssueBody() error = %v", err)
	}
	if got != "Feature X would be great" {
		t.Errorf("GetIssueBody: got = %q, wanted = %q", got, "Feature X would be great")
	}

	got, err = c.GetIssueBody(context.Background(), Ref{Owner: "o", Repo: "r", Number: 8})
	if err != nil {
		t.Fatalf("GetIssueBody() error = %v", err)
	}
	if got != "" {
		t.Errorf("GetIssueBody(no body): got = %q, wanted = empty", got)
	}
}

func TestCreateComment(t *testing.T) {
	const comment = "Hello... GitHub AI Issue Assistant"
	var posted []string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/o/r/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Body string `json:"body"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Decode() error = %v", err)
		}
		posted = append(posted, req.Body)
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":1,"html_url":"https://github.com/o/r/issues/7#issuecomment-1"}`)
	})
	c := newTestClient(t, mux)

	url, err := c.CreateComment(context.Background(), Ref{Owner: "o", Repo: "r", Number: 7}, comment)
	if err != nil {
		t.Fatalf("CreateComment() error = %v", err)
	}
	if url != "https://github.com/o/r/issues/7#issuecomment-1" {
		t.Errorf("CreateComment URL: got = %q", url)
	}
	if len(posted) != 1 || posted[0] != comment {
		t.Errorf("posted: got = %q, wanted = [%q]", posted, comment)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "not found", status: http.StatusNotFound, want: ErrNotFound},
		{name: "bad credentials", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				fmt.Fprint(w, `{"message":"nope"}`)
			}))
			ref := Ref{Owner: "o", Repo: "r", Number: 1}

			if _, err := c.GetIssueBody(context.Background(), ref); !errors.Is(err, tt.want) {
				t.Errorf("GetIssueBody: got = %v, wanted = %v", err, tt.want)
			}
			if _, err := c.CreateComment(context.Background(), ref, "x"); !errors.Is(err, tt.want) {
				t.Errorf("CreateComment: got = %v, wanted = %v", err, tt.want)
			}
		})
	}

	t.Run("server error", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"message":"boom"}`)
		}))
		_, err := c.GetIssueBody(context.Background(), Ref{Owner: "o", Repo: "r", Number: 1})
		if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnauthorized) {
			t.Errorf("GetIssueBody: got = %v, wanted an unclassified error", err)
		}
	})
}

func TestRef(t *testing.T) {
	ref := Ref{Owner: "o", Repo: "r", Number: 3}
	if got := ref.String(); got != "o/r#3" {
		t.Errorf("String: got = %q, wanted = o/r#3", got)
	}
	if got := ref.Repository(); got != "o/r" {
		t.Errorf("Repository: got = %q, wanted = o/r", got)
	}
}
