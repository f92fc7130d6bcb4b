/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package responder

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sethvargo/go-envconfig"

	"chainguard.dev/issueassistant/config"
	"chainguard.dev/issueassistant/issues"
)

type postedComment struct {
	Ref  issues.Ref
	Body string
}

type fakeIssues struct {
	bodies   map[issues.Ref]string
	getErr   error
	postErr  error
	gets     []issues.Ref
	comments []postedComment
}

func (f *fakeIssues) GetIssueBody(_ context.Context, ref issues.Ref) (string, error) {
	f.gets = append(f.gets, ref)
	if f.getErr != nil {
		return "", f.getErr
	}
	body, ok := f.bodies[ref]
	if !ok {
		return "", issues.ErrNotFound
	}
	return body, nil
}

func (f *fakeIssues) CreateComment(_ context.Context, ref issues.Ref, body string) (string, error) {
	if f.postErr != nil {
		return "", f.postErr
	}
	f.comments = append(f.comments, postedComment{Ref: ref, Body: body})
	return "https://github.com/" + ref.Repository() + "/issues/1#issuecomment-1", nil
}

func TestRunActionEndToEnd(t *testing.T) {
	ctx := context.Background()
	cfg, err := config.LoadAction(ctx, envconfig.MapLookuper(map[string]string{
		"INPUT_ISSUE_NUMBER": "42",
		"GITHUB_REPOSITORY":  "acme/terraform-azurerm-aks",
		"INPUT_REPO-TOKEN":   "ghs_token",
	}))
	if err != nil {
		t.Fatalf("LoadAction() error = %v", err)
	}

	ref := issues.Ref{Owner: "acme", Repo: "terraform-azurerm-aks", Number: 42}
	svc := &fakeIssues{bodies: map[issues.Ref]string{
		ref: "Feature X would be great, is it available?",
	}}
	const reply = "Hello... " + Signature
	gen := &stubGenerator{reply: reply}

	url, err := RunAction(ctx, cfg, ActionDeps{Issues: svc, Responder: New(gen)})
	if err != nil {
		t.Fatalf("RunAction() error = %v", err)
	}
	if url == "" {
		t.Error("RunAction() returned an empty URL")
	}

	want := []postedComment{{Ref: ref, Body: reply}}
	if diff := cmp.Diff(want, svc.comments); diff != "" {
		t.Errorf("comments (-want +got):\n%s", diff)
	}
	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "Feature X would be great") {
		t.Errorf("prompts = %q, wanted one prompt containing the issue body", gen.prompts)
	}
	if len(gen.prompts) == 1 && !strings.Contains(gen.prompts[0], "repository: acme/terraform-azurerm-aks\nissue: 42\n") {
		t.Errorf("prompt does not name the issue:\n%s", gen.prompts[0])
	}
}

func TestRunActionPostsNothingOnFailure(t *testing.T) {
	ref := issues.Ref{Owner: "acme", Repo: "mod", Number: 7}
	cfg := config.Action{IssueNumber: 7, Repository: "acme/mod", Token: "t", APIURL: "https://api.github.com"}
	genErr := errors.New("model unavailable")

	tests := []struct {
		name    string
		svc     *fakeIssues
		gen     *stubGenerator
		wantErr error
	}{{
		name:    "issue not found",
		svc:     &fakeIssues{},
		gen:     &stubGenerator{reply: "unused"},
		wantErr: issues.ErrNotFound,
	}, {
		name:    "unauthorized",
		svc:     &fakeIssues{getErr: issues.ErrUnauthorized},
		gen:     &stubGenerator{reply: "unused"},
		wantErr: issues.ErrUnauthorized,
	}, {
		name:    "generator failure",
		svc:     &fakeIssues{bodies: map[issues.Ref]string{ref: "It breaks"}},
		gen:     &stubGenerator{err: genErr},
		wantErr: genErr,
	}, {
		name:    "comment too long",
		svc:     &fakeIssues{bodies: map[issues.Ref]string{ref: "It breaks"}},
		gen:     &stubGenerator{reply: strings.Repeat("x", MaxCommentLength+1)},
		wantErr: ErrCommentTooLong,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RunAction(context.Background(), cfg, ActionDeps{Issues: tt.svc, Responder: New(tt.gen)})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RunAction() error = %v, wanted %v", err, tt.wantErr)
			}
			if len(tt.svc.comments) != 0 {
				t.Errorf("comments = %v, wanted none", tt.svc.comments)
			}
		})
	}
}

func TestRunActionSkipsEmptyIssue(t *testing.T) {
	ref := issues.Ref{Owner: "acme", Repo: "mod", Number: 7}
	cfg := config.Action{IssueNumber: 7, Repository: "acme/mod", Token: "t", APIURL: "https://api.github.com"}

	for _, body := range []string{"", "  \n\t"} {
		svc := &fakeIssues{bodies: map[issues.Ref]string{ref: body}}
		gen := &stubGenerator{reply: "unused"}

		url, err := RunAction(context.Background(), cfg, ActionDeps{Issues: svc, Responder: New(gen)})
		if err != nil {
			t.Errorf("RunAction(%q) error = %v, wanted nil", body, err)
		}
		if url != "" {
			t.Errorf("RunAction(%q): got = %q, wanted no URL", body, url)
		}
		if len(svc.comments) != 0 || len(gen.prompts) != 0 {
			t.Errorf("RunAction(%q): comments = %v, prompts = %d, wanted none", body, svc.comments, len(gen.prompts))
		}
	}
}

func TestRunActionPostFailure(t *testing.T) {
	ref := issues.Ref{Owner: "acme", Repo: "mod", Number: 7}
	cfg := config.Action{IssueNumber: 7, Repository: "acme/mod", Token: "t", APIURL: "https://api.github.com"}
	svc := &fakeIssues{
		bodies:  map[issues.Ref]string{ref: "It breaks"},
		postErr: issues.ErrUnauthorized,
	}

	_, err := RunAction(context.Background(), cfg, ActionDeps{Issues: svc, Responder: New(&stubGenerator{reply: "ok"})})
	if !errors.Is(err, issues.ErrUnauthorized) {
		t.Errorf("RunAction() error = %v, wanted %v", err, issues.ErrUnauthorized)
	}
}
