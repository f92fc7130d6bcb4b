/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package issues

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
	"golang.org/x/oauth2"
)

var (
	// ErrNotFound is returned when the repository or issue does not exist,
	// or is not visible to the token.
	ErrNotFound = errors.New("issue not found")

	// ErrUnauthorized is returned when the token is rejected.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidRepository is returned for repository names not of the form owner/name.
	ErrInvalidRepository = errors.New("repository must be of the form owner/name")
)

// Ref identifies an issue.
type Ref struct {
	Owner  string
	Repo   string
	Number int
}

func (r Ref) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// Repository returns "owner/repo".
func (r Ref) Repository() string {
	return r.Owner + "/" + r.Repo
}

// Service reads issues and posts comments on them.
type Service interface {
	// GetIssueBody returns the body of the issue. An issue without a body
	// yields the empty string.
	GetIssueBody(ctx context.Context, ref Ref) (string, error)

	// CreateComment posts body as a new comment and returns its URL.
	CreateComment(ctx context.Context, ref Ref, body string) (string, error)
}

// ParseRepository splits "owner/name".
func ParseRepository(repository string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRepository, repository)
	}
	return owner, name, nil
}

// Client implements Service over the GitHub REST API.
type Client struct {
	gh *github.Client
}

var _ Service = (*Client)(nil)

// NewClient returns a client authenticating with token. apiURL selects a
// GitHub Enterprise server; empty means api.github.com.
func NewClient(ctx context.Context, token, apiURL string) (*Client, error) {
	hc := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	gh := github.NewClient(hc)

	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		u, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("parsing GitHub API URL: %w", err)
		}
		gh.BaseURL = u
	}
	return &Client{gh: gh}, nil
}

func (c *Client) GetIssueBody(ctx context.Context, ref Ref) (string, error) {
	issue, _, err := c.gh.Issues.Get(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		return "", classify(fmt.Sprintf("getting issue %s", ref), err)
	}
	if issue.IsPullRequest() {
		clog.FromContext(ctx).With("issue", ref.String()).Warn("Issue is a pull request, answering it anyway")
	}
	return issue.GetBody(), nil
}

func (c *Client) CreateComment(ctx context.Context, ref Ref, body string) (string, error) {
	comment, _, err := c.gh.Issues.CreateComment(ctx, ref.Owner, ref.Repo, ref.Number, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return "", classify(fmt.Sprintf("commenting on issue %s", ref), err)
	}
	return comment.GetHTMLURL(), nil
}

// classify maps GitHub error responses onto the package sentinels.
func classify(action string, err error) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w: %w", action, ErrNotFound, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%s: %w: %w", action, ErrUnauthorized, err)
		}
	}
	return fmt.Errorf("%s: %w", action, err)
}
