/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package responder

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/issueassistant/agents/agenttrace"
	"chainguard.dev/issueassistant/config"
	"chainguard.dev/issueassistant/issues"
)

// ActionDeps are the collaborators of an action run.
type ActionDeps struct {
	Issues    issues.Service
	Responder *Responder
}

// RunAction answers the issue named by cfg with exactly one comment and
// returns the comment's URL. Nothing is posted when any step fails. An
// issue without a description is skipped: no comment, no error, no URL.
func RunAction(ctx context.Context, cfg config.Action, deps ActionDeps) (string, error) {
	ref := cfg.Ref()
	ctx = agenttrace.WithExecutionContext(ctx, agenttrace.ExecutionContext{
		Repository:  ref.Repository(),
		IssueNumber: ref.Number,
		Mode:        "action",
	})
	log := clog.FromContext(ctx).With("issue", ref.String())
	ctx = clog.WithLogger(ctx, log)

	log.Infof("Processing issue %d of %s", ref.Number, ref.Repository())

	body, err := deps.Issues.GetIssueBody(ctx, ref)
	if err != nil {
		return "", err
	}

	comment, err := deps.Responder.Respond(ctx, body)
	if errors.Is(err, ErrEmptyIssue) {
		log.Warn("Issue has no description, skipping")
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("issue %s: %w", ref, err)
	}
	if err := ValidateComment(comment); err != nil {
		return "", fmt.Errorf("issue %s: %w", ref, err)
	}

	url, err := deps.Issues.CreateComment(ctx, ref, comment)
	if err != nil {
		return "", err
	}
	log.With("url", url).Info("Posted comment")
	return url, nil
}
