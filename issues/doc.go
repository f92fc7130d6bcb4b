/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package issues reads GitHub issues and posts comments on them.
//
//	gh, err := issues.NewClient(ctx, token, os.Getenv("GITHUB_API_URL"))
//	body, err := gh.GetIssueBody(ctx, issues.Ref{Owner: "o", Repo: "r", Number: 1})
//	url, err := gh.CreateComment(ctx, ref, comment)
//
// Missing issues surface as ErrNotFound and rejected tokens as ErrUnauthorized.
package issues
