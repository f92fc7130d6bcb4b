/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package responder drafts the first reply to a newly opened issue.
//
// A Responder wraps the issue body in the assistant's instructions and hands
// the prompt to a Generator. In production the Generator is an Agent: an
// Azure OpenAI deployment that may call the bing_search tool before it
// answers.
//
// Two entry points drive it:
//
//   - RunAction answers the issue a GitHub Action was triggered for and posts
//     exactly one comment.
//   - RunLocal answers the built-in Examples and prints the results.
//
// Example:
//
//	agent, err := responder.NewAgent(agentCfg)
//	if err != nil {
//		return err
//	}
//	url, err := responder.RunAction(ctx, actionCfg, responder.ActionDeps{
//		Issues:    client,
//		Responder: responder.New(agent),
//	})
package responder
