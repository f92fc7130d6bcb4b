/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package responder

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/issueassistant/agents/agenttrace"
	"chainguard.dev/issueassistant/agents/promptbuilder"
)

// Signature is how every comment is signed.
const Signature = "GitHub AI Issue Assistant"

var (
	// ErrEmptyIssue is returned for an issue without a description.
	ErrEmptyIssue = errors.New("issue body is empty")

	// ErrEmptyComment is returned when no comment text was produced.
	ErrEmptyComment = errors.New("comment is empty")
)

// Generator turns a prompt into text. The Azure OpenAI agent implements it,
// and tests substitute a stub.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate implements Generator.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

var issuePrompt = promptbuilder.MustNewPrompt(`I will provide you a GitHub issue opened in a repository of Terraform modules for Azure. Write a comment for the issue. The comment should be one of the following:
1. If the issue is reporting a bug, analyse its description and check whether all the information needed to reproduce the bug is present. If not, ask the reporter to provide the missing information.
2. If the issue is requesting a new feature for the Terraform module, check whether the corresponding Azure feature is in preview or not.

The description is the content of the issue element below:
{{issue}}

Where the issue was opened, if known:
{{origin}}
Output only the GitHub comment verbatim. Sign yourself as "{{signature}}".

Example reply:
Hello, thanks for opening this issue. I have searched on Bing and I found that the feature
you are requesting is still in preview. As soon as the feature is promoted to GA we will act on it.
Thank you for your patience.
{{signature}}`)

// Request is the data bound into the issue prompt.
type Request struct {
	Body string
	// Origin names the repository and issue. It is empty for local runs.
	Origin agenttrace.ExecutionContext
}

type issueOrigin struct {
	Repository string `yaml:"repository,omitempty"`
	Issue      int    `yaml:"issue,omitempty"`
}

// issueElement keeps the body in a CDATA section so code fences and
// newlines reach the model unchanged.
type issueElement struct {
	XMLName xml.Name `xml:"issue"`
	Body    string   `xml:",cdata"`
}

var _ promptbuilder.Bindable = Request{}

// Bind implements promptbuilder.Bindable.
func (r Request) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	p, err := p.BindXML("issue", issueElement{Body: r.Body})
	if err != nil {
		return nil, err
	}
	p, err = p.BindYAML("origin", issueOrigin{Repository: r.Origin.Repository, Issue: r.Origin.IssueNumber})
	if err != nil {
		return nil, err
	}
	return p.BindStringLiteral("signature", Signature)
}

// BuildPrompt renders the instructions for body.
func BuildPrompt(body string) (string, error) {
	return BuildRequestPrompt(Request{Body: body})
}

// BuildRequestPrompt renders the instructions for req.
func BuildRequestPrompt(req Request) (string, error) {
	return promptbuilder.Render(issuePrompt, req)
}

// Responder drafts one comment per issue.
type Responder struct {
	gen Generator
}

// New returns a Responder backed by gen.
func New(gen Generator) *Responder {
	return &Responder{gen: gen}
}

// Respond drafts a comment for the issue body. The generated text is
// returned as-is.
func (r *Responder) Respond(ctx context.Context, body string) (string, error) {
	if strings.TrimSpace(body) == "" {
		return "", ErrEmptyIssue
	}

	prompt, err := BuildRequestPrompt(Request{Body: body, Origin: agenttrace.GetExecutionContext(ctx)})
	if err != nil {
		return "", fmt.Errorf("building prompt: %w", err)
	}

	clog.FromContext(ctx).With("body_length", len(body)).Info("Drafting comment")

	comment, err := r.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating comment: %w", err)
	}
	if strings.TrimSpace(comment) == "" {
		return "", ErrEmptyComment
	}
	return comment, nil
}
