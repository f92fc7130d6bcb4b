/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/sethvargo/go-envconfig"

	"chainguard.dev/issueassistant/issues"
)

// ErrInvalid is returned when a setting is present but malformed.
var ErrInvalid = errors.New("invalid configuration")

// Agent configures the model and the search tool. Both modes need it.
type Agent struct {
	OpenAIAPIBase       string  `env:"INPUT_OPENAI_API_BASE,required"`
	OpenAIAPIKey        string  `env:"INPUT_OPENAI_API_KEY,required"`
	BingSubscriptionKey string  `env:"INPUT_BING_SUBSCRIPTION_KEY,required"`
	Deployment          string  `env:"INPUT_OPENAI_DEPLOYMENT,default=gpt-35-turbo-16k"`
	APIVersion          string  `env:"INPUT_OPENAI_API_VERSION,default=2023-07-01-preview"`
	BingSearchURL       string  `env:"INPUT_BING_SEARCH_URL,default=https://api.bing.microsoft.com/v7.0/search"`
	Temperature         float64 `env:"INPUT_TEMPERATURE,default=0"`
	MaxTurns            int     `env:"INPUT_MAX_TURNS,default=15"`
	// MaxTokens caps each model turn. Zero leaves it to the deployment.
	MaxTokens int64 `env:"INPUT_MAX_TOKENS,default=0"`
	// BingMarket is the search market, e.g. "en-US". Empty lets Bing pick.
	BingMarket string `env:"INPUT_BING_MARKET"`
}

// LogValue omits the secrets.
func (a Agent) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("openai_api_base", a.OpenAIAPIBase),
		slog.String("deployment", a.Deployment),
		slog.String("api_version", a.APIVersion),
		slog.Float64("temperature", a.Temperature),
		slog.Int("max_turns", a.MaxTurns),
		slog.Int64("max_tokens", a.MaxTokens),
		slog.String("bing_market", a.BingMarket),
	)
}

// Action identifies the issue to answer when running as a GitHub Action.
type Action struct {
	IssueNumber int    `env:"INPUT_ISSUE_NUMBER,required"`
	Repository  string `env:"GITHUB_REPOSITORY,required"`
	// Token is the "repo-token" action input. See ActionsLookuper.
	Token  string `env:"INPUT_REPO_TOKEN,required"`
	APIURL string `env:"GITHUB_API_URL,default=https://api.github.com"`
}

// Ref returns the issue the action was triggered for.
func (a Action) Ref() issues.Ref {
	owner, repo, _ := issues.ParseRepository(a.Repository)
	return issues.Ref{Owner: owner, Repo: repo, Number: a.IssueNumber}
}

// LogValue omits the token.
func (a Action) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("repository", a.Repository),
		slog.Int("issue_number", a.IssueNumber),
		slog.String("api_url", a.APIURL),
	)
}

// LoadAgent reads the agent settings through l.
func LoadAgent(ctx context.Context, l envconfig.Lookuper) (Agent, error) {
	var cfg Agent
	if err := process(ctx, l, &cfg); err != nil {
		return Agent{}, err
	}

	if err := validURL("INPUT_OPENAI_API_BASE", cfg.OpenAIAPIBase); err != nil {
		return Agent{}, err
	}
	if err := validURL("INPUT_BING_SEARCH_URL", cfg.BingSearchURL); err != nil {
		return Agent{}, err
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return Agent{}, fmt.Errorf("%w: INPUT_TEMPERATURE must be between 0 and 2, got %v", ErrInvalid, cfg.Temperature)
	}
	if cfg.MaxTurns <= 0 {
		return Agent{}, fmt.Errorf("%w: INPUT_MAX_TURNS must be positive, got %d", ErrInvalid, cfg.MaxTurns)
	}
	if cfg.MaxTokens < 0 {
		return Agent{}, fmt.Errorf("%w: INPUT_MAX_TOKENS must not be negative, got %d", ErrInvalid, cfg.MaxTokens)
	}
	return cfg, nil
}

// LoadAction reads the action settings through l.
func LoadAction(ctx context.Context, l envconfig.Lookuper) (Action, error) {
	var cfg Action
	if err := process(ctx, l, &cfg); err != nil {
		return Action{}, err
	}

	if cfg.IssueNumber <= 0 {
		return Action{}, fmt.Errorf("%w: INPUT_ISSUE_NUMBER must be positive, got %d", ErrInvalid, cfg.IssueNumber)
	}
	if _, _, err := issues.ParseRepository(cfg.Repository); err != nil {
		return Action{}, fmt.Errorf("%w: GITHUB_REPOSITORY: %w", ErrInvalid, err)
	}
	if err := validURL("GITHUB_API_URL", cfg.APIURL); err != nil {
		return Action{}, err
	}
	return cfg, nil
}

func process(ctx context.Context, l envconfig.Lookuper, target any) error {
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   target,
		Lookuper: ActionsLookuper(l),
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, envconfig.ErrMissingRequired):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
}

func validURL(name, value string) error {
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %s must be an absolute URL, got %q", ErrInvalid, name, value)
	}
	return nil
}
