/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main is the issue-assistant CLI.
//
// Run without arguments inside a GitHub Action it answers the issue the
// workflow was triggered for. The local subcommand answers two built-in
// example issues and prints the comments instead of posting them.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainguard-dev/clog"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"chainguard.dev/issueassistant/config"
	"chainguard.dev/issueassistant/issues"
	"chainguard.dev/issueassistant/responder"
)

// Clients are built through these so tests can observe construction.
var (
	loadDotEnv = func(path string) error { return godotenv.Load(path) }
	newIssues  = func(ctx context.Context, cfg config.Action) (issues.Service, error) {
		return issues.NewClient(ctx, cfg.Token, cfg.APIURL)
	}
	newGenerator = func(cfg config.Agent) (responder.Generator, error) {
		return responder.NewAgent(cfg)
	}
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	env := envconfig.OsLookuper()
	ctx = withLogger(ctx, os.Stderr, env)

	if err := newRootCommand(env).ExecuteContext(ctx); err != nil {
		clog.ErrorContextf(ctx, "issue-assistant failed: %v", err)
		cancel()
		os.Exit(1)
	}
}

// withLogger installs a tint handler. Colour is off on CI runners, and
// RUNNER_DEBUG (set by "re-run with debug logging") enables debug output.
func withLogger(ctx context.Context, w io.Writer, env envconfig.Lookuper) context.Context {
	level := slog.LevelInfo
	if v, _ := env.Lookup("RUNNER_DEBUG"); v == "1" {
		level = slog.LevelDebug
	}
	_, ci := env.Lookup("CI")
	_, actions := env.Lookup("GITHUB_ACTIONS")

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: ci || actions,
	}))
	slog.SetDefault(logger)
	return clog.WithLogger(ctx, clog.NewLogger(logger))
}

func newRootCommand(env envconfig.Lookuper) *cobra.Command {
	root := &cobra.Command{
		Use:   "issue-assistant",
		Short: "Reply to a newly opened GitHub issue with an AI drafted comment",
		Long: `Reads the issue named by INPUT_ISSUE_NUMBER and GITHUB_REPOSITORY, drafts a
comment with an Azure OpenAI deployment that can search the web with Bing, and posts it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd.Context(), env)
		},
	}
	root.AddCommand(newLocalCommand(env))
	return root
}

func newLocalCommand(env envconfig.Lookuper) *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "local",
		Short: "Answer the built-in example issues and print the comments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLocal(cmd.Context(), env, envFile, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the configuration")
	return cmd
}

func runAction(ctx context.Context, env envconfig.Lookuper) error {
	// Every setting is read before any client exists.
	actionCfg, err := config.LoadAction(ctx, env)
	if err != nil {
		return fmt.Errorf("loading action configuration: %w", err)
	}
	agentCfg, err := config.LoadAgent(ctx, env)
	if err != nil {
		return fmt.Errorf("loading agent configuration: %w", err)
	}
	clog.FromContext(ctx).With("action", actionCfg).With("agent", agentCfg).Debug("Loaded configuration")

	svc, err := newIssues(ctx, actionCfg)
	if err != nil {
		return fmt.Errorf("creating GitHub client: %w", err)
	}
	gen, err := newGenerator(agentCfg)
	if err != nil {
		return fmt.Errorf("creating agent: %w", err)
	}

	_, err = responder.RunAction(ctx, actionCfg, responder.ActionDeps{
		Issues:    svc,
		Responder: responder.New(gen),
	})
	return err
}

func runLocal(ctx context.Context, env envconfig.Lookuper, envFile string, w io.Writer) error {
	if err := loadDotEnv(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
		clog.FromContext(ctx).With("path", envFile).Debug("No dotenv file, using the environment")
	}

	agentCfg, err := config.LoadAgent(ctx, env)
	if err != nil {
		return fmt.Errorf("loading agent configuration: %w", err)
	}
	gen, err := newGenerator(agentCfg)
	if err != nil {
		return fmt.Errorf("creating agent: %w", err)
	}
	return responder.RunLocal(ctx, w, responder.New(gen))
}
