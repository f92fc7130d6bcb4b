/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package responder

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"chainguard.dev/issueassistant/agents/agenttrace"
)

// Example is a canned issue body for local runs.
type Example struct {
	Name string
	Body string
}

// Examples are the issues RunLocal answers, in order.
var Examples = []Example{
	{Name: "feature request", Body: FeatureRequestExample},
	{Name: "bug report", Body: BugReportExample},
}

// RunLocal drafts a comment for each of the Examples and writes them to w,
// followed by a summary table. Nothing is posted to GitHub.
func RunLocal(ctx context.Context, w io.Writer, r *Responder) error {
	ctx = agenttrace.WithExecutionContext(ctx, agenttrace.ExecutionContext{Mode: "local"})

	table := createSummaryTable(w)
	for i, ex := range Examples {
		clog.InfoContextf(ctx, "Running example %d of %d: %s", i+1, len(Examples), ex.Name)

		if _, err := fmt.Fprintf(w, "Running locally with the %s example\n", ex.Name); err != nil {
			return err
		}

		start := time.Now()
		comment, err := r.Respond(ctx, ex.Body)
		if err != nil {
			return fmt.Errorf("%s example: %w", ex.Name, err)
		}
		elapsed := time.Since(start)

		if _, err := fmt.Fprintf(w, "%s\n\n", comment); err != nil {
			return err
		}
		if err := table.Append([]string{
			ex.Name,
			elapsed.Round(time.Millisecond).String(),
			fmt.Sprint(len([]rune(comment))),
			signed(comment),
		}); err != nil {
			return fmt.Errorf("appending summary row: %w", err)
		}
	}
	return table.Render()
}

func signed(comment string) string {
	if ValidateSignature(comment) {
		return "yes"
	}
	return "no"
}

// createSummaryTable creates the markdown table printed after a local run.
func createSummaryTable(w io.Writer) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		MaxWidth: 80,
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader([]string{"Example", "Duration", "Characters", "Signed"}),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}
