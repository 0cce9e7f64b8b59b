package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/salesagg/output"
	"github.com/robinvdvleuten/salesagg/summary"
)

type CheckCmd struct {
	Dir   string `help:"Working directory to check." arg:""`
	Quiet bool   `help:"Do not print the totals report." short:"q"`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, report := globals.startTelemetry(ctx, "check "+cmd.Dir)
	defer report()

	l, err := globals.runner().Aggregate(runCtx, cmd.Dir)
	if err != nil {
		report()
		return globals.fail(ctx, err)
	}

	if !cmd.Quiet {
		if err := summary.Report(ctx.Stdout, l.Tables(), output.NewStyles(ctx.Stdout)); err != nil {
			return fmt.Errorf("failed to print report: %w", err)
		}
		_, _ = fmt.Fprintln(ctx.Stdout)
	}

	printSuccess(ctx.Stdout, "Check passed")

	return nil
}
