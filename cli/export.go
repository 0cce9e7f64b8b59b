package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/salesagg/summary"
)

type ExportCmd struct {
	Dir    string `help:"Working directory to aggregate." arg:""`
	Format string `help:"Export format: xlsx, yaml or json." enum:"xlsx,yaml,yml,json" default:"yaml" short:"f"`
	Out    string `help:"Output file ('-' for stdout). The format's extension is added when it has none." default:"-" short:"o"`
}

func (cmd *ExportCmd) Run(ctx *kong.Context, globals *Globals) error {
	format, err := summary.ParseFormat(cmd.Format)
	if err != nil {
		return err
	}

	if format == summary.FormatXLSX && cmd.Out == "-" && isTerminal() {
		return fmt.Errorf("refusing to write a spreadsheet to a terminal, use --out")
	}

	runCtx, report := globals.startTelemetry(ctx, "export "+cmd.Dir)
	defer report()

	l, err := globals.runner().Aggregate(runCtx, cmd.Dir)
	if err != nil {
		report()
		return globals.fail(ctx, err)
	}

	if cmd.Out == "-" {
		return summary.Export(ctx.Stdout, format, l.Tables())
	}

	out := cmd.Out
	if filepath.Ext(out) == "" {
		out += format.Ext()
	}

	if err := writeExport(out, func(w io.Writer) error {
		return summary.Export(w, format, l.Tables())
	}); err != nil {
		return fmt.Errorf("failed to export %s: %w", out, err)
	}

	printSuccess(ctx.Stderr, fmt.Sprintf("Exported %s", pathStyle.Render(out)))

	return nil
}

func writeExport(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	buf := bufio.NewWriter(f)
	if err := write(buf); err != nil {
		return err
	}
	return buf.Flush()
}
