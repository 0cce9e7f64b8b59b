package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/robinvdvleuten/salesagg/loader"
)

// DoctorCmd provides utilities for debugging sales directories.
type DoctorCmd struct {
	Records RecordsCmd `cmd:"" help:"List discovered record files with their parsed content."`
}

// RecordsCmd dumps every record file the run would process. Files are
// parsed but not validated against the definition tables.
type RecordsCmd struct {
	Dir string `help:"Working directory to inspect." arg:""`
}

// Run executes the records command.
func (cmd *RecordsCmd) Run(ctx *kong.Context, globals *Globals) error {
	result, err := loader.New(loader.WithSchema(globals.schema())).Load(context.Background(), cmd.Dir)
	if err != nil {
		return globals.fail(ctx, err)
	}

	for _, file := range result.Files {
		lines, err := loader.ReadLines(file.Path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file.Name, err)
		}

		rec, err := result.Ledger.ParseRecord(file.Name, lines)
		if err != nil {
			_, _ = fmt.Fprintf(ctx.Stdout, "%s: %s\n", file.Name, err)
			continue
		}

		_, _ = fmt.Fprintln(ctx.Stdout, repr.String(rec, repr.Indent("  ")))
	}

	return nil
}
