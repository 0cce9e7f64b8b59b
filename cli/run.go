package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
)

// RunCmd is the batch job. It takes exactly one directory; anything else is
// reported with the generic diagnostic so that scripts see the same single
// line for every failure.
type RunCmd struct {
	Dirs []string `help:"Working directory containing branch.lst, commodity.lst and the record files." arg:"" optional:"" name:"dir"`
}

func (cmd *RunCmd) Run(ctx *kong.Context, globals *Globals) error {
	if len(cmd.Dirs) != 1 {
		return globals.fail(ctx, fmt.Errorf("expected exactly one directory, got %d", len(cmd.Dirs)))
	}
	dir := cmd.Dirs[0]

	runCtx, report := globals.startTelemetry(ctx, "run "+dir)
	defer report()

	if _, err := globals.runner().Run(runCtx, dir); err != nil {
		report()
		return globals.fail(ctx, err)
	}

	return nil
}
