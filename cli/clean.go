package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
)

type CleanCmd struct {
	Dir string `help:"Working directory to clean." arg:""`
	Yes bool   `help:"Remove without asking for confirmation." short:"y"`
}

func (cmd *CleanCmd) Run(ctx *kong.Context, globals *Globals) error {
	var targets []string
	for _, dim := range globals.schema() {
		path := filepath.Join(cmd.Dir, dim.OutputFile())
		if _, err := os.Stat(path); err == nil {
			targets = append(targets, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}

	if len(targets) == 0 {
		printInfof(ctx.Stdout, "No summary files in %s", pathStyle.Render(cmd.Dir))
		return nil
	}

	if !cmd.Yes {
		confirmed, err := promptYesNo(fmt.Sprintf("Remove %d summary file(s) from %q?", len(targets), cmd.Dir))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirmed {
			printError(ctx.Stderr, "nothing removed (use --yes to skip confirmation)")
			return NewCommandError(1)
		}
	}

	for _, path := range targets {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
		printSuccess(ctx.Stdout, fmt.Sprintf("Removed %s", pathStyle.Render(path)))
	}

	return nil
}
