package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	salescli "github.com/robinvdvleuten/salesagg/cli"
)

var (
	// Version contains the application version number. It's set via ldflags
	// when building.
	Version = ""

	// CommitSHA contains the SHA of the commit that this application was built
	// against. It's set via ldflags when building.
	CommitSHA = ""

	cli struct {
		Version kong.VersionFlag `help:"Show version information"`
		salescli.Commands
	}
)

func main() {
	ctx := kong.Parse(&cli,
		kong.Vars{
			"version": buildVersion(),
		},
		kong.Name("salesagg"),
		kong.Description("Aggregate daily sales record files into branch and commodity totals."),
		kong.UsageOnError(),
		kong.Bind(&cli.Globals),
	)

	err := ctx.Run()

	var cmdErr *salescli.CommandError
	if errors.As(err, &cmdErr) {
		os.Exit(cmdErr.ExitCode())
	}
	ctx.FatalIfErrorf(err)
}

func buildVersion() string {
	if Version == "" {
		Version = "dev"
	}
	if CommitSHA == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, CommitSHA)
}
