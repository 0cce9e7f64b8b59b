package cli

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry  bool `help:"Show timing telemetry for each stage on stderr."`
	Verbose    bool `help:"Print the underlying cause of a failure on stderr." short:"v"`
	BranchOnly bool `help:"Aggregate per branch only; records are [branch, amount] and commodity.lst is not read." env:"SALESAGG_BRANCH_ONLY"`
}

type Commands struct {
	Globals

	Run    RunCmd    `cmd:"" default:"withargs" help:"Aggregate the record files of a directory and write the summary files (default)."`
	Check  CheckCmd  `cmd:"" help:"Validate and aggregate a directory without writing summary files."`
	Export ExportCmd `cmd:"" help:"Export aggregated totals as xlsx, yaml or json."`
	Clean  CleanCmd  `cmd:"" help:"Remove summary files from a directory."`
	Doctor DoctorCmd `cmd:"" help:"Doctor utilities for debugging sales directories."`
}
