// Package cli implements the salesagg commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/robinvdvleuten/salesagg/ledger"
	"github.com/robinvdvleuten/salesagg/output"
	"github.com/robinvdvleuten/salesagg/runner"
	"github.com/robinvdvleuten/salesagg/telemetry"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D7D7", Dark: "#00D7D7"})
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		infoStyle.Render(infoSymbol),
		fmt.Sprintf(format, args...),
	)
}

// promptYesNo asks a yes/no question. It answers false without asking when
// stdin is not a terminal.
func promptYesNo(question string) (bool, error) {
	if !isTerminal() {
		return false, nil
	}

	var confirm bool

	form := huh.NewConfirm().
		Title(question).
		WithButtonAlignment(lipgloss.Left).
		Value(&confirm)

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	return confirm, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// schema returns the dimensions selected by the global flags.
func (g *Globals) schema() ledger.Schema {
	if g.BranchOnly {
		return ledger.BranchOnly
	}
	return ledger.BranchCommodity
}

func (g *Globals) runner() *runner.Runner {
	return runner.New(runner.WithSchema(g.schema()))
}

// startTelemetry installs a timing collector when --telemetry is set. The
// returned function ends the root timer and prints the report to stderr; it
// is safe to call more than once.
func (g *Globals) startTelemetry(ctx *kong.Context, name string) (context.Context, func()) {
	runCtx := context.Background()
	if !g.Telemetry {
		return runCtx, func() {}
	}

	collector := telemetry.NewRecorder(telemetry.WithStyles(output.NewStyles(ctx.Stderr)))
	runCtx = telemetry.WithCollector(runCtx, collector)

	root := collector.Start(name)
	runCtx = telemetry.WithRootTimer(runCtx, root)

	var once sync.Once
	return runCtx, func() {
		once.Do(func() {
			root.End()
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		})
	}
}

// fail prints the diagnostic line for err to stdout, and its cause to stderr
// when --verbose is set.
func (g *Globals) fail(ctx *kong.Context, err error) error {
	_, _ = fmt.Fprintln(ctx.Stdout, Diagnostic(err))
	if g.Verbose {
		printError(ctx.Stderr, Detail(err))
	}
	return NewCommandError(1)
}
