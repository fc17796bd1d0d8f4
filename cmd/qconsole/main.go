package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quickrecipe/console/internal/actions"
	"github.com/quickrecipe/console/internal/app"
	"github.com/quickrecipe/console/internal/usage"
)

type flags struct {
	level     string
	config    string
	logPath   string
	log       bool
	noColor   bool
	noHistory bool
}

func (f *flags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.level, "level", "", "Output level: fatal, error, warn, info, normal or 0-4")
	cmd.Flags().StringVar(&f.config, "config", "", "Path of the rc file (default ~/.qconsolerc)")
	cmd.Flags().BoolVar(&f.log, "log", false, "Write diagnostics to the log file")
	cmd.Flags().StringVar(&f.logPath, "log-path", "", "Path of the log file (default from config)")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&f.noHistory, "no-history", false, "Do not record commands")
}

// overrides turns the flags that were set into config overrides.
func (f flags) overrides(cmd *cobra.Command) map[string]string {
	out := make(map[string]string)
	if cmd.Flags().Changed("level") {
		out["log_level"] = f.level
	}
	if f.noColor {
		out["color"] = "never"
	}
	if f.noHistory {
		out["history"] = "false"
	}
	if f.log {
		out["enable_log"] = "true"
	}
	if f.logPath != "" {
		out["log_path"] = f.logPath
	}
	return out
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "qconsole",
		Short: "qconsole, an interactive command console",
		Long: `qconsole reads one command per line and runs it.

Commands take positional arguments (load notes.txt true) or keyed
arguments (load path=notes.txt lines=true). Type 'help' to list them.`,
		Version:       app.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), app.Options{
				ConfigPath: f.config,
				Overrides:  f.overrides(cmd),
				Input:      in,
				Output:     out,
			})
		},
	}

	f.register(cmd)
	cmd.SetIn(in)
	cmd.SetOut(out)
	return cmd
}

func run(ctx context.Context, opts app.Options) error {
	application, err := app.New(opts)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(application) }()

	deps := actions.DefaultDeps()
	deps.Web = application.Web
	deps.Config = application.Config
	if err := actions.Register(application.Session, deps); err != nil {
		return err
	}

	return application.Session.Run(ctx)
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}

// Interrupts keep their default behavior and end the process; the loop
// blocks on stdin between commands.
func main() {
	err := newRootCmd(os.Stdin, os.Stdout).ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
	}
	os.Exit(exitCode(err))
}
