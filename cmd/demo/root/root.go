package root

import (
	"os"

	"github.com/flarebyte/demo-shell/cmd/demo/configcmd"
	"github.com/flarebyte/demo-shell/cmd/demo/version"
	"github.com/flarebyte/demo-shell/internal/config"
	"github.com/flarebyte/demo-shell/internal/logging"
	"github.com/flarebyte/demo-shell/internal/shell"
	"github.com/spf13/cobra"
)

const exitCodeConfig = 2

type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }
func (e exitError) ExitCode() int { return e.code }
func (e exitError) Unwrap() error { return e.err }

// NewRootCmd creates the root command for args. Flag parsing is off so that
// option tokens such as -li or /h reach the shell untouched. Subcommands are
// attached only when args[0] names one, so any other token list runs in the
// shell whole.
func NewRootCmd(args []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "demo [options...]",
		Short:              "Interactive option shell: list the working directory or show help",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE:               runShell,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	// Subcommands
	for _, sub := range []*cobra.Command{version.VersionCmd, configcmd.Cmd} {
		if len(args) > 0 && args[0] == sub.Name() {
			cmd.AddCommand(sub)
		}
	}

	// A nil slice would make cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	return cmd
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(os.Getenv(config.PathEnv))
	if err != nil {
		return exitError{code: exitCodeConfig, err: err}
	}
	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding}, cmd.ErrOrStderr())
	if err != nil {
		return exitError{code: exitCodeConfig, err: err}
	}
	defer func() { _ = log.Sync() }()
	log.Debugw("config loaded", "path", os.Getenv(config.PathEnv), "recursive", cfg.List.Recursive)

	sh := shell.New(shell.Options{
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Config: cfg,
		Logger: log,
	})
	return sh.Run(cmd.Context(), args)
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	return NewRootCmd(args).Execute()
}
