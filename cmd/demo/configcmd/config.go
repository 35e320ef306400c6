package configcmd

import (
	"fmt"
	"os"

	"github.com/flarebyte/demo-shell/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagWrite    string
	flagDefaults bool
)

// Cmd implements `demo config`.
var Cmd = &cobra.Command{
	Use:           "config",
	Short:         "Print the effective configuration as YAML",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if !flagDefaults {
			var err error
			if cfg, err = config.Load(os.Getenv(config.PathEnv)); err != nil {
				return err
			}
		}
		if flagWrite != "" {
			if err := config.Write(flagWrite, cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flagWrite)
			return err
		}
		b, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

func init() {
	Cmd.Flags().StringVar(&flagWrite, "write", "", "Write the configuration to this YAML file instead of stdout")
	Cmd.Flags().BoolVar(&flagDefaults, "defaults", false, fmt.Sprintf("Ignore %s and use built-in defaults", config.PathEnv))
}
