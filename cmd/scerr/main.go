package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"scerr/internal/bootstrap"
	"scerr/internal/config"
)

var debug bool

func main() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}

func New() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "scerr",
		Short:        "Error code catalog and message formatter",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Help()
		},
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.SetOut(os.Stdout)

	rootCmd.AddCommand(
		newFormatCmd(),
		newListCmd(),
		newGenCmd(),
		newDBCmd(),
	)
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug messages")
	return rootCmd
}

// openRuntime loads the configuration and the message tables.
func openRuntime(ctx context.Context) (*bootstrap.Runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return bootstrap.Open(ctx, cfg)
}
