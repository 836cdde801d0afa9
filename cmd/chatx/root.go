package main

import (
	"github.com/spf13/cobra"

	"github.com/bear-block/chatx/internal/config"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "chatx",
		Short:         "chatx renders themeable chat conversations in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a chatx config file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig(flags *rootFlags) (config.Config, error) {
	if flags.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.ParseConfig(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}
