package cmd

import (
	"github.com/okaidia/fatlens/internal/env"
	"github.com/spf13/cobra"
)

func Execute() error {
	rootCmd := &cobra.Command{
		Use:     env.AppName,
		Short:   env.AppName + " - FAT32 on-disk structure inspector",
		Version: env.Version,
	}

	rootCmd.PersistentFlags().String("log-level", "INFO", "minimum log level (DEBUG, INFO, WARN, ERROR)")

	rootCmd.AddCommand(DefineInfoCommand())
	rootCmd.AddCommand(DefineListCommand())

	return rootCmd.Execute()
}
