package cmd

import (
	"github.com/okaidia/fatlens/internal/inspect"
	"github.com/spf13/cobra"
)

func DefineInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "info <image>",
		Short:        "Decode and print the boot sector and FAT32 extension of an image",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunInfo,
	}
}

func RunInfo(cmd *cobra.Command, args []string) error {
	return inspect.Info(args[0])
}
