package cmd

import (
	"github.com/okaidia/fatlens/internal/inspect"
	"github.com/okaidia/fatlens/internal/logger"
	"github.com/spf13/cobra"
)

func DefineListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <image>",
		Short: "List directory entries from a region of 32-byte slots",
		Long: `The 'list' command scans a directory region of a FAT32 image, reassembling
long file names spread across auxiliary slots, and prints one line per entry:
size in KiB, creation timestamp, reconstructed name and starting cluster.
Without --offset the root directory is located via the volume headers.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunList,
	}

	cmd.Flags().Int64P("offset", "o", -1, "byte offset of the directory region (default: the root directory)")
	cmd.Flags().IntP("entries", "n", 128, "maximum number of 32-byte slots to examine")
	cmd.Flags().Bool("show-deleted", false, "include deleted (0xE5) entries in the listing")

	return cmd
}

func RunList(cmd *cobra.Command, args []string) error {
	offset, _ := cmd.Flags().GetInt64("offset")
	entries, _ := cmd.Flags().GetInt("entries")
	showDeleted, _ := cmd.Flags().GetBool("show-deleted")
	logLevel, _ := cmd.Flags().GetString("log-level")

	return inspect.List(args[0], inspect.ListOptions{
		Offset:      offset,
		Entries:     entries,
		ShowDeleted: showDeleted,
		LogLevel:    logger.ParseLevel(logLevel),
	})
}
