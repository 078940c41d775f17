package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "infotrash <file>...",
	Short: "Displays information from $IXXXXXX files",
	Long: `infotrash reads Windows Recycle Bin metadata files ($I files) and prints
the original path of each deleted file together with its deletion time in UTC.

Files are processed in the order given. A file that cannot be read or decoded
is reported and skipped; the remaining files are still processed.

Example:
  infotrash '$I3ZK9Q1.docx'
  infotrash /mnt/c/'$Recycle.Bin'/S-1-5-21-*/'$I'*`,
	Version: version,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInfo(cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.SetVersionTemplate(versionTemplate())
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
