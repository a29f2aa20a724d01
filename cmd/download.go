// Handles the "s3shell download" command

package cmd

import (
	"github.com/spf13/cobra"
)

var downloadCmd = &cobra.Command{
	Use:   "download <dest_object_name> <bucket_name> [<source_file_name>]",
	Short: "Download an object to a local file",
	Long: `Downloads an object from the named bucket. If no local file name is
given the object's own name is used. A pre-existing local file is kept as a
single .bak backup before being replaced.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		dst := ""
		if len(args) > 2 {
			dst = args[2]
		}
		return respond(newHandler().Download(args[0], args[1], dst))
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)
}
