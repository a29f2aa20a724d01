// Handles the "s3shell upload" command

package cmd

import (
	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <source_file_name> <bucket_name> [<dest_object_name>]",
	Short: "Upload a local file to a storage directory",
	Long: `Uploads a local file into the named bucket. If no destination object
name is given the object is named after the source file.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := ""
		if len(args) > 2 {
			key = args[2]
		}
		return respond(newHandler().Upload(args[0], args[1], key))
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
