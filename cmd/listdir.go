// Handles the "s3shell listdir" command

package cmd

import (
	"github.com/spf13/cobra"
)

var listdirCmd = &cobra.Command{
	Use:   "listdir [<bucket_name>]",
	Short: "List all directories, or the objects of one directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket := ""
		if len(args) > 0 {
			bucket = args[0]
		}
		return respond(newHandler().ListDir(bucket))
	},
}

func init() {
	rootCmd.AddCommand(listdirCmd)
}
