// Handles the "s3shell createdir" command

package cmd

import (
	"github.com/spf13/cobra"
)

var createdirCmd = &cobra.Command{
	Use:   "createdir <bucket_name>",
	Short: "Create a new storage directory (bucket)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket := ""
		if len(args) > 0 {
			bucket = args[0]
		}
		return respond(newHandler().CreateDir(bucket))
	},
}

func init() {
	rootCmd.AddCommand(createdirCmd)
}
