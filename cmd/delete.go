// Handles the "s3shell delete" command

package cmd

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <dest_object_name> <bucket_name>",
	Short: "Delete an object from a storage directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return respond(newHandler().Delete(args[0], args[1]))
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
