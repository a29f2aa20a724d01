// Handles the "s3shell deletedir" command

package cmd

import (
	"github.com/spf13/cobra"
)

var deletedirCmd = &cobra.Command{
	Use:   "deletedir <bucket_name>",
	Short: "Delete an empty storage directory",
	Long:  `Deletes the named bucket. The bucket must contain no objects.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return respond(newHandler().DeleteDir(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(deletedirCmd)
}
