// Handles the "s3shell find" command

package cmd

import (
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <pattern> <bucket_name>",
	Short: "List the objects whose names contain a substring",
	Long: `Lists the objects of the named bucket whose names contain the given
pattern as a plain substring (no globs, no regular expressions), e.g.:
s3shell find txt bucket1`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return respond(newHandler().Find(args[0], args[1]))
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
