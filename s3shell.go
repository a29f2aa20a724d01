package main

import "github.com/objectstores/s3shell/cmd"

// s3shell is a single executable: run bare for the interactive shell, or
// with a subcommand for one-shot use. We use the subcommand pattern
// (http://blog.ralch.com/tutorial/golang-subcommands/) as is common for many
// cloud utilities.
func main() {
	cmd.Execute()
}
