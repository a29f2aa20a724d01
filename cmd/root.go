// Root of command-line argument parsing.
// This file was based off the standard cobra template, see
// https://github.com/spf13/cobra
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/objectstores/s3shell/pkg/shell"
	"github.com/objectstores/s3shell/pkg/shellmgr"
)

var cfgFile string

var shellManager *shellmgr.ShellManager

// rootCmd represents the base command when called without any subcommands.
// With no subcommand it drops into the interactive shell.
var rootCmd = &cobra.Command{
	Use:   "s3shell",
	Short: "An interactive shell for object storage",
	Long: `A small command shell that maps directory-style commands (createdir,
upload, download, delete, deletedir, find, listdir) onto an object storage
backend such as AWS S3. Run without a subcommand for the interactive prompt,
or use a subcommand for one-shot operation.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		mgrArgs := map[string]interface{}{}
		if cfgFile != "" {
			mgrArgs["config-file"] = cfgFile
		}

		var err error
		shellManager, err = shellmgr.NewManager(mgrArgs)
		if err != nil {
			fmt.Printf("Failed to initialize shell manager: %v\n", err)
			os.Exit(1)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		shellManager.Destroy()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return newHandler().Repl(os.Stdin, os.Stdout)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if shellManager == nil || shellManager.Logger == nil {
			fmt.Printf("%v\n", err)
		} else {
			shellManager.Logger.Error(err)
		}
		os.Exit(1)
	}
}

func newHandler() *shell.Handler {
	return shell.NewHandler(shellManager.Store, shellManager.Logger)
}

// Prints a one-shot handler response. Anticipated failures are already part
// of the response string; only re-raised backend faults come back as errors.
func respond(resp string, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(resp)
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is configs/s3shell.yaml)")
}
