package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/muffix/pyfred-cli/workflow"
)

// packageCmd represents the package command
var packageCmd = &cobra.Command{
	Use:   "package",
	Short: "Package the workflow for distribution",
	Long: `Package the workflow for distribution.

Vendors the dependencies, then zips the workflow directory into an
.alfredworkflow file in the dist directory. Users install the workflow by
double-clicking that file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := requireProjectRoot()
		if err != nil {
			return err
		}

		if err := workflow.Vendor(root, false); err != nil {
			return err
		}

		archive, err := workflow.Archive(root)
		if err != nil {
			return err
		}

		color.Green("Produced package at %s", archive)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packageCmd)
}
