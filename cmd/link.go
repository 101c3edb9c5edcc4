package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/muffix/pyfred-cli/workflow"
)

var linkOpts workflow.LinkOptions

// linkCmd represents the link command
var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Create a symbolic link to this workflow in Alfred",
	Long: `Create a symbolic link to this workflow in Alfred's workflows directory.

Running it again is a no-op while a link exists; use --relink to replace it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := requireProjectRoot()
		if err != nil {
			return err
		}

		linkPath, err := workflow.Link(root, linkOpts)
		if err != nil {
			return err
		}

		color.Green("Workflow linked at %s", linkPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linkCmd)

	linkCmd.Flags().BoolVar(&linkOpts.Relink, "relink", false, "delete (if exists) and recreate the link")
	linkCmd.Flags().BoolVar(&linkOpts.SamePath, "same-path", false, "reuse (if exists) the previous path for the link")
}
