package cmd

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/muffix/pyfred-cli/workflow"
)

var newOpts workflow.ScaffoldOptions

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new NAME",
	Short: "Create a new workflow",
	Long: `Create a new workflow.

Copies the project skeleton into a directory of the given name, generates its
Info.plist, vendors the dependencies and links the workflow into Alfred. The
workflow shows up in the Alfred preferences and can still be edited with an
external editor.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNew(args[0])
	},
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVarP(&newOpts.Keyword, "keyword", "k", "", "the keyword to trigger the workflow")
	newCmd.Flags().StringVarP(&newOpts.BundleID, "bundle-id", "b", "", "the bundle identifier, usually in reverse DNS notation")
	newCmd.Flags().StringVar(&newOpts.Author, "author", "", "name of the author")
	newCmd.Flags().StringVar(&newOpts.Website, "website", "", "the workflow website")
	newCmd.Flags().StringVar(&newOpts.Description, "description", "", "a description for the workflow")
	newCmd.Flags().BoolVar(&newOpts.InitGit, "git", true, "whether to create a git repository")
	newCmd.MarkFlagRequired("keyword")
	newCmd.MarkFlagRequired("bundle-id")
}

func runNew(name string) error {
	newOpts.Name = name
	log.Println("creating new workflow:", name)

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	dir, err := workflow.Scaffold(cwd, newOpts)
	if err != nil {
		return err
	}

	if err := workflow.Vendor(dir, false); err != nil {
		return err
	}

	if _, err := workflow.Link(dir, workflow.LinkOptions{Relink: true}); err != nil {
		return err
	}

	color.Green("Created workflow %q at %s", name, dir)
	color.White("Edit workflow/workflow.py to make it yours, then run `pyfred package` to build a distributable archive.")
	return nil
}
