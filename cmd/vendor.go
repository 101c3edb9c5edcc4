package cmd

import (
	"github.com/spf13/cobra"

	"github.com/muffix/pyfred-cli/workflow"
)

var vendorUpgrade bool

// vendorCmd represents the vendor command
var vendorCmd = &cobra.Command{
	Use:   "vendor",
	Short: "Install workflow dependencies",
	Long: `Install workflow dependencies.

Downloads the packages listed in requirements.txt into the workflow's
vendored directory. The workflow sets PYTHONPATH to .:vendored, so the
interpreter finds them there without anything being installed system-wide.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := requireProjectRoot()
		if err != nil {
			return err
		}
		return workflow.Vendor(root, vendorUpgrade)
	},
}

func init() {
	rootCmd.AddCommand(vendorCmd)

	vendorCmd.Flags().BoolVarP(&vendorUpgrade, "upgrade", "u", false, "upgrade vendored packages to the newest allowed versions")
}
