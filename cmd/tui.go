package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vidplay-cli/vidplay/tui"
)

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// tuiCmd opens the full screen browser.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the catalog in a full screen interface",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		catalog, err := loadCatalog()
		handleErr(err)
		handleErr(tui.Run(catalog))
	},
}
