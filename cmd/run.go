package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vidplay-cli/vidplay/filesystem"
	"github.com/vidplay-cli/vidplay/shell"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

// runCmd feeds a file of shell commands to a fresh session.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute shell commands from a file",
	Long: `Execute shell commands from a file, one per line, as if they were typed into the interactive shell.
Search questions are answered by the line that follows the search command.`,
	Args:    cobra.ExactArgs(1),
	Example: "  vidplay run ./session.txt",
	Run: func(cmd *cobra.Command, args []string) {
		catalog, err := loadCatalog()
		handleErr(err)

		file, err := filesystem.API().Open(args[0])
		handleErr(err)
		defer file.Close()

		handleErr(interrupted(shell.New(catalog, file, cmd.OutOrStdout()).Run(cmd.Context())))
	},
}
