package cmd

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
	"github.com/vidplay-cli/vidplay/video"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// schemaCmd describes one entry of the array printed by "videos --json".
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of a videos --json entry",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		schema := jsonschema.Reflect(&video.Entry{})

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
