package cmd

import (
	"encoding/json"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidplay-cli/vidplay/render"
	"github.com/vidplay-cli/vidplay/video"
)

func init() {
	rootCmd.AddCommand(videosCmd)
	videosCmd.Flags().BoolP("json", "j", false, "Output as json")
	videosCmd.Flags().BoolP("flagged", "f", false, "Only list flagged videos")
}

// videosCmd lists the catalog, optionally as JSON.
var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "List the catalog",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			asJson      = lo.Must(cmd.Flags().GetBool("json"))
			flaggedOnly = lo.Must(cmd.Flags().GetBool("flagged"))
		)

		catalog, err := loadCatalog()
		handleErr(err)

		videos := catalog.All()
		if flaggedOnly {
			videos = lo.Filter(videos, func(v *video.Video, _ int) bool {
				return v.Flagged()
			})
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(videos))
			return
		}

		cmd.Println(render.Count(len(videos)))
		for _, v := range videos {
			cmd.Println(render.Video(v))
		}
	},
}
