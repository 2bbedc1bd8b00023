package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/vidplay-cli/vidplay/icon"
	"github.com/vidplay-cli/vidplay/query"
	"github.com/vidplay-cli/vidplay/util"
	"github.com/vidplay-cli/vidplay/where"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

func deleteAt(location func() string) func() error {
	return func() error {
		return util.Delete(location())
	}
}

var clearTargets = []clearTarget{
	{"queries history", "queries", mo.Some("q"), query.Forget},
	{"logs", "logs", mo.Some("l"), deleteAt(where.Logs)},
	{"cache directory", "cache", mo.Some("c"), deleteAt(where.Cache)},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd removes remembered queries, logs or cached files.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear remembered queries, logs or the cache",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			erase := util.PrintErasable(fmt.Sprintf("Clearing %s...", target.name))
			err := target.clear()
			erase()
			handleErr(err)
			cmd.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
