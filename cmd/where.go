package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/vidplay-cli/vidplay/color"
	"github.com/vidplay-cli/vidplay/key"
	"github.com/vidplay-cli/vidplay/log"
	"github.com/vidplay-cli/vidplay/style"
	"github.com/vidplay-cli/vidplay/where"
)

type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
	hidden   bool
	// note is shown next to the path in the overview
	note func() mo.Option[string]
}

var noNote = mo.None[string]

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c"), false, noNote},
	{"Catalog", where.Catalog, "catalog", mo.Some("v"), false, noNote},
	{"Logs", where.Logs, "logs", mo.Some("l"), false, logsNote},
	{"Cache", where.Cache, "cache", mo.None[string](), true, noNote},
	{"Queries", where.Queries, "queries", mo.None[string](), true, noNote},
}

func logsNote() mo.Option[string] {
	if log.Enabled() {
		return mo.None[string]()
	}
	return mo.Some("disabled, set " + key.LogsWrite + " to enable")
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		if n.argShort.IsPresent() {
			whereCmd.Flags().BoolP(n.argLong, n.argShort.MustGet(), false, n.name+" path")
		} else {
			whereCmd.Flags().Bool(n.argLong, false, n.name+" path")
		}

		if n.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(n.argLong))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.SetOut(os.Stdout)
}

// whereCmd prints the paths used for config, catalog and logs.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show the paths vidplay reads and writes",
	Run: func(cmd *cobra.Command, args []string) {
		headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render

		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.argLong)) {
				cmd.Println(n.where())
				return
			}
		}

		visible := lo.Reject(wherePaths, func(t *whereTarget, _ int) bool {
			return t.hidden
		})

		for i, n := range visible {
			cmd.Printf("%s %s", headerStyle(n.name+"?"), style.Fg(color.Yellow)("--"+n.argLong))
			if note, ok := n.note().Get(); ok {
				cmd.Print(" " + style.Faint("("+note+")"))
			}
			cmd.Println()
			cmd.Println(n.where())

			if i < len(visible)-1 {
				cmd.Println()
			}
		}
	},
}
