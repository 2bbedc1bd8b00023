package cmd

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidplay-cli/vidplay/color"
	"github.com/vidplay-cli/vidplay/constant"
	"github.com/vidplay-cli/vidplay/filesystem"
	"github.com/vidplay-cli/vidplay/icon"
	"github.com/vidplay-cli/vidplay/key"
	"github.com/vidplay-cli/vidplay/loader"
	"github.com/vidplay-cli/vidplay/style"
	"github.com/vidplay-cli/vidplay/util"
	"github.com/vidplay-cli/vidplay/where"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
}

// catalogCmd groups the commands that manage catalog files.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Create and validate catalog files",
}

func init() {
	catalogCmd.AddCommand(catalogInitCmd)
	catalogInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing catalog")
}

// catalogInitCmd writes a starter catalog to the default location.
var catalogInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter catalog to the config directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			force = lo.Must(cmd.Flags().GetBool("force"))
			path  = where.Catalog()
			fs    = filesystem.API()
		)

		exists, err := fs.Exists(path)
		handleErr(err)
		if exists && !force {
			handleErr(fmt.Errorf("catalog already exists at %s, use --force to overwrite", path))
		}

		var b strings.Builder
		tmpl := lo.Must(template.New("catalog").Parse(constant.CatalogTemplate))
		handleErr(tmpl.Execute(&b, struct{ App string }{constant.App}))
		handleErr(fs.WriteFile(path, []byte(b.String()), 0o644))

		cmd.Printf("%s wrote catalog to %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
	},
}

func init() {
	catalogCmd.AddCommand(catalogCheckCmd)
}

// catalogCheckCmd parses a catalog file and reports the first problem found.
var catalogCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a catalog file",
	Long:  "Validate a catalog file. The configured catalog is checked when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := viper.GetString(key.CatalogPath)
		if len(args) == 1 {
			path = args[0]
		}

		videos, err := loader.Load(path)
		handleErr(err)

		cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), util.Quantify(len(videos), "video", "videos"))
	},
}
