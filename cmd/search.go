package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidplay-cli/vidplay/log"
	"github.com/vidplay-cli/vidplay/playback"
	"github.com/vidplay-cli/vidplay/player"
	"github.com/vidplay-cli/vidplay/query"
	"github.com/vidplay-cli/vidplay/render"
	"github.com/vidplay-cli/vidplay/search"
	"github.com/vidplay-cli/vidplay/video"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolP("tag", "t", false, "Match the term against tags instead of titles")
}

// surveyPrompter asks for a search result with an arrow-key menu.
type surveyPrompter struct{}

func (surveyPrompter) Ask(term string, results []*video.Video) (string, error) {
	options := lo.Map(results, func(v *video.Video, i int) string {
		return fmt.Sprintf("%d) %s", i+1, v)
	})
	options = append(options, "No")

	var picked int
	err := survey.AskOne(&survey.Select{
		Message: "Would you like to play any of the above?",
		Options: options,
	}, &picked)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(picked + 1), nil
}

func askTerm() (string, error) {
	var term string
	err := survey.AskOne(&survey.Input{
		Message: "What are you looking for?",
		Suggest: query.SuggestMany,
	}, &term, survey.WithValidator(survey.Required))
	return term, err
}

// searchCmd searches the catalog and offers to play one of the results.
var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search the catalog and play a result",
	Args:  cobra.ArbitraryArgs,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		byTag := lo.Must(cmd.Flags().GetBool("tag"))

		term := strings.Join(args, " ")
		if term == "" {
			var err error
			term, err = askTerm()
			handleErr(err)
		}

		catalog, err := loadCatalog()
		handleErr(err)

		p := player.New(catalog, player.WithListener(func(e playback.Event) {
			cmd.Println(render.Event(e))
		}))

		if err := query.Remember(term, 1); err != nil {
			log.Warn(err)
		}

		find := p.SearchTitle
		if byTag {
			find = p.SearchTag
		}

		results, err := find(term)
		if errors.Is(err, search.ErrNoResults) {
			cmd.Println(render.NoResults(term))
			return
		}
		handleErr(err)

		answer, err := surveyPrompter{}.Ask(term, results)
		handleErr(err)

		if _, err := p.PlaySelection(results, answer); err != nil {
			cmd.Println(render.ErrorMessage(render.ActionPlay, err))
		}
	},
}
