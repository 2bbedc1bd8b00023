package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/vidplay-cli/vidplay/color"
	"github.com/vidplay-cli/vidplay/render"
	"github.com/vidplay-cli/vidplay/style"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *bubble) View() string {
	var body string

	switch b.state {
	case searchState:
		body = b.viewSearch()
	case resultsState:
		body = b.resultsC.View()
	case playlistsState:
		body = b.playlistsC.View()
	case playlistState:
		body = b.playlistC.View()
	case newPlaylistState:
		body = paddingStyle.Render(style.Title("New playlist") + "\n\n" + b.nameC.View())
	case addToPlaylistState:
		body = b.targetsC.View()
	default:
		body = b.videosC.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, b.viewStatus())
}

func (b *bubble) viewSearch() string {
	lines := []string{
		style.Title("Search"),
		"",
		b.inputC.View(),
	}

	if s, ok := b.searchSuggestion.Get(); ok && s != b.inputC.Value() {
		lines = append(lines, "", style.Faint("tab: "+s))
	}

	return paddingStyle.Render(strings.Join(lines, "\n"))
}

func (b *bubble) viewStatus() string {
	var now string
	if p, ok := b.player.NowPlaying(); ok {
		now = render.NowPlaying(p.Video, p.Paused)
	} else {
		now = render.NowPlaying(nil, false)
	}

	lines := []string{style.Fg(color.HiCyan)(now)}
	if len(b.status) > 0 {
		lines = append(lines, style.Faint(strings.Join(b.status, " · ")))
	}

	return wrap.String(strings.Join(lines, "\n"), b.width)
}
