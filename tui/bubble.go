package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vidplay-cli/vidplay/color"
	"github.com/vidplay-cli/vidplay/playback"
	"github.com/vidplay-cli/vidplay/player"
	"github.com/vidplay-cli/vidplay/playlist"
	"github.com/vidplay-cli/vidplay/render"
	"github.com/vidplay-cli/vidplay/style"
	"github.com/vidplay-cli/vidplay/video"
)

type bubble struct {
	state  state
	keymap *keymap
	player *player.Player

	videosC    list.Model
	resultsC   list.Model
	playlistsC list.Model
	playlistC  list.Model
	targetsC   list.Model
	inputC     textinput.Model
	nameC      textinput.Model

	selectedPlaylist *playlist.Playlist
	// pending waits for a target playlist while in addToPlaylistState
	pending  *video.Video
	returnTo state
	searchSuggestion mo.Option[string]

	// status is the outcome of the last action, events included
	status []string

	width, height int
}

func newList(title string, help func() []key.Binding) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.Styles.Title = style.New().Foreground(color.New("230")).Background(color.Purple).Padding(0, 1)
	l.AdditionalShortHelpKeys = help
	l.AdditionalFullHelpKeys = help
	l.DisableQuitKeybindings()
	return l
}

func newBubble(catalog *video.Catalog) *bubble {
	b := &bubble{
		state:  videosState,
		keymap: newKeymap(),
	}

	b.player = player.New(catalog, player.WithListener(b.onEvent))

	b.videosC = newList("Videos", b.keymap.videosHelp)
	b.resultsC = newList("Results", b.keymap.resultsHelp)
	b.playlistsC = newList("Playlists", b.keymap.playlistsHelp)
	b.playlistC = newList("Playlist", b.keymap.playlistHelp)
	b.targetsC = newList("Add to playlist", b.keymap.targetsHelp)

	b.inputC = textinput.New()
	b.inputC.Placeholder = "Search titles, or #tag"
	b.inputC.CharLimit = 80

	b.nameC = textinput.New()
	b.nameC.Placeholder = "Playlist name"
	b.nameC.CharLimit = 80

	b.videosC.SetItems(b.videoItems(b.player.Videos()))
	b.searchSuggestion = mo.None[string]()
	b.resize(80, 24)
	return b
}

func (b *bubble) Init() tea.Cmd {
	return nil
}

func (b *bubble) onEvent(e playback.Event) {
	b.status = append(b.status, render.Event(e))
}

func (b *bubble) report(lines ...string) {
	b.status = lines
}

func (b *bubble) videoItems(videos []*video.Video) []list.Item {
	return lo.Map(videos, func(v *video.Video, _ int) list.Item {
		return &videoItem{video: v, player: b.player}
	})
}

func (b *bubble) playlistItems() []list.Item {
	return lo.Map(b.player.Playlists(), func(p *playlist.Playlist, _ int) list.Item {
		return &playlistItem{playlist: p}
	})
}

func (b *bubble) resize(width, height int) {
	b.width, b.height = width, height

	// two lines are kept for the status
	listHeight := height - 2
	for _, l := range []*list.Model{&b.videosC, &b.resultsC, &b.playlistsC, &b.playlistC, &b.targetsC} {
		l.SetSize(width, listHeight)
	}
	b.inputC.Width = width - 4
	b.nameC.Width = width - 4
}
