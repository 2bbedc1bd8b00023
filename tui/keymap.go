package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/vidplay-cli/vidplay/color"
	"github.com/vidplay-cli/vidplay/style"
)

type keymap struct {
	quit, forceQuit,
	play, togglePause, stop, random,
	flag, allow,
	search, acceptSearchSuggestion, confirm,
	playlists, newPlaylist, addTo, remove, clear, deletePlaylist,
	back key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Yellow)("enter"), style.Fg(color.Yellow)("play")),
		),
		togglePause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/continue"),
		),
		stop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop"),
		),
		random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random"),
		),
		flag: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flag"),
		),
		allow: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "allow"),
		),
		search: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "search"),
		),
		acceptSearchSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept suggestion"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		playlists: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "playlists"),
		),
		newPlaylist: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new playlist"),
		),
		addTo: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "add to playlist"),
		),
		deletePlaylist: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
		clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

func (k *keymap) videosHelp() []key.Binding {
	return []key.Binding{k.play, k.togglePause, k.stop, k.random, k.flag, k.allow, k.search, k.addTo, k.playlists, k.newPlaylist}
}

func (k *keymap) resultsHelp() []key.Binding {
	return []key.Binding{k.play, k.togglePause, k.stop, k.addTo, k.back}
}

func (k *keymap) playlistsHelp() []key.Binding {
	return []key.Binding{k.confirm, k.newPlaylist, k.clear, k.deletePlaylist, k.back}
}

func (k *keymap) targetsHelp() []key.Binding {
	return []key.Binding{k.confirm, k.back}
}

func (k *keymap) playlistHelp() []key.Binding {
	return []key.Binding{k.play, k.remove, k.back}
}
