package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidplay-cli/vidplay/log"
	"github.com/vidplay-cli/vidplay/query"
	"github.com/vidplay-cli/vidplay/render"
	"github.com/vidplay-cli/vidplay/video"
)

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	switch b.state {
	case searchState:
		return b.updateSearch(msg)
	case resultsState:
		return b.updateVideos(&b.resultsC, msg)
	case playlistsState:
		return b.updatePlaylists(msg)
	case playlistState:
		return b.updatePlaylist(msg)
	case newPlaylistState:
		return b.updateNewPlaylist(msg)
	case addToPlaylistState:
		return b.updateAddToPlaylist(msg)
	default:
		return b.updateVideos(&b.videosC, msg)
	}
}

// selectedVideo returns the highlighted row of l, or nil.
func selectedVideo(l *list.Model) *videoItem {
	item, ok := l.SelectedItem().(*videoItem)
	if !ok {
		return nil
	}
	return item
}

func (b *bubble) updateVideos(l *list.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		*l, cmd = l.Update(msg)
		return b, cmd
	}

	selected := selectedVideo(l)

	switch {
	case key.Matches(keyMsg, b.keymap.quit):
		return b, tea.Quit
	case key.Matches(keyMsg, b.keymap.back) && b.state == resultsState:
		b.state = videosState
		return b, nil
	case key.Matches(keyMsg, b.keymap.play):
		if selected != nil {
			b.status = nil
			if err := b.player.Play(selected.video.ID()); err != nil {
				b.report(render.ErrorMessage(render.ActionPlay, err))
			}
		}
		return b, nil
	case key.Matches(keyMsg, b.keymap.togglePause):
		b.togglePause()
		return b, nil
	case key.Matches(keyMsg, b.keymap.stop):
		b.status = nil
		if err := b.player.Stop(); err != nil {
			b.report(render.ErrorMessage(render.ActionStop, err))
		}
		return b, nil
	case key.Matches(keyMsg, b.keymap.random) && b.state == videosState:
		b.status = nil
		if err := b.player.PlayRandom(); err != nil {
			b.report(render.ErrorMessage(render.ActionPlay, err))
		}
		return b, nil
	case key.Matches(keyMsg, b.keymap.flag) && b.state == videosState:
		if selected != nil {
			b.status = nil
			v, err := b.player.Flag(selected.video.ID(), "")
			if err != nil {
				b.report(render.ErrorMessage(render.ActionFlag, err))
			} else {
				b.status = append(b.status, render.Flagged(v))
			}
		}
		return b, nil
	case key.Matches(keyMsg, b.keymap.allow) && b.state == videosState:
		if selected != nil {
			v, err := b.player.Allow(selected.video.ID())
			if err != nil {
				b.report(render.ErrorMessage(render.ActionAllow, err))
			} else {
				b.report(render.Allowed(v))
			}
		}
		return b, nil
	case key.Matches(keyMsg, b.keymap.search) && b.state == videosState:
		b.state = searchState
		b.inputC.SetValue("")
		b.searchSuggestion = query.Suggest("")
		return b, b.inputC.Focus()
	case key.Matches(keyMsg, b.keymap.playlists) && b.state == videosState:
		b.state = playlistsState
		return b, b.playlistsC.SetItems(b.playlistItems())
	case key.Matches(keyMsg, b.keymap.newPlaylist) && b.state == videosState:
		return b, b.askPlaylistName()
	case key.Matches(keyMsg, b.keymap.addTo):
		if selected != nil {
			return b, b.chooseTarget(selected.video)
		}
		return b, nil
	}

	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return b, cmd
}

func (b *bubble) togglePause() {
	b.status = nil

	now, ok := b.player.NowPlaying()
	switch {
	case !ok:
		b.report(render.ErrorMessage(render.ActionPause, b.player.Pause()))
	case now.Paused:
		_ = b.player.Resume()
	default:
		_ = b.player.Pause()
	}
}

func (b *bubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, b.keymap.back):
			b.inputC.Blur()
			b.state = videosState
			return b, nil
		case key.Matches(keyMsg, b.keymap.acceptSearchSuggestion):
			if s, ok := b.searchSuggestion.Get(); ok {
				b.inputC.SetValue(s)
				b.inputC.CursorEnd()
			}
			return b, nil
		case key.Matches(keyMsg, b.keymap.confirm):
			return b, b.runSearch(strings.TrimSpace(b.inputC.Value()))
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	b.searchSuggestion = query.Suggest(b.inputC.Value())
	return b, cmd
}

// runSearch matches tags when term starts with '#', titles otherwise.
func (b *bubble) runSearch(term string) tea.Cmd {
	if term == "" {
		return nil
	}

	if err := query.Remember(term, 1); err != nil {
		log.Warn(err)
	}

	find := b.player.SearchTitle
	if strings.HasPrefix(term, "#") {
		find = b.player.SearchTag
	}

	results, err := find(term)
	if err != nil {
		b.report(render.NoResults(term))
		return nil
	}

	b.inputC.Blur()
	b.state = resultsState
	b.resultsC.Title = "Results for " + term
	b.resultsC.ResetSelected()
	b.report()
	return b.resultsC.SetItems(b.videoItems(results))
}

func (b *bubble) updatePlaylists(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && b.playlistsC.FilterState() != list.Filtering {
		selected, _ := b.playlistsC.SelectedItem().(*playlistItem)

		switch {
		case key.Matches(keyMsg, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(keyMsg, b.keymap.back):
			b.state = videosState
			return b, nil
		case key.Matches(keyMsg, b.keymap.confirm):
			if selected != nil {
				b.selectedPlaylist = selected.playlist
				b.state = playlistState
				b.playlistC.Title = selected.playlist.Name()
				b.playlistC.ResetSelected()
				return b, b.playlistC.SetItems(b.videoItems(selected.playlist.Videos()))
			}
			return b, nil
		case key.Matches(keyMsg, b.keymap.newPlaylist):
			return b, b.askPlaylistName()
		case key.Matches(keyMsg, b.keymap.deletePlaylist):
			if selected != nil {
				name := selected.playlist.Name()
				if err := b.player.DeletePlaylist(name); err != nil {
					b.report(render.ErrorMessage(render.ActionDelete+name, err))
					return b, nil
				}
				b.report(render.PlaylistDeleted(name))
				return b, b.playlistsC.SetItems(b.playlistItems())
			}
			return b, nil
		case key.Matches(keyMsg, b.keymap.clear):
			if selected != nil {
				name := selected.playlist.Name()
				if err := b.player.ClearPlaylist(name); err != nil {
					b.report(render.ErrorMessage(render.ActionClearPlaylist+name, err))
				} else {
					b.report(render.PlaylistCleared(name))
				}
			}
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.playlistsC, cmd = b.playlistsC.Update(msg)
	return b, cmd
}

func (b *bubble) updatePlaylist(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && b.playlistC.FilterState() != list.Filtering {
		selected := selectedVideo(&b.playlistC)
		name := b.selectedPlaylist.Name()

		switch {
		case key.Matches(keyMsg, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(keyMsg, b.keymap.back):
			b.state = playlistsState
			return b, b.playlistsC.SetItems(b.playlistItems())
		case key.Matches(keyMsg, b.keymap.play):
			if selected != nil {
				b.status = nil
				if err := b.player.Play(selected.video.ID()); err != nil {
					b.report(render.ErrorMessage(render.ActionPlay, err))
				}
			}
			return b, nil
		case key.Matches(keyMsg, b.keymap.remove):
			if selected != nil {
				v, err := b.player.RemoveFromPlaylist(name, selected.video.ID())
				if err != nil {
					b.report(render.ErrorMessage(render.ActionRemoveFrom+name, err))
					return b, nil
				}
				b.report(render.RemovedFromPlaylist(name, v))
				return b, b.playlistC.SetItems(b.videoItems(b.selectedPlaylist.Videos()))
			}
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.playlistC, cmd = b.playlistC.Update(msg)
	return b, cmd
}

// askPlaylistName opens the name input. The previous state is restored once the playlist is created or on esc.
func (b *bubble) askPlaylistName() tea.Cmd {
	b.returnTo = b.state
	b.state = newPlaylistState
	b.nameC.SetValue("")
	return b.nameC.Focus()
}

func (b *bubble) updateNewPlaylist(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, b.keymap.back):
			b.nameC.Blur()
			b.state = b.returnTo
			return b, nil
		case key.Matches(keyMsg, b.keymap.confirm):
			name := strings.TrimSpace(b.nameC.Value())
			if name == "" {
				return b, nil
			}

			p, err := b.player.CreatePlaylist(name)
			if err != nil {
				b.report(render.ErrorMessage(render.ActionCreate, err))
				return b, nil
			}

			b.report(render.PlaylistCreated(p.Name()))
			b.nameC.Blur()
			b.state = b.returnTo
			return b, b.playlistsC.SetItems(b.playlistItems())
		}
	}

	var cmd tea.Cmd
	b.nameC, cmd = b.nameC.Update(msg)
	return b, cmd
}

// chooseTarget lists the playlists v can be added to.
func (b *bubble) chooseTarget(v *video.Video) tea.Cmd {
	items := b.playlistItems()
	if len(items) == 0 {
		b.report(render.Playlists(nil))
		return nil
	}

	b.pending = v
	b.returnTo = b.state
	b.state = addToPlaylistState
	b.targetsC.Title = "Add " + v.Title() + " to"
	b.targetsC.ResetSelected()
	return b.targetsC.SetItems(items)
}

func (b *bubble) updateAddToPlaylist(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && b.targetsC.FilterState() != list.Filtering {
		switch {
		case key.Matches(keyMsg, b.keymap.back):
			b.pending = nil
			b.state = b.returnTo
			return b, nil
		case key.Matches(keyMsg, b.keymap.confirm):
			target, _ := b.targetsC.SelectedItem().(*playlistItem)
			if target == nil {
				return b, nil
			}

			name := target.playlist.Name()
			if v, err := b.player.AddToPlaylist(name, b.pending.ID()); err != nil {
				b.report(render.ErrorMessage(render.ActionAddTo+name, err))
			} else {
				b.report(render.AddedToPlaylist(name, v))
			}

			b.pending = nil
			b.state = b.returnTo
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.targetsC, cmd = b.targetsC.Update(msg)
	return b, cmd
}
