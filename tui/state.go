package tui

type state int

const (
	videosState state = iota + 1
	searchState
	resultsState
	playlistsState
	playlistState
	newPlaylistState
	addToPlaylistState
)
