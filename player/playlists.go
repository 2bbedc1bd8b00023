package player

import (
	"github.com/vidplay-cli/vidplay/log"
	"github.com/vidplay-cli/vidplay/playlist"
	"github.com/vidplay-cli/vidplay/video"
)

// CreatePlaylist registers a new empty playlist. Names are unique regardless of case.
func (p *Player) CreatePlaylist(name string) (*playlist.Playlist, error) {
	pl, err := p.playlists.Create(name)
	if err != nil {
		return nil, err
	}

	log.Infof("created playlist %q", name)
	return pl, nil
}

// AddToPlaylist appends a video. Checks run in order: playlist, video, flag, duplicate.
func (p *Player) AddToPlaylist(name, id string) (*video.Video, error) {
	pl, err := p.playlists.Find(name)
	if err != nil {
		return nil, err
	}

	v, err := p.catalog.Get(id)
	if err != nil {
		return nil, err
	}

	if v.Flagged() {
		return nil, &video.FlaggedError{Reason: v.FlagReason()}
	}

	if err := pl.Add(v); err != nil {
		return nil, err
	}

	return v, nil
}

// RemoveFromPlaylist drops a video. Checks run in order: playlist, video, membership.
func (p *Player) RemoveFromPlaylist(name, id string) (*video.Video, error) {
	pl, err := p.playlists.Find(name)
	if err != nil {
		return nil, err
	}

	v, err := p.catalog.Get(id)
	if err != nil {
		return nil, err
	}

	if err := pl.Remove(v); err != nil {
		return nil, err
	}

	return v, nil
}

// ClearPlaylist removes every video from the playlist.
func (p *Player) ClearPlaylist(name string) error {
	pl, err := p.playlists.Find(name)
	if err != nil {
		return err
	}

	pl.Clear()
	return nil
}

// DeletePlaylist removes the playlist itself.
func (p *Player) DeletePlaylist(name string) error {
	if err := p.playlists.Delete(name); err != nil {
		return err
	}

	log.Infof("deleted playlist %q", name)
	return nil
}

// Playlist finds a playlist by name, ignoring case.
func (p *Player) Playlist(name string) (*playlist.Playlist, error) {
	return p.playlists.Find(name)
}

// Playlists returns every playlist sorted by name.
func (p *Player) Playlists() []*playlist.Playlist {
	return p.playlists.All()
}
