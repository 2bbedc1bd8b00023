// Package playlist implements named, ordered, duplicate-free collections of videos
// and the repository that owns them.
package playlist

import (
	"errors"

	"github.com/samber/lo"
	"github.com/vidplay-cli/vidplay/video"
)

var (
	ErrNotFound           = errors.New("playlist does not exist")
	ErrAlreadyExists      = errors.New("a playlist with the same name already exists")
	ErrVideoAlreadyAdded  = errors.New("video already added")
	ErrVideoNotInPlaylist = errors.New("video is not in playlist")
)

// Playlist is an ordered sequence of videos. A video appears at most once;
// membership is tracked by id.
type Playlist struct {
	name    string
	videos  []*video.Video
	members map[string]struct{}
}

func newPlaylist(name string) *Playlist {
	return &Playlist{
		name:    name,
		members: make(map[string]struct{}),
	}
}

// Name returns the name with the case it was created with.
func (p *Playlist) Name() string { return p.name }

// Add appends the video, refusing one that is already present.
func (p *Playlist) Add(v *video.Video) error {
	if p.Contains(v) {
		return ErrVideoAlreadyAdded
	}

	p.members[v.ID()] = struct{}{}
	p.videos = append(p.videos, v)
	return nil
}

// Remove drops the video from the sequence.
func (p *Playlist) Remove(v *video.Video) error {
	if !p.Contains(v) {
		return ErrVideoNotInPlaylist
	}

	delete(p.members, v.ID())
	p.videos = lo.Reject(p.videos, func(item *video.Video, _ int) bool {
		return item.ID() == v.ID()
	})
	return nil
}

// Clear empties the playlist; its name and repository entry are unaffected.
func (p *Playlist) Clear() {
	p.videos = nil
	p.members = make(map[string]struct{})
}

// Contains reports whether v is a member, matched by id.
func (p *Playlist) Contains(v *video.Video) bool {
	_, ok := p.members[v.ID()]
	return ok
}

// Len returns the number of videos in the playlist.
func (p *Playlist) Len() int {
	return len(p.videos)
}

// Videos returns a snapshot of the sequence in insertion order.
func (p *Playlist) Videos() []*video.Video {
	return append([]*video.Video(nil), p.videos...)
}

func (p *Playlist) String() string {
	return p.name
}
