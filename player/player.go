// Package player is the service that owns a catalog, its playlists and the playback cursor,
// and exposes every user-level operation on them. It returns data and typed errors; it never prints.
package player

import (
	"github.com/vidplay-cli/vidplay/playback"
	"github.com/vidplay-cli/vidplay/playlist"
	"github.com/vidplay-cli/vidplay/search"
	"github.com/vidplay-cli/vidplay/video"
)

// DefaultFlagReason is recorded when a video is flagged without a reason.
const DefaultFlagReason = "Not supplied"

// Player bundles the state of one independent session.
type Player struct {
	catalog    *video.Catalog
	playlists  *playlist.Repository
	controller *playback.Controller
	engine     *search.Engine
}

type options struct {
	listener playback.Listener
	picker   playback.Picker
}

// Option customizes a Player.
type Option func(*options)

// WithListener subscribes to playback events.
func WithListener(l playback.Listener) Option {
	return func(o *options) { o.listener = l }
}

// WithPicker replaces the random choice used by PlayRandom.
func WithPicker(p playback.Picker) Option {
	return func(o *options) { o.picker = p }
}

// New creates a stopped player with no playlists.
func New(catalog *video.Catalog, opts ...Option) *Player {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Player{
		catalog:    catalog,
		playlists:  playlist.NewRepository(),
		controller: playback.NewController(catalog, o.listener, o.picker),
		engine:     search.NewEngine(catalog),
	}
}

// CountVideos returns the catalog size.
func (p *Player) CountVideos() int {
	return p.catalog.Len()
}

// Videos lists the whole catalog, flagged videos included.
func (p *Player) Videos() []*video.Video {
	return p.catalog.All()
}

// Video looks up a single catalog entry.
func (p *Player) Video(id string) (*video.Video, error) {
	return p.catalog.Get(id)
}

// State reports the playback state.
func (p *Player) State() playback.State {
	return p.controller.State()
}
