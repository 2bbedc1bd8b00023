package player

import (
	"github.com/vidplay-cli/vidplay/log"
	"github.com/vidplay-cli/vidplay/video"
)

// Playing describes the cursor for display.
type Playing struct {
	Video  *video.Video
	Paused bool
}

// Play starts the video with the given id, stopping the current one first.
func (p *Player) Play(id string) error {
	log.Debugf("play %q", id)
	return p.controller.Play(id)
}

// PlayRandom starts a random unflagged video.
func (p *Player) PlayRandom() error {
	log.Debug("play random")
	return p.controller.PlayRandom()
}

// Stop ends the current video.
func (p *Player) Stop() error {
	return p.controller.Stop()
}

// Pause pauses the current video. Pausing twice is reported, not refused.
func (p *Player) Pause() error {
	return p.controller.Pause()
}

// Resume continues a paused video.
func (p *Player) Resume() error {
	return p.controller.Resume()
}

// NowPlaying returns the cursor, or false when nothing is playing.
func (p *Player) NowPlaying() (Playing, bool) {
	v, ok := p.controller.Current().Get()
	if !ok {
		return Playing{}, false
	}
	return Playing{Video: v, Paused: p.controller.Paused()}, true
}
