package player

import (
	"github.com/vidplay-cli/vidplay/log"
	"github.com/vidplay-cli/vidplay/video"
)

// Flag hides a video from playback and search. When it is the video under the
// cursor, playback is stopped before the flag is set.
func (p *Player) Flag(id, reason string) (*video.Video, error) {
	if reason == "" {
		reason = DefaultFlagReason
	}

	v, err := p.catalog.Get(id)
	if err != nil {
		return nil, err
	}

	if v.Flagged() {
		return nil, video.ErrAlreadyFlagged
	}

	if p.controller.IsCurrent(v) {
		if err := p.controller.Stop(); err != nil {
			return nil, err
		}
	}

	v.Flag(reason)
	log.Infof("flagged %q: %s", id, reason)
	return v, nil
}

// Allow removes the flag from a video. A flagged video is never under the
// cursor, so playback is unaffected.
func (p *Player) Allow(id string) (*video.Video, error) {
	v, err := p.catalog.Get(id)
	if err != nil {
		return nil, err
	}

	if !v.Flagged() {
		return nil, video.ErrNotFlagged
	}

	v.Unflag()
	log.Infof("allowed %q", id)
	return v, nil
}
