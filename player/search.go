package player

import (
	"github.com/vidplay-cli/vidplay/search"
	"github.com/vidplay-cli/vidplay/video"
)

func results(found []*video.Video) ([]*video.Video, error) {
	if len(found) == 0 {
		return nil, search.ErrNoResults
	}
	return found, nil
}

// SearchTitle finds unflagged videos whose title contains term, ignoring case.
func (p *Player) SearchTitle(term string) ([]*video.Video, error) {
	return results(p.engine.ByTitle(term))
}

// SearchTag finds unflagged videos carrying tag.
func (p *Player) SearchTag(tag string) ([]*video.Video, error) {
	return results(p.engine.ByTag(tag))
}

// PlaySelection plays the entry raw points at. An invalid selection plays
// nothing and is not an error.
func (p *Player) PlaySelection(found []*video.Video, raw string) (bool, error) {
	v, ok := search.Select(found, raw).Get()
	if !ok {
		return false, nil
	}

	if err := p.controller.Play(v.ID()); err != nil {
		return false, err
	}
	return true, nil
}
