// Package search finds unflagged catalog videos by title or tag.
package search

import (
	"errors"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vidplay-cli/vidplay/video"
)

// ErrNoResults is reported by callers that treat an empty result list as a failure.
var ErrNoResults = errors.New("no search results")

// Engine queries a catalog. Results always follow catalog order and never contain flagged videos.
type Engine struct {
	catalog *video.Catalog
}

// NewEngine creates a search engine over catalog.
func NewEngine(catalog *video.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

func (e *Engine) filter(match func(*video.Video) bool) []*video.Video {
	return lo.Filter(e.catalog.All(), func(v *video.Video, _ int) bool {
		return !v.Flagged() && match(v)
	})
}

// ByTitle matches term as a case-insensitive substring of the title.
func (e *Engine) ByTitle(term string) []*video.Video {
	needle := strings.ToUpper(term)
	return e.filter(func(v *video.Video) bool {
		return strings.Contains(strings.ToUpper(v.Title()), needle)
	})
}

// ByTag matches tag exactly against the stored tags.
func (e *Engine) ByTag(tag string) []*video.Video {
	return e.filter(func(v *video.Video) bool {
		return v.HasTag(tag)
	})
}

// Select interprets raw as a 1-based index into results. Anything that is not
// an integer in range means no selection.
func Select(results []*video.Video, raw string) mo.Option[*video.Video] {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 || n > len(results) {
		return mo.None[*video.Video]()
	}
	return mo.Some(results[n-1])
}
