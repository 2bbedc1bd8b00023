// Package video defines the catalog entries and the read-mostly catalog that owns them.
package video

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Video is a single catalog entry. Identity fields are fixed at construction;
// only the moderation flag changes afterwards.
type Video struct {
	title string
	id    string
	tags  []string

	flagged    bool
	flagReason string
}

// New creates a video. Tags are copied so later changes to the caller's slice are not observed.
func New(title, id string, tags []string) *Video {
	return &Video{
		title: title,
		id:    id,
		tags:  append([]string(nil), tags...),
	}
}

// Title is the display name.
func (v *Video) Title() string { return v.title }

// ID is the unique catalog key.
func (v *Video) ID() string { return v.id }

// Tags returns a copy of the video tags in their original order.
func (v *Video) Tags() []string {
	return append([]string(nil), v.tags...)
}

// HasTag reports whether the tag is present verbatim.
func (v *Video) HasTag(tag string) bool {
	return lo.Contains(v.tags, tag)
}

// Flagged reports whether the video is hidden from playback and search.
func (v *Video) Flagged() bool { return v.flagged }

// FlagReason is empty unless the video is flagged.
func (v *Video) FlagReason() string { return v.flagReason }

// Flag marks the video. Calling it twice overwrites the reason; callers check Flagged first.
func (v *Video) Flag(reason string) {
	v.flagged = true
	v.flagReason = reason
}

// Unflag clears the moderation mark.
func (v *Video) Unflag() {
	v.flagged = false
	v.flagReason = ""
}

// String returns the "title (id) [tags]" form used by listings.
func (v *Video) String() string {
	return fmt.Sprintf("%s (%s) [%s]", v.title, v.id, strings.Join(v.tags, " "))
}

// Entry is the serialized form of a video.
type Entry struct {
	Title      string   `json:"title" jsonschema:"description=Display title"`
	ID         string   `json:"id" jsonschema:"description=Unique video identifier"`
	Tags       []string `json:"tags"`
	Flagged    bool     `json:"flagged"`
	FlagReason string   `json:"flag_reason,omitempty"`
}

// Entry returns a detached snapshot of the video.
func (v *Video) Entry() Entry {
	return Entry{
		Title:      v.title,
		ID:         v.id,
		Tags:       v.Tags(),
		Flagged:    v.flagged,
		FlagReason: v.flagReason,
	}
}

func (v *Video) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Entry())
}
