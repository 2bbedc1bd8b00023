// Package render turns videos, playlists, playback events and errors into the
// lines shown to the user.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/spf13/viper"
	"github.com/vidplay-cli/vidplay/color"
	"github.com/vidplay-cli/vidplay/icon"
	"github.com/vidplay-cli/vidplay/key"
	"github.com/vidplay-cli/vidplay/playback"
	"github.com/vidplay-cli/vidplay/playlist"
	"github.com/vidplay-cli/vidplay/style"
	"github.com/vidplay-cli/vidplay/util"
	"github.com/vidplay-cli/vidplay/video"
)

func paint(c lipgloss.Color, s string) string {
	if !viper.GetBool(key.CliColored) {
		return s
	}
	return style.Fg(c)(s)
}

func decorate(i icon.Icon, s string) string {
	if !viper.GetBool(key.RenderIcons) {
		return s
	}
	return icon.Get(i) + " " + s
}

func maxWidth() int {
	w := viper.GetInt(key.RenderMaxWidth)
	if w >= 0 {
		return w
	}

	tw, _, err := util.TerminalSize()
	if err != nil {
		return 0
	}
	return tw
}

func fit(s string) string {
	w := maxWidth()
	if w <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(w), "…")
}

// Success renders a completed operation.
func Success(s string) string {
	return paint(color.Green, decorate(icon.Success, s))
}

// Failure renders a rejected operation.
func Failure(s string) string {
	return paint(color.Red, decorate(icon.Fail, s))
}

// Video renders the listing line of a video, noting its flag.
func Video(v *video.Video) string {
	line := v.String()
	if v.Flagged() {
		line += paint(color.Yellow, fmt.Sprintf(" - FLAGGED (reason: %s)", v.FlagReason()))
	}
	return fit(line)
}

// Count renders the catalog size.
func Count(n int) string {
	return util.Quantify(n, "video", "videos") + " in the library"
}

// Videos renders the whole catalog listing.
func Videos(videos []*video.Video) string {
	var b strings.Builder
	b.WriteString("Here's a list of all available videos:")
	for _, v := range videos {
		b.WriteString("\n")
		b.WriteString(Video(v))
	}
	return b.String()
}

// Event renders a playback notification.
func Event(e playback.Event) string {
	title := e.Video.Title()
	switch e.Kind {
	case playback.EventPlaying:
		return decorate(icon.Play, "Playing video: "+title)
	case playback.EventStopped:
		return decorate(icon.Stop, "Stopping video: "+title)
	case playback.EventPaused:
		return decorate(icon.Pause, "Pausing video: "+title)
	case playback.EventAlreadyPaused:
		return decorate(icon.Pause, "Video already paused: "+title)
	case playback.EventResumed:
		return decorate(icon.Play, "Continuing video: "+title)
	default:
		return e.Kind.String() + ": " + title
	}
}

// NowPlaying renders the cursor. A nil video means nothing is playing.
func NowPlaying(v *video.Video, paused bool) string {
	if v == nil {
		return "No video is currently playing"
	}

	line := "Currently playing: " + v.String()
	if paused {
		line += " - " + paint(color.Yellow, "PAUSED")
	}
	return fit(line)
}

// PlaylistCreated renders the result of creating a playlist.
func PlaylistCreated(name string) string {
	return Success("Successfully created new playlist: " + name)
}

// AddedToPlaylist renders the result of adding v to a playlist.
func AddedToPlaylist(name string, v *video.Video) string {
	return Success(fmt.Sprintf("Added video to %s: %s", name, v.Title()))
}

// RemovedFromPlaylist renders the result of removing v from a playlist.
func RemovedFromPlaylist(name string, v *video.Video) string {
	return Success(fmt.Sprintf("Removed video from %s: %s", name, v.Title()))
}

// PlaylistCleared renders the result of emptying a playlist.
func PlaylistCleared(name string) string {
	return Success("Successfully removed all videos from " + name)
}

// PlaylistDeleted renders the result of deleting a playlist.
func PlaylistDeleted(name string) string {
	return Success("Deleted playlist: " + name)
}

// Playlists renders the names of every playlist. The names are indented by two spaces.
func Playlists(playlists []*playlist.Playlist) string {
	if len(playlists) == 0 {
		return "No playlists exist yet"
	}

	var b strings.Builder
	b.WriteString("Showing all playlists:")
	for _, p := range playlists {
		b.WriteString("\n  ")
		b.WriteString(decorate(icon.Playlist, p.Name()))
	}
	return b.String()
}

// Playlist renders the content of a playlist under the name the user typed.
func Playlist(name string, p *playlist.Playlist) string {
	var b strings.Builder
	b.WriteString("Showing playlist: " + name)

	videos := p.Videos()
	if len(videos) == 0 {
		b.WriteString("\n  No videos here yet")
		return b.String()
	}

	for _, v := range videos {
		b.WriteString("\n")
		b.WriteString(Video(v))
	}
	return b.String()
}

// Results renders a numbered search result list followed by the selection prompt.
func Results(term string, results []*video.Video) string {
	var b strings.Builder
	b.WriteString(decorate(icon.Search, "Here are the results for "+term+":"))
	for i, v := range results {
		fmt.Fprintf(&b, "\n  %d) %s", i+1, fit(v.String()))
	}
	b.WriteString("\nWould you like to play any of the above? If yes, specify the number of the video.")
	b.WriteString("\nIf your answer is not a valid number, we will assume it's a no.")
	return b.String()
}

// NoResults renders an empty search.
func NoResults(term string) string {
	return "No search results for " + term
}

// Flagged renders the result of flagging v, reason included.
func Flagged(v *video.Video) string {
	return paint(color.Green, decorate(icon.Flag, fmt.Sprintf("Successfully flagged video: %s (reason: %s)", v.Title(), v.FlagReason())))
}

// Allowed renders the result of removing the flag of v.
func Allowed(v *video.Video) string {
	return Success("Successfully removed flag from video: " + v.Title())
}
