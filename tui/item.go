package tui

import (
	"fmt"
	"strings"

	"github.com/vidplay-cli/vidplay/color"
	"github.com/vidplay-cli/vidplay/icon"
	"github.com/vidplay-cli/vidplay/player"
	"github.com/vidplay-cli/vidplay/playlist"
	"github.com/vidplay-cli/vidplay/style"
	"github.com/vidplay-cli/vidplay/util"
	"github.com/vidplay-cli/vidplay/video"
)

// videoItem is a list row for a video. It looks at the player to mark the one under the cursor.
type videoItem struct {
	video  *video.Video
	player *player.Player
}

func (i *videoItem) Title() string {
	title := i.video.Title()

	now, ok := i.player.NowPlaying()
	if !ok || now.Video.ID() != i.video.ID() {
		return title
	}

	mark := icon.Get(icon.Play)
	if now.Paused {
		mark = icon.Get(icon.Pause)
	}
	return fmt.Sprintf("%s %s", title, style.Fg(color.Green)(mark))
}

func (i *videoItem) Description() string {
	desc := style.Faint(i.video.ID())
	if tags := i.video.Tags(); len(tags) > 0 {
		desc += " " + style.Fg(color.Gray)(strings.Join(tags, " "))
	}

	if i.video.Flagged() {
		desc += " " + style.Fg(color.Red)(icon.Get(icon.Flag)+" "+i.video.FlagReason())
	}
	return desc
}

func (i *videoItem) FilterValue() string {
	return i.video.Title()
}

type playlistItem struct {
	playlist *playlist.Playlist
}

func (i *playlistItem) Title() string {
	return i.playlist.Name()
}

func (i *playlistItem) Description() string {
	return util.Quantify(i.playlist.Len(), "video", "videos")
}

func (i *playlistItem) FilterValue() string {
	return i.playlist.Name()
}
