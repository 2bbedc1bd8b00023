package render

import (
	"errors"

	"github.com/vidplay-cli/vidplay/playback"
	"github.com/vidplay-cli/vidplay/playlist"
	"github.com/vidplay-cli/vidplay/search"
	"github.com/vidplay-cli/vidplay/util"
	"github.com/vidplay-cli/vidplay/video"
)

// Actions named in failure messages.
const (
	ActionPlay          = "play video"
	ActionStop          = "stop video"
	ActionPause         = "pause video"
	ActionContinue      = "continue video"
	ActionCreate        = "create playlist"
	ActionFlag          = "flag video"
	ActionAllow         = "remove flag from video"
	ActionAddTo         = "add video to "
	ActionRemoveFrom    = "remove video from "
	ActionClearPlaylist = "clear playlist "
	ActionDelete        = "delete playlist "
	ActionShowPlaylist  = "show playlist "
)

// Reason describes err the way it is shown after "Cannot <action>: ".
func Reason(err error) string {
	var flagged *video.FlaggedError
	switch {
	case errors.As(err, &flagged):
		return "Video is currently flagged (reason: " + flagged.Reason + ")"
	case errors.Is(err, video.ErrNotFound):
		return "Video does not exist"
	case errors.Is(err, video.ErrAlreadyFlagged):
		return "Video is already flagged"
	case errors.Is(err, video.ErrNotFlagged):
		return "Video is not flagged"
	case errors.Is(err, playlist.ErrNotFound):
		return "Playlist does not exist"
	case errors.Is(err, playlist.ErrAlreadyExists):
		return "A playlist with the same name already exists"
	case errors.Is(err, playlist.ErrVideoAlreadyAdded):
		return "Video already added"
	case errors.Is(err, playlist.ErrVideoNotInPlaylist):
		return "Video is not in playlist"
	case errors.Is(err, playback.ErrNothingPlaying):
		return "No video is currently playing"
	case errors.Is(err, playback.ErrNotPaused):
		return "Video is not paused"
	case errors.Is(err, playback.ErrNoVideosAvailable):
		return "No videos available"
	case errors.Is(err, search.ErrNoResults):
		return "No search results"
	default:
		return util.Capitalize(err.Error())
	}
}

// ErrorMessage renders a failed action. An empty random pool is not phrased as
// a failure of an action.
func ErrorMessage(action string, err error) string {
	if errors.Is(err, playback.ErrNoVideosAvailable) {
		return Reason(err)
	}
	return Failure("Cannot " + action + ": " + Reason(err))
}
