package render

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidplay-cli/vidplay/icon"
	"github.com/vidplay-cli/vidplay/key"
	"github.com/vidplay-cli/vidplay/playback"
	"github.com/vidplay-cli/vidplay/playlist"
	"github.com/vidplay-cli/vidplay/search"
	"github.com/vidplay-cli/vidplay/video"
)

func plain() {
	viper.Set(key.CliColored, false)
	viper.Set(key.RenderIcons, false)
	viper.Set(key.RenderMaxWidth, 0)
}

func TestVideo(t *testing.T) {
	Convey("Given a flagged and an unflagged video", t, func() {
		plain()
		cats := video.New("Amazing Cats", "amazing_cats_video_id", []string{"#cat", "#animal"})
		nothing := video.New("Video about nothing", "nothing_video_id", nil)
		cats.Flag("dont_like_cats")

		Convey("Listing lines carry id, tags and flag", func() {
			So(Video(cats), ShouldEqual, "Amazing Cats (amazing_cats_video_id) [#cat #animal] - FLAGGED (reason: dont_like_cats)")
			So(Video(nothing), ShouldEqual, "Video about nothing (nothing_video_id) []")
		})

		Convey("The catalog listing has a header", func() {
			So(Videos([]*video.Video{nothing}), ShouldEqual,
				"Here's a list of all available videos:\nVideo about nothing (nothing_video_id) []")
			So(Count(5), ShouldEqual, "5 videos in the library")
			So(Count(1), ShouldEqual, "1 video in the library")
		})

		Convey("Lines are cut at render.max_width", func() {
			viper.Set(key.RenderMaxWidth, 10)
			line := Video(nothing)
			So(len([]rune(line)), ShouldBeLessThanOrEqualTo, 10)
			So(line, ShouldEndWith, "…")
		})

		Convey("Icons are prefixed when enabled", func() {
			viper.Set(key.RenderIcons, true)
			viper.Set(key.IconsVariant, "plain")
			So(Allowed(nothing), ShouldEqual, icon.Get(icon.Success)+" Successfully removed flag from video: Video about nothing")
		})
	})
}

func TestEvent(t *testing.T) {
	Convey("Playback events use the player wording", t, func() {
		plain()
		v := video.New("Funny Dogs", "funny_dogs_video_id", nil)

		So(Event(playback.Event{Kind: playback.EventPlaying, Video: v}), ShouldEqual, "Playing video: Funny Dogs")
		So(Event(playback.Event{Kind: playback.EventStopped, Video: v}), ShouldEqual, "Stopping video: Funny Dogs")
		So(Event(playback.Event{Kind: playback.EventPaused, Video: v}), ShouldEqual, "Pausing video: Funny Dogs")
		So(Event(playback.Event{Kind: playback.EventAlreadyPaused, Video: v}), ShouldEqual, "Video already paused: Funny Dogs")
		So(Event(playback.Event{Kind: playback.EventResumed, Video: v}), ShouldEqual, "Continuing video: Funny Dogs")

		So(NowPlaying(nil, false), ShouldEqual, "No video is currently playing")
		So(NowPlaying(v, false), ShouldEqual, "Currently playing: Funny Dogs (funny_dogs_video_id) []")
		So(NowPlaying(v, true), ShouldEqual, "Currently playing: Funny Dogs (funny_dogs_video_id) [] - PAUSED")
	})
}

func TestPlaylists(t *testing.T) {
	Convey("Given a playlist repository", t, func() {
		plain()
		repo := playlist.NewRepository()

		Convey("An empty repository says so", func() {
			So(Playlists(repo.All()), ShouldEqual, "No playlists exist yet")
		})

		Convey("Names are listed indented", func() {
			_, _ = repo.Create("my_playlist")
			_, _ = repo.Create("Another")
			So(Playlists(repo.All()), ShouldEqual, "Showing all playlists:\n  Another\n  my_playlist")
		})

		Convey("An empty playlist shows a placeholder", func() {
			p, _ := repo.Create("my_playlist")
			So(Playlist("MY_playlist", p), ShouldEqual, "Showing playlist: MY_playlist\n  No videos here yet")

			v := video.New("Funny Dogs", "funny_dogs_video_id", []string{"#dog"})
			So(p.Add(v), ShouldBeNil)
			So(Playlist("my_playlist", p), ShouldEqual, "Showing playlist: my_playlist\nFunny Dogs (funny_dogs_video_id) [#dog]")
		})
	})
}

func TestResults(t *testing.T) {
	Convey("Search results are numbered from one", t, func() {
		plain()
		a := video.New("Amazing Cats", "amazing_cats_video_id", []string{"#cat"})
		b := video.New("Another Cat Video", "another_cat_video_id", []string{"#cat"})

		So(Results("cat", []*video.Video{a, b}), ShouldEqual, `Here are the results for cat:
  1) Amazing Cats (amazing_cats_video_id) [#cat]
  2) Another Cat Video (another_cat_video_id) [#cat]
Would you like to play any of the above? If yes, specify the number of the video.
If your answer is not a valid number, we will assume it's a no.`)
		So(NoResults("blah"), ShouldEqual, "No search results for blah")
	})
}

func TestErrorMessage(t *testing.T) {
	Convey("Every error kind has its own reason", t, func() {
		plain()

		cases := []struct {
			action string
			err    error
			want   string
		}{
			{ActionPlay, video.ErrNotFound, "Cannot play video: Video does not exist"},
			{ActionPlay, &video.FlaggedError{Reason: "dont_like_cats"}, "Cannot play video: Video is currently flagged (reason: dont_like_cats)"},
			{ActionFlag, video.ErrAlreadyFlagged, "Cannot flag video: Video is already flagged"},
			{ActionAllow, video.ErrNotFlagged, "Cannot remove flag from video: Video is not flagged"},
			{ActionAddTo + "list", playlist.ErrNotFound, "Cannot add video to list: Playlist does not exist"},
			{ActionCreate, playlist.ErrAlreadyExists, "Cannot create playlist: A playlist with the same name already exists"},
			{ActionAddTo + "list", playlist.ErrVideoAlreadyAdded, "Cannot add video to list: Video already added"},
			{ActionRemoveFrom + "list", playlist.ErrVideoNotInPlaylist, "Cannot remove video from list: Video is not in playlist"},
			{ActionStop, playback.ErrNothingPlaying, "Cannot stop video: No video is currently playing"},
			{ActionContinue, playback.ErrNotPaused, "Cannot continue video: Video is not paused"},
			{ActionPlay, playback.ErrNoVideosAvailable, "No videos available"},
			{ActionPlay, search.ErrNoResults, "Cannot play video: No search results"},
			{ActionPlay, errors.New("disk on fire"), "Cannot play video: Disk on fire"},
		}

		for _, c := range cases {
			So(ErrorMessage(c.action, c.err), ShouldEqual, c.want)
		}

		Convey("Wrapped errors are recognised", func() {
			err := fmt.Errorf("lookup: %w", video.ErrNotFound)
			So(Reason(err), ShouldEqual, "Video does not exist")
		})
	})
}
