package shell

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidplay-cli/vidplay/filesystem"
	"github.com/vidplay-cli/vidplay/key"
	"github.com/vidplay-cli/vidplay/loader"
	"github.com/vidplay-cli/vidplay/video"
)

func init() {
	filesystem.SetMemMapFs()
}

func setup() {
	viper.Set(key.ShellPrompt, "")
	viper.Set(key.ShellWelcome, false)
	viper.Set(key.CliColored, false)
	viper.Set(key.RenderIcons, false)
	viper.Set(key.RenderMaxWidth, 0)
	viper.Set(key.SearchRememberQueries, false)
}

func run(script string, opts ...Option) []string {
	var out bytes.Buffer
	catalog, err := loader.Catalog("")
	So(err, ShouldBeNil)

	s := New(catalog, strings.NewReader(script), &out, opts...)
	So(s.Run(context.Background()), ShouldBeNil)

	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

// stalledReader blocks every Read until released, like a terminal nobody types into.
type stalledReader struct {
	once    sync.Once
	reading chan struct{}
	release chan struct{}
}

func newStalledReader() *stalledReader {
	return &stalledReader{reading: make(chan struct{}), release: make(chan struct{})}
}

func (r *stalledReader) Read([]byte) (int, error) {
	r.once.Do(func() { close(r.reading) })
	<-r.release
	return 0, io.EOF
}

type answer string

func (a answer) Ask(string, []*video.Video) (string, error) {
	return string(a), nil
}

func TestPlayback(t *testing.T) {
	Convey("Given the built-in catalog", t, func() {
		setup()

		Convey("Playing over a playing video stops it first", func() {
			So(run("PLAY amazing_cats_video_id\nplay funny_dogs_video_id\nSTOP\nSTOP"), ShouldResemble, []string{
				"Playing video: Amazing Cats",
				"Stopping video: Amazing Cats",
				"Playing video: Funny Dogs",
				"Stopping video: Funny Dogs",
				"Cannot stop video: No video is currently playing",
			})
		})

		Convey("Pause and continue", func() {
			So(run("PLAY amazing_cats_video_id\nPAUSE\nPAUSE\nSHOW_PLAYING\nCONTINUE\nCONTINUE\nSHOW_PLAYING"), ShouldResemble, []string{
				"Playing video: Amazing Cats",
				"Pausing video: Amazing Cats",
				"Video already paused: Amazing Cats",
				"Currently playing: Amazing Cats (amazing_cats_video_id) [#cat #animal] - PAUSED",
				"Continuing video: Amazing Cats",
				"Cannot continue video: Video is not paused",
				"Currently playing: Amazing Cats (amazing_cats_video_id) [#cat #animal]",
			})
		})

		Convey("Unknown videos cannot be played", func() {
			So(run("PLAY does_not_exist\nSHOW_PLAYING"), ShouldResemble, []string{
				"Cannot play video: Video does not exist",
				"No video is currently playing",
			})
		})

		Convey("Random play uses the picker", func() {
			pickLast := WithPicker(func(vs []*video.Video) *video.Video { return vs[len(vs)-1] })
			So(run("PLAY_RANDOM", pickLast), ShouldResemble, []string{"Playing video: Video about nothing"})
		})

		Convey("With every video flagged nothing is available", func() {
			lines := run(strings.Join([]string{
				"FLAG_VIDEO funny_dogs_video_id",
				"FLAG_VIDEO amazing_cats_video_id",
				"FLAG_VIDEO another_cat_video_id",
				"FLAG_VIDEO life_at_google_video_id",
				"FLAG_VIDEO nothing_video_id",
				"PLAY_RANDOM",
			}, "\n"))
			So(lines[len(lines)-1], ShouldEqual, "No videos available")
		})
	})
}

func TestModeration(t *testing.T) {
	Convey("Given the built-in catalog", t, func() {
		setup()

		Convey("Flagging the playing video stops it", func() {
			So(run("PLAY amazing_cats_video_id\nFLAG_VIDEO amazing_cats_video_id dont_like_cats\nPLAY amazing_cats_video_id"), ShouldResemble, []string{
				"Playing video: Amazing Cats",
				"Stopping video: Amazing Cats",
				"Successfully flagged video: Amazing Cats (reason: dont_like_cats)",
				"Cannot play video: Video is currently flagged (reason: dont_like_cats)",
			})
		})

		Convey("Flagging without a reason and allowing again", func() {
			So(run("FLAG_VIDEO nothing_video_id\nFLAG_VIDEO nothing_video_id\nALLOW_VIDEO nothing_video_id\nALLOW_VIDEO nothing_video_id"), ShouldResemble, []string{
				"Successfully flagged video: Video about nothing (reason: Not supplied)",
				"Cannot flag video: Video is already flagged",
				"Successfully removed flag from video: Video about nothing",
				"Cannot remove flag from video: Video is not flagged",
			})
		})

		Convey("Flagged videos are marked in the listing", func() {
			lines := run("FLAG_VIDEO amazing_cats_video_id dont_like_cats\nSHOW_ALL_VIDEOS")
			So(lines, ShouldContain, "Amazing Cats (amazing_cats_video_id) [#cat #animal] - FLAGGED (reason: dont_like_cats)")
		})
	})
}

func TestPlaylists(t *testing.T) {
	Convey("Given the built-in catalog", t, func() {
		setup()

		Convey("A playlist session", func() {
			So(run(strings.Join([]string{
				"SHOW_ALL_PLAYLISTS",
				"CREATE_PLAYLIST my_PLAYlist",
				"CREATE_PLAYLIST MY_playlist",
				"ADD_TO_PLAYLIST my_playlist amazing_cats_video_id",
				"ADD_TO_PLAYLIST my_playlist amazing_cats_video_id",
				"ADD_TO_PLAYLIST another_playlist amazing_cats_video_id",
				"ADD_TO_PLAYLIST my_playlist does_not_exist",
				"SHOW_PLAYLIST my_playlist",
				"REMOVE_FROM_PLAYLIST my_playlist funny_dogs_video_id",
				"REMOVE_FROM_PLAYLIST my_playlist amazing_cats_video_id",
				"SHOW_PLAYLIST my_playlist",
				"SHOW_ALL_PLAYLISTS",
				"CLEAR_PLAYLIST my_playlist",
				"DELETE_PLAYLIST my_playlist",
				"DELETE_PLAYLIST my_playlist",
			}, "\n")), ShouldResemble, []string{
				"No playlists exist yet",
				"Successfully created new playlist: my_PLAYlist",
				"Cannot create playlist: A playlist with the same name already exists",
				"Added video to my_playlist: Amazing Cats",
				"Cannot add video to my_playlist: Video already added",
				"Cannot add video to another_playlist: Playlist does not exist",
				"Cannot add video to my_playlist: Video does not exist",
				"Showing playlist: my_playlist",
				"Amazing Cats (amazing_cats_video_id) [#cat #animal]",
				"Cannot remove video from my_playlist: Video is not in playlist",
				"Removed video from my_playlist: Amazing Cats",
				"Showing playlist: my_playlist",
				"  No videos here yet",
				"Showing all playlists:",
				"  my_PLAYlist",
				"Successfully removed all videos from my_playlist",
				"Deleted playlist: my_playlist",
				"Cannot delete playlist my_playlist: Playlist does not exist",
			})
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Given the built-in catalog", t, func() {
		setup()

		Convey("The answer is read from the next line", func() {
			So(run("SEARCH_VIDEOS cat\n2\nSHOW_PLAYING"), ShouldResemble, []string{
				"Here are the results for cat:",
				"  1) Amazing Cats (amazing_cats_video_id) [#cat #animal]",
				"  2) Another Cat Video (another_cat_video_id) [#cat #animal]",
				"Would you like to play any of the above? If yes, specify the number of the video.",
				"If your answer is not a valid number, we will assume it's a no.",
				"Playing video: Another Cat Video",
				"Currently playing: Another Cat Video (another_cat_video_id) [#cat #animal]",
			})
		})

		Convey("An invalid answer plays nothing", func() {
			lines := run("SEARCH_VIDEOS_WITH_TAG #cat\nNo\nSHOW_PLAYING")
			So(lines[len(lines)-1], ShouldEqual, "No video is currently playing")
		})

		Convey("Empty searches say so", func() {
			So(run("SEARCH_VIDEOS blah\nSEARCH_VIDEOS_WITH_TAG #blah"), ShouldResemble, []string{
				"No search results for blah",
				"No search results for #blah",
			})
		})

		Convey("A custom prompter answers instead of the input", func() {
			So(run("SEARCH_VIDEOS_WITH_TAG #dog", WithPrompter(answer("1"))), ShouldResemble, []string{
				"Playing video: Funny Dogs",
			})
		})
	})
}

func TestShell(t *testing.T) {
	Convey("Given the built-in catalog", t, func() {
		setup()

		Convey("Commands are case-insensitive and blank lines are ignored", func() {
			So(run("number_of_videos\n\n   \nNumber_Of_Videos"), ShouldResemble, []string{
				"5 videos in the library",
				"5 videos in the library",
			})
		})

		Convey("EXIT stops reading", func() {
			lines := run("EXIT\nNUMBER_OF_VIDEOS")
			So(lines, ShouldResemble, []string{"vidplay has now terminated its execution. Thank you and goodbye!"})
		})

		Convey("Wrong argument counts print the usage", func() {
			So(run("PLAY\nADD_TO_PLAYLIST one"), ShouldResemble, []string{
				"Usage: PLAY <video_id>",
				"Usage: ADD_TO_PLAYLIST <playlist_name> <video_id>",
			})
		})

		Convey("Unknown commands suggest the closest one", func() {
			So(run("PLAYY"), ShouldResemble, []string{
				"Please enter a valid command, type HELP for a list of available commands. Did you mean PLAY?",
			})
			So(run("XYZZYXYZZY"), ShouldResemble, []string{
				"Please enter a valid command, type HELP for a list of available commands.",
			})
		})

		Convey("HELP lists every command", func() {
			out := strings.Join(run("HELP"), "\n")
			for _, verb := range verbs() {
				So(out, ShouldContainSubstring, verb)
			}
		})

		Convey("The welcome banner and the prompt are configurable", func() {
			viper.Set(key.ShellWelcome, true)
			viper.Set(key.ShellPrompt, "> ")
			lines := run("")
			So(lines[0], ShouldEqual, "Hello and welcome to vidplay, what would you like to do?")
			So(lines[len(lines)-1], ShouldEqual, "> ")
		})

		Convey("Every shell has its own session id", func() {
			catalog, _ := loader.Catalog("")
			a := New(catalog, strings.NewReader(""), &bytes.Buffer{})
			b := New(catalog, strings.NewReader(""), &bytes.Buffer{})
			So(a.Session(), ShouldNotBeBlank)
			So(a.Session(), ShouldNotEqual, b.Session())
		})

		Convey("A cancelled context stops the loop", func() {
			var out bytes.Buffer
			catalog, _ := loader.Catalog("")
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			err := New(catalog, strings.NewReader("NUMBER_OF_VIDEOS"), &out).Run(ctx)
			So(err, ShouldEqual, context.Canceled)
			So(out.String(), ShouldBeEmpty)
		})

		Convey("Cancelling while waiting for a line stops the loop", func() {
			catalog, _ := loader.Catalog("")
			in := newStalledReader()
			defer close(in.release)

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() {
				done <- New(catalog, in, &bytes.Buffer{}).Run(ctx)
			}()

			<-in.reading
			cancel()
			So(<-done, ShouldEqual, context.Canceled)
		})
	})
}
