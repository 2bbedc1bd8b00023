package shell

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/vidplay-cli/vidplay/log"
	"github.com/vidplay-cli/vidplay/query"
	"github.com/vidplay-cli/vidplay/render"
	"github.com/vidplay-cli/vidplay/util"
	"github.com/vidplay-cli/vidplay/video"
	"golang.org/x/exp/slices"
)

const exitVerb = "EXIT"

type command struct {
	usage string
	help  string
	// max < 0 means any number of arguments
	min, max int
	run      func(s *Shell, args []string)
}

var commands map[string]command

func verbs() []string {
	all := append(lo.Keys(commands), exitVerb)
	slices.Sort(all)
	return all
}

func init() {
	commands = map[string]command{
		"NUMBER_OF_VIDEOS": {
			usage: "NUMBER_OF_VIDEOS",
			help:  "Shows how many videos are in the library.",
			run: func(s *Shell, _ []string) {
				s.println(render.Count(s.player.CountVideos()))
			},
		},
		"SHOW_ALL_VIDEOS": {
			usage: "SHOW_ALL_VIDEOS",
			help:  "Lists all videos from the library.",
			run: func(s *Shell, _ []string) {
				s.println(render.Videos(s.player.Videos()))
			},
		},
		"PLAY": {
			usage: "PLAY <video_id>",
			help:  "Plays specified video.",
			min:   1, max: 1,
			run: func(s *Shell, args []string) {
				if err := s.player.Play(args[0]); err != nil {
					s.fail(render.ActionPlay, err)
				}
			},
		},
		"PLAY_RANDOM": {
			usage: "PLAY_RANDOM",
			help:  "Plays a random video from the library.",
			run: func(s *Shell, _ []string) {
				if err := s.player.PlayRandom(); err != nil {
					s.fail(render.ActionPlay, err)
				}
			},
		},
		"STOP": {
			usage: "STOP",
			help:  "Stop the current video.",
			run: func(s *Shell, _ []string) {
				if err := s.player.Stop(); err != nil {
					s.fail(render.ActionStop, err)
				}
			},
		},
		"PAUSE": {
			usage: "PAUSE",
			help:  "Pause the current video.",
			run: func(s *Shell, _ []string) {
				if err := s.player.Pause(); err != nil {
					s.fail(render.ActionPause, err)
				}
			},
		},
		"CONTINUE": {
			usage: "CONTINUE",
			help:  "Resume the current paused video.",
			run: func(s *Shell, _ []string) {
				if err := s.player.Resume(); err != nil {
					s.fail(render.ActionContinue, err)
				}
			},
		},
		"SHOW_PLAYING": {
			usage: "SHOW_PLAYING",
			help:  "Displays the title, video_id, video tags and paused status of the video that is currently playing (or paused).",
			run: func(s *Shell, _ []string) {
				now, ok := s.player.NowPlaying()
				if !ok {
					s.println(render.NowPlaying(nil, false))
					return
				}
				s.println(render.NowPlaying(now.Video, now.Paused))
			},
		},
		"CREATE_PLAYLIST": {
			usage: "CREATE_PLAYLIST <playlist_name>",
			help:  "Creates a new (empty) playlist with the provided name.",
			min:   1, max: 1,
			run: func(s *Shell, args []string) {
				if _, err := s.player.CreatePlaylist(args[0]); err != nil {
					s.fail(render.ActionCreate, err)
					return
				}
				s.println(render.PlaylistCreated(args[0]))
			},
		},
		"ADD_TO_PLAYLIST": {
			usage: "ADD_TO_PLAYLIST <playlist_name> <video_id>",
			help:  "Adds the requested video to the playlist.",
			min:   2, max: 2,
			run: func(s *Shell, args []string) {
				name := args[0]
				v, err := s.player.AddToPlaylist(name, args[1])
				if err != nil {
					s.fail(render.ActionAddTo+name, err)
					return
				}
				s.println(render.AddedToPlaylist(name, v))
			},
		},
		"REMOVE_FROM_PLAYLIST": {
			usage: "REMOVE_FROM_PLAYLIST <playlist_name> <video_id>",
			help:  "Removes the specified video from the specified playlist.",
			min:   2, max: 2,
			run: func(s *Shell, args []string) {
				name := args[0]
				v, err := s.player.RemoveFromPlaylist(name, args[1])
				if err != nil {
					s.fail(render.ActionRemoveFrom+name, err)
					return
				}
				s.println(render.RemovedFromPlaylist(name, v))
			},
		},
		"CLEAR_PLAYLIST": {
			usage: "CLEAR_PLAYLIST <playlist_name>",
			help:  "Removes all videos from the playlist.",
			min:   1, max: 1,
			run: func(s *Shell, args []string) {
				if err := s.player.ClearPlaylist(args[0]); err != nil {
					s.fail(render.ActionClearPlaylist+args[0], err)
					return
				}
				s.println(render.PlaylistCleared(args[0]))
			},
		},
		"DELETE_PLAYLIST": {
			usage: "DELETE_PLAYLIST <playlist_name>",
			help:  "Deletes the playlist.",
			min:   1, max: 1,
			run: func(s *Shell, args []string) {
				if err := s.player.DeletePlaylist(args[0]); err != nil {
					s.fail(render.ActionDelete+args[0], err)
					return
				}
				s.println(render.PlaylistDeleted(args[0]))
			},
		},
		"SHOW_ALL_PLAYLISTS": {
			usage: "SHOW_ALL_PLAYLISTS",
			help:  "Display all the available playlists.",
			run: func(s *Shell, _ []string) {
				s.println(render.Playlists(s.player.Playlists()))
			},
		},
		"SHOW_PLAYLIST": {
			usage: "SHOW_PLAYLIST <playlist_name>",
			help:  "Displays all the videos in the playlist.",
			min:   1, max: 1,
			run: func(s *Shell, args []string) {
				p, err := s.player.Playlist(args[0])
				if err != nil {
					s.fail(render.ActionShowPlaylist+args[0], err)
					return
				}
				s.println(render.Playlist(args[0], p))
			},
		},
		"SEARCH_VIDEOS": {
			usage: "SEARCH_VIDEOS <search_term>",
			help:  "Display all the videos whose titles contain the search_term.",
			min:   1, max: -1,
			run: func(s *Shell, args []string) {
				s.search(strings.Join(args, " "), s.player.SearchTitle)
			},
		},
		"SEARCH_VIDEOS_WITH_TAG": {
			usage: "SEARCH_VIDEOS_WITH_TAG <tag_name>",
			help:  "Display all videos whose tags contains the provided tag.",
			min:   1, max: 1,
			run: func(s *Shell, args []string) {
				s.search(args[0], s.player.SearchTag)
			},
		},
		"FLAG_VIDEO": {
			usage: "FLAG_VIDEO <video_id> [flag_reason]",
			help:  "Mark a video as flagged.",
			min:   1, max: -1,
			run: func(s *Shell, args []string) {
				v, err := s.player.Flag(args[0], strings.Join(args[1:], " "))
				if err != nil {
					s.fail(render.ActionFlag, err)
					return
				}
				s.println(render.Flagged(v))
			},
		},
		"ALLOW_VIDEO": {
			usage: "ALLOW_VIDEO <video_id>",
			help:  "Removes a flag from a video.",
			min:   1, max: 1,
			run: func(s *Shell, args []string) {
				v, err := s.player.Allow(args[0])
				if err != nil {
					s.fail(render.ActionAllow, err)
					return
				}
				s.println(render.Allowed(v))
			},
		},
		"CLEAR": {
			usage: "CLEAR",
			help:  "Clears the terminal.",
			run: func(_ *Shell, _ []string) {
				util.ClearScreen()
			},
		},
		"HELP": {
			usage: "HELP",
			help:  "Displays help.",
			run: func(s *Shell, _ []string) {
				s.println(help())
			},
		},
	}
}

func help() string {
	var b strings.Builder
	b.WriteString("Available commands:")
	for _, verb := range verbs() {
		if verb == exitVerb {
			fmt.Fprintf(&b, "\n    %s - Terminates the program execution.", exitVerb)
			continue
		}
		cmd := commands[verb]
		fmt.Fprintf(&b, "\n    %s - %s", cmd.usage, cmd.help)
	}
	return b.String()
}

func (s *Shell) search(term string, find func(string) ([]*video.Video, error)) {
	if err := query.Remember(term, 1); err != nil {
		log.Warn(err)
	}

	results, err := find(term)
	if err != nil {
		s.println(render.NoResults(term))
		return
	}

	answer, err := s.prompter.Ask(term, results)
	if err != nil {
		log.Error(err)
		return
	}

	if _, err := s.player.PlaySelection(results, answer); err != nil {
		s.fail(render.ActionPlay, err)
	}
}
