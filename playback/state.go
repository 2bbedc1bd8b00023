// Package playback implements the single playback cursor and its state machine.
package playback

import "github.com/vidplay-cli/vidplay/video"

// State is the position of the cursor in the playback state machine.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// EventKind identifies a cursor notification.
type EventKind int

const (
	EventPlaying EventKind = iota + 1
	EventStopped
	EventPaused
	EventAlreadyPaused
	EventResumed
)

func (k EventKind) String() string {
	switch k {
	case EventPlaying:
		return "playing"
	case EventStopped:
		return "stopped"
	case EventPaused:
		return "paused"
	case EventAlreadyPaused:
		return "already-paused"
	case EventResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// Event is emitted for every cursor transition, and for a pause request on an
// already paused video.
type Event struct {
	Kind  EventKind
	Video *video.Video
}

// Listener receives events in the order the transitions happen.
type Listener func(Event)
