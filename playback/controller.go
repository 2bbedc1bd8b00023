package playback

import (
	"errors"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vidplay-cli/vidplay/video"
)

var (
	ErrNothingPlaying    = errors.New("no video is currently playing")
	ErrNotPaused         = errors.New("video is not paused")
	ErrNoVideosAvailable = errors.New("no videos available")
)

// Picker chooses one video out of a non-empty slice.
type Picker func([]*video.Video) *video.Video

// Controller owns the playback cursor. It is not safe for concurrent use.
type Controller struct {
	catalog  *video.Catalog
	listener Listener
	pick     Picker

	current mo.Option[*video.Video]
	paused  bool
}

// NewController returns a stopped controller. A nil picker selects uniformly at random.
func NewController(catalog *video.Catalog, listener Listener, pick Picker) *Controller {
	if pick == nil {
		pick = func(videos []*video.Video) *video.Video {
			return lo.Sample(videos)
		}
	}

	return &Controller{
		catalog:  catalog,
		listener: listener,
		pick:     pick,
		current:  mo.None[*video.Video](),
	}
}

func (c *Controller) emit(kind EventKind, v *video.Video) {
	if c.listener != nil {
		c.listener(Event{Kind: kind, Video: v})
	}
}

// State reports the current position in the state machine.
func (c *Controller) State() State {
	switch {
	case c.current.IsAbsent():
		return Stopped
	case c.paused:
		return Paused
	default:
		return Playing
	}
}

// Current returns the video under the cursor, if any.
func (c *Controller) Current() mo.Option[*video.Video] {
	return c.current
}

// Paused reports whether the current video is paused.
func (c *Controller) Paused() bool {
	return c.paused
}

// IsCurrent reports whether v is the video under the cursor.
func (c *Controller) IsCurrent(v *video.Video) bool {
	cur, ok := c.current.Get()
	return ok && cur.ID() == v.ID()
}

// Play starts the video with the given id, stopping whatever was under the cursor first.
func (c *Controller) Play(id string) error {
	v, err := c.catalog.Get(id)
	if err != nil {
		return err
	}

	if v.Flagged() {
		return &video.FlaggedError{Reason: v.FlagReason()}
	}

	c.start(v)
	return nil
}

// PlayRandom starts a random unflagged video.
func (c *Controller) PlayRandom() error {
	candidates := c.catalog.Unflagged()
	if len(candidates) == 0 {
		return ErrNoVideosAvailable
	}

	c.start(c.pick(candidates))
	return nil
}

func (c *Controller) start(v *video.Video) {
	if cur, ok := c.current.Get(); ok {
		c.emit(EventStopped, cur)
	}

	c.current = mo.Some(v)
	c.paused = false
	c.emit(EventPlaying, v)
}

// Stop clears the cursor.
func (c *Controller) Stop() error {
	cur, ok := c.current.Get()
	if !ok {
		return ErrNothingPlaying
	}

	c.current = mo.None[*video.Video]()
	c.paused = false
	c.emit(EventStopped, cur)
	return nil
}

// Pause suspends the current video. Pausing twice is reported through
// EventAlreadyPaused and is not an error.
func (c *Controller) Pause() error {
	cur, ok := c.current.Get()
	if !ok {
		return ErrNothingPlaying
	}

	if c.paused {
		c.emit(EventAlreadyPaused, cur)
		return nil
	}

	c.paused = true
	c.emit(EventPaused, cur)
	return nil
}

// Resume continues a paused video.
func (c *Controller) Resume() error {
	cur, ok := c.current.Get()
	if !ok {
		return ErrNothingPlaying
	}

	if !c.paused {
		return ErrNotPaused
	}

	c.paused = false
	c.emit(EventResumed, cur)
	return nil
}
