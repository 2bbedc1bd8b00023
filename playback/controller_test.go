package playback

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidplay-cli/vidplay/video"
)

type recorder struct {
	events []Event
}

func (r *recorder) listen(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []EventKind {
	kinds := make([]EventKind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}

func (r *recorder) reset() {
	r.events = nil
}

// assertCursor checks the cursor invariant: paused implies something is current.
func assertCursor(c *Controller) {
	if c.Current().IsAbsent() {
		So(c.Paused(), ShouldBeFalse)
		So(c.State(), ShouldEqual, Stopped)
	}
}

func TestController(t *testing.T) {
	Convey("Given a catalog with a flagged video", t, func() {
		a := video.New("A", "a1", []string{"x"})
		b := video.New("B", "b1", []string{"x"})
		c := video.New("C", "c1", nil)
		b.Flag("spam")
		catalog := video.NewCatalog(a, b, c)

		rec := &recorder{}
		ctrl := NewController(catalog, rec.listen, nil)

		Convey("It starts stopped", func() {
			So(ctrl.State(), ShouldEqual, Stopped)
			assertCursor(ctrl)
		})

		Convey("Play fails for unknown and flagged videos without changing state", func() {
			So(ctrl.Play("zz"), ShouldEqual, video.ErrNotFound)

			err := ctrl.Play("b1")
			var flagged *video.FlaggedError
			So(errors.As(err, &flagged), ShouldBeTrue)
			So(flagged.Reason, ShouldEqual, "spam")

			So(ctrl.State(), ShouldEqual, Stopped)
			So(rec.events, ShouldBeEmpty)
		})

		Convey("Play starts a video", func() {
			So(ctrl.Play("a1"), ShouldBeNil)
			So(ctrl.State(), ShouldEqual, Playing)
			So(ctrl.Current().MustGet(), ShouldEqual, a)
			So(rec.events, ShouldResemble, []Event{{Kind: EventPlaying, Video: a}})

			Convey("Playing another video stops the first one before starting", func() {
				rec.reset()
				So(ctrl.Play("c1"), ShouldBeNil)
				So(rec.events, ShouldResemble, []Event{
					{Kind: EventStopped, Video: a},
					{Kind: EventPlaying, Video: c},
				})
				So(ctrl.IsCurrent(c), ShouldBeTrue)
				So(ctrl.IsCurrent(a), ShouldBeFalse)
			})

			Convey("Playing over a paused video stops it and clears the pause", func() {
				So(ctrl.Pause(), ShouldBeNil)
				rec.reset()

				So(ctrl.Play("a1"), ShouldBeNil)
				So(rec.kinds(), ShouldResemble, []EventKind{EventStopped, EventPlaying})
				So(ctrl.State(), ShouldEqual, Playing)
				So(ctrl.Paused(), ShouldBeFalse)
			})

			Convey("Pause, pause again, then resume", func() {
				So(ctrl.Pause(), ShouldBeNil)
				So(ctrl.State(), ShouldEqual, Paused)

				rec.reset()
				So(ctrl.Pause(), ShouldBeNil)
				So(ctrl.State(), ShouldEqual, Paused)
				So(rec.kinds(), ShouldResemble, []EventKind{EventAlreadyPaused})

				So(ctrl.Resume(), ShouldBeNil)
				So(ctrl.State(), ShouldEqual, Playing)
			})

			Convey("Resume fails when not paused", func() {
				So(ctrl.Resume(), ShouldEqual, ErrNotPaused)
				So(ctrl.State(), ShouldEqual, Playing)
			})

			Convey("Stop clears the cursor", func() {
				So(ctrl.Pause(), ShouldBeNil)
				rec.reset()

				So(ctrl.Stop(), ShouldBeNil)
				So(rec.events, ShouldResemble, []Event{{Kind: EventStopped, Video: a}})
				assertCursor(ctrl)
				So(ctrl.Stop(), ShouldEqual, ErrNothingPlaying)
			})
		})

		Convey("Pause, resume and stop fail when nothing is playing", func() {
			So(ctrl.Pause(), ShouldEqual, ErrNothingPlaying)
			So(ctrl.Resume(), ShouldEqual, ErrNothingPlaying)
			So(ctrl.Stop(), ShouldEqual, ErrNothingPlaying)
			So(rec.events, ShouldBeEmpty)
			assertCursor(ctrl)
		})
	})
}

func TestPlayRandom(t *testing.T) {
	Convey("Given one playable and one flagged video sharing a tag", t, func() {
		a := video.New("A", "a1", []string{"x"})
		b := video.New("B", "b1", []string{"x"})
		b.Flag("spam")
		catalog := video.NewCatalog(a, b)

		Convey("The default picker only ever selects the playable video", func() {
			ctrl := NewController(catalog, nil, nil)
			for i := 0; i < 100; i++ {
				So(ctrl.PlayRandom(), ShouldBeNil)
				So(ctrl.Current().MustGet(), ShouldEqual, a)
			}
		})

		Convey("The picker only sees unflagged candidates", func() {
			var seen []*video.Video
			ctrl := NewController(catalog, nil, func(vs []*video.Video) *video.Video {
				seen = vs
				return vs[len(vs)-1]
			})

			So(ctrl.PlayRandom(), ShouldBeNil)
			So(seen, ShouldResemble, []*video.Video{a})
		})

		Convey("Random play over a playing video stops it first", func() {
			rec := &recorder{}
			ctrl := NewController(catalog, rec.listen, nil)
			So(ctrl.Play("a1"), ShouldBeNil)
			rec.reset()

			So(ctrl.PlayRandom(), ShouldBeNil)
			So(rec.kinds(), ShouldResemble, []EventKind{EventStopped, EventPlaying})
		})

		Convey("With everything flagged nothing is available and the cursor is unchanged", func() {
			rec := &recorder{}
			ctrl := NewController(catalog, rec.listen, nil)
			So(ctrl.Play("a1"), ShouldBeNil)
			So(ctrl.Pause(), ShouldBeNil)
			a.Flag("gone")
			rec.reset()

			So(ctrl.PlayRandom(), ShouldEqual, ErrNoVideosAvailable)
			So(ctrl.State(), ShouldEqual, Paused)
			So(ctrl.IsCurrent(a), ShouldBeTrue)
			So(rec.events, ShouldBeEmpty)
		})
	})
}

func TestStrings(t *testing.T) {
	Convey("States and events have names", t, func() {
		So(Stopped.String(), ShouldEqual, "stopped")
		So(Playing.String(), ShouldEqual, "playing")
		So(Paused.String(), ShouldEqual, "paused")
		So(State(42).String(), ShouldEqual, "unknown")
		So(EventAlreadyPaused.String(), ShouldEqual, "already-paused")
		So(EventKind(0).String(), ShouldEqual, "unknown")
	})
}
