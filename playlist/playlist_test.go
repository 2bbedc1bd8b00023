package playlist

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidplay-cli/vidplay/video"
)

func TestPlaylist(t *testing.T) {
	Convey("Given an empty playlist", t, func() {
		p := newPlaylist("Fun")
		a := video.New("A", "a1", nil)
		b := video.New("B", "b1", nil)

		Convey("Adding the same video twice is rejected and leaves one entry", func() {
			So(p.Add(a), ShouldBeNil)
			So(p.Add(a), ShouldEqual, ErrVideoAlreadyAdded)
			So(p.Len(), ShouldEqual, 1)
		})

		Convey("Membership is by id", func() {
			So(p.Add(a), ShouldBeNil)
			So(p.Contains(video.New("Copy of A", "a1", nil)), ShouldBeTrue)
		})

		Convey("Videos keep insertion order", func() {
			So(p.Add(b), ShouldBeNil)
			So(p.Add(a), ShouldBeNil)
			So(p.Videos(), ShouldResemble, []*video.Video{b, a})
		})

		Convey("Videos is a snapshot", func() {
			So(p.Add(a), ShouldBeNil)
			snapshot := p.Videos()
			So(p.Add(b), ShouldBeNil)
			So(len(snapshot), ShouldEqual, 1)
		})

		Convey("Remove drops the video and fails when absent", func() {
			So(p.Add(a), ShouldBeNil)
			So(p.Add(b), ShouldBeNil)

			So(p.Remove(a), ShouldBeNil)
			So(p.Videos(), ShouldResemble, []*video.Video{b})
			So(p.Remove(a), ShouldEqual, ErrVideoNotInPlaylist)

			Convey("A removed video can be added again", func() {
				So(p.Add(a), ShouldBeNil)
				So(p.Videos(), ShouldResemble, []*video.Video{b, a})
			})
		})

		Convey("Clear empties the playlist but keeps its name", func() {
			So(p.Add(a), ShouldBeNil)
			p.Clear()
			So(p.Len(), ShouldEqual, 0)
			So(p.Contains(a), ShouldBeFalse)
			So(p.Name(), ShouldEqual, "Fun")
		})
	})
}
