package video

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestVideo(t *testing.T) {
	Convey("Given a video built from a caller's tag slice", t, func() {
		tags := []string{"#cat", "#animal"}
		v := New("Amazing Cats", "amazing_cats_video_id", tags)

		Convey("Later changes to the caller's slice are not observed", func() {
			tags[0] = "#dog"
			So(v.Tags(), ShouldResemble, []string{"#cat", "#animal"})
		})

		Convey("Changes to the returned tags are not observed", func() {
			v.Tags()[0] = "#dog"
			So(v.HasTag("#cat"), ShouldBeTrue)
			So(v.HasTag("#dog"), ShouldBeFalse)
		})

		Convey("Tags match verbatim", func() {
			So(v.HasTag("#CAT"), ShouldBeFalse)
			So(New("Untagged", "untagged_id", nil).HasTag(""), ShouldBeFalse)
		})

		Convey("It starts unflagged with an empty reason", func() {
			So(v.Flagged(), ShouldBeFalse)
			So(v.FlagReason(), ShouldBeEmpty)
		})

		Convey("Flagging sets a reason and unflagging clears it", func() {
			v.Flag("dont_like_cats")
			So(v.Flagged(), ShouldBeTrue)
			So(v.FlagReason(), ShouldEqual, "dont_like_cats")

			v.Flag("again")
			So(v.FlagReason(), ShouldEqual, "again")

			v.Unflag()
			So(v.Flagged(), ShouldBeFalse)
			So(v.FlagReason(), ShouldBeEmpty)
		})

		Convey("String lists title, id and tags", func() {
			So(v.String(), ShouldEqual, "Amazing Cats (amazing_cats_video_id) [#cat #animal]")
			So(New("Nothing", "nothing_video_id", nil).String(), ShouldEqual, "Nothing (nothing_video_id) []")
		})

		Convey("It serializes its entry", func() {
			v.Flag("spam")
			data, err := json.Marshal(v)
			So(err, ShouldBeNil)

			var entry Entry
			So(json.Unmarshal(data, &entry), ShouldBeNil)
			So(entry, ShouldResemble, Entry{
				Title:      "Amazing Cats",
				ID:         "amazing_cats_video_id",
				Tags:       []string{"#cat", "#animal"},
				Flagged:    true,
				FlagReason: "spam",
			})
		})
	})
}

func TestFlaggedError(t *testing.T) {
	Convey("FlaggedError carries the reason", t, func() {
		err := &FlaggedError{Reason: "dont_like_cats"}
		So(err.Error(), ShouldEqual, "video is currently flagged (reason: dont_like_cats)")
	})
}
