package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestInstalled(t *testing.T) {
	Convey("An empty application name is never installed", t, func() {
		So(Installed(""), ShouldBeFalse)
	})

	Convey("A made up application is not installed", t, func() {
		So(Installed("marquee-surely-missing-binary"), ShouldBeFalse)
	})
}
