package log

import (
	"bytes"
	"testing"

	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		defer viper.Reset()

		Convey("Disabled logs write nothing", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)

			Info("hidden")
			files, err := afero.ReadDir(filesystem.API(), where.Logs())
			So(err, ShouldBeNil)
			So(files, ShouldBeEmpty)
		})

		Convey("Enabled logs create a daily file", func() {
			viper.Set(key.LogsWrite, true)
			So(Setup(), ShouldBeNil)

			files, err := afero.ReadDir(filesystem.API(), where.Logs())
			So(err, ShouldBeNil)
			So(files, ShouldHaveLength, 1)
		})
	})
}

func TestLevel(t *testing.T) {
	Convey("Messages below the configured level are dropped", t, func() {
		defer viper.Reset()
		viper.Set(key.LogsLevel, "warn")

		var buf bytes.Buffer
		configure(&buf)

		Info("quiet")
		Warnf("loud %d", 1)

		So(buf.String(), ShouldNotContainSubstring, "quiet")
		So(buf.String(), ShouldContainSubstring, "loud 1")
	})
}
