package where

import (
	"path/filepath"
	"testing"

	"github.com/marquee-cli/marquee/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Directories are created on access", t, func() {
		for _, dir := range []func() string{Config, Cache, Logs, Catalogs} {
			path := dir()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		}
	})

	Convey("Catalog files live in the catalogs directory", t, func() {
		So(filepath.Dir(SyncedCatalog()), ShouldEqual, Catalogs())
		So(filepath.Dir(Database()), ShouldEqual, Catalogs())
	})

	Convey("The config directory can be overridden", t, func() {
		t.Setenv(EnvConfigPath, "/tmp/marquee-test-config")
		So(Config(), ShouldEqual, "/tmp/marquee-test-config")
	})
}
