package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Builtin backends can be looked up", t, func() {
		for _, id := range []string{"local", "remote", "sqlite"} {
			p, ok := Get(id)
			So(ok, ShouldBeTrue)
			So(p.ID, ShouldEqual, id)
		}
	})

	Convey("Unknown backends are not found", t, func() {
		_, ok := Get("kek")
		So(ok, ShouldBeFalse)
	})

	Convey("The remote backend needs a base url", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.CatalogRemoteURL, "")
		p, _ := Get("remote")
		_, err := p.CreateSource()
		So(err, ShouldNotBeNil)
	})

	Convey("A configured local path wins over the default", t, func() {
		viper.Set(key.CatalogPath, "/my/catalog.json")
		defer viper.Set(key.CatalogPath, "")
		So(LocalPath(), ShouldEqual, "/my/catalog.json")
	})
}

func TestSync(t *testing.T) {
	Convey("Given a server publishing a catalog", t, func() {
		filesystem.SetMemMapFs()
		body := `[{"id": "m1", "title": "Paper Moon"}]`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))
		defer server.Close()

		Convey("The first sync writes the catalog", func() {
			updated, err := Sync(context.Background(), server.Client(), server.URL, "/synced.json")
			So(err, ShouldBeNil)
			So(updated, ShouldBeTrue)

			data, err := filesystem.API().ReadFile("/synced.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, body)
		})

		Convey("An unchanged catalog is left alone", func() {
			_, err := Sync(context.Background(), server.Client(), server.URL, "/synced.json")
			So(err, ShouldBeNil)

			updated, err := Sync(context.Background(), server.Client(), server.URL, "/synced.json")
			So(err, ShouldBeNil)
			So(updated, ShouldBeFalse)
		})

		Convey("An invalid catalog is refused", func() {
			body = `{"id": `
			updated, err := Sync(context.Background(), server.Client(), server.URL, "/synced.json")
			So(err, ShouldNotBeNil)
			So(updated, ShouldBeFalse)
		})
	})
}
