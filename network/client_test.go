package network

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marquee-cli/marquee/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	Convey("Given a server echoing the user agent", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(r.UserAgent()))
		}))
		defer server.Close()

		Convey("The marquee user agent is set by default", func() {
			resp, err := Client.Get(server.URL)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			buf := make([]byte, 64)
			n, _ := resp.Body.Read(buf)
			So(string(buf[:n]), ShouldEqual, constant.UserAgent)
		})
	})
}
