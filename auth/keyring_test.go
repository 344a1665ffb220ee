package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func TestToken(t *testing.T) {
	Convey("Given a mock keyring", t, func() {
		keyring.MockInit()

		Convey("A missing token reads as empty", func() {
			token, err := GetToken()
			So(err, ShouldBeNil)
			So(token, ShouldBeEmpty)
		})

		Convey("A stored token can be read back and deleted", func() {
			So(SetToken("secret"), ShouldBeNil)

			token, err := GetToken()
			So(err, ShouldBeNil)
			So(token, ShouldEqual, "secret")

			So(DeleteToken(), ShouldBeNil)
			So(DeleteToken(), ShouldBeNil)
		})
	})
}
