package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Given an empty in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()

		Convey("Setup succeeds without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Every registered key has a value", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
		})

		Convey("Telegram defaults are in place", func() {
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.TelegramHost), ShouldEqual, "t.me")
			So(viper.GetString(key.CatalogProvider), ShouldEqual, "local")
		})
	})

	Convey("Given a .env file in the config directory", t, func() {
		filesystem.SetMemMapFs()
		defer viper.Reset()

		const env = "MARQUEE_TELEGRAM_BOT"
		So(os.Unsetenv(env), ShouldBeNil)
		defer os.Unsetenv(env)

		dotenv := filepath.Join(where.Config(), ".env")
		So(filesystem.API().WriteFile(dotenv, []byte(env+"=from_dotenv\n"), 0o644), ShouldBeNil)

		Convey("Its variables are picked up", func() {
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.TelegramBot), ShouldEqual, "from_dotenv")
		})

		Convey("It does not override the environment", func() {
			So(os.Setenv(env, "from_env"), ShouldBeNil)
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.TelegramBot), ShouldEqual, "from_env")
		})
	})

	Convey("EnvKeyReplacer converts dots to underscores", t, func() {
		So(EnvKeyReplacer.Replace("telegram.prefer_client"), ShouldEqual, "telegram_prefer_client")
	})
}

func TestField(t *testing.T) {
	Convey("Given the telegram bot field", t, func() {
		field := Default[key.TelegramBot]

		Convey("Its environment variable is prefixed", func() {
			So(field.Env(), ShouldEqual, "MARQUEE_TELEGRAM_BOT")
		})

		Convey("It marshals with its type and default", func() {
			var out map[string]any
			So(json.Unmarshal([]byte(string(mustMarshal(&field))), &out), ShouldBeNil)
			So(out["type"], ShouldEqual, "string")
			So(out["default"], ShouldEqual, "marquee_bot")
		})

		Convey("It renders a pretty description", func() {
			So(field.Pretty(), ShouldContainSubstring, key.TelegramBot)
		})
	})
}

func mustMarshal(f *Field) []byte {
	b, err := json.Marshal(f)
	if err != nil {
		panic(err)
	}
	return b
}
