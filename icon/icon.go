// Package icon renders the symbols used across marquee in the configured
// variant: emoji, nerd-font glyphs, plain text or unicode squares.
package icon

import (
	"github.com/marquee-cli/marquee/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns every supported variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Watch
	Download
	Lock
	Link
	Telegram
	Rating
	Views
	Season
	Mark
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

func (d iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]iconDef{
	Fail:     {emoji: "💀", nerd: "", plain: "X", squares: "🟥"},
	Success:  {emoji: "🎉", nerd: "", plain: "OK", squares: "🟩"},
	Progress: {emoji: "⏳", nerd: "", plain: "...", squares: "🟨"},
	Watch:    {emoji: "▶️", nerd: "", plain: ">", squares: "🟦"},
	Download: {emoji: "📥", nerd: "", plain: "v", squares: "🟪"},
	Lock:     {emoji: "🔒", nerd: "", plain: "#", squares: "⬛"},
	Link:     {emoji: "🔗", nerd: "", plain: "~", squares: "🟫"},
	Telegram: {emoji: "✈️", nerd: "", plain: "@", squares: "🟦"},
	Rating:   {emoji: "⭐", nerd: "", plain: "*", squares: "🟨"},
	Views:    {emoji: "👁", nerd: "", plain: "o", squares: "⬜"},
	Season:   {emoji: "📺", nerd: "", plain: "S", squares: "🟧"},
	Mark:     {emoji: "✅", nerd: "", plain: "*", squares: "🟩"},
}

// Get returns the icon in the configured variant, empty for unknown icons
// or variants.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.get()
}
