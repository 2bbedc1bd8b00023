// Package icon renders status symbols in the variant selected by icons.variant.
package icon

import (
	"github.com/spf13/viper"
	"github.com/vidplay-cli/vidplay/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Play
	Pause
	Stop
	Flag
	Search
	Playlist
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

func (d iconDef) get(variant string) string {
	switch variant {
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
	Success:  {emoji: "🎉", nerd: "\uf00c", plain: "✓", squares: "🟩"},
	Fail:     {emoji: "💩", nerd: "\uf00d", plain: "✗", squares: "🟥"},
	Play:     {emoji: "▶️", nerd: "\uf04b", plain: ">", squares: "🟦"},
	Pause:    {emoji: "⏸️", nerd: "\uf04c", plain: "||", squares: "🟨"},
	Stop:     {emoji: "⏹️", nerd: "\uf04d", plain: "#", squares: "⬛"},
	Flag:     {emoji: "🚩", nerd: "\uf024", plain: "!", squares: "🟧"},
	Search:   {emoji: "🔍", nerd: "\uf002", plain: "?", squares: "🟪"},
	Playlist: {emoji: "📃", nerd: "\uf03a", plain: "=", squares: "🟫"},
}

// Get returns the symbol for i in the configured variant.
func Get(i Icon) string {
	return icons[i].get(viper.GetString(key.IconsVariant))
}
