// Package public embeds the resources shipped with the binary.
package public

import "embed"

// Themes contains the default themes installed on first start.
//
//go:embed all:themes
var Themes embed.FS

// Static contains read-only resources such as the emoji map.
//
//go:embed static
var Static embed.FS

const (
	// ThemesRoot is the directory of Themes holding one folder per theme.
	ThemesRoot = "themes"

	// EmojiMapPath locates the shortcode map inside Static.
	EmojiMapPath = "static/owo/OwO.path.json"
)
