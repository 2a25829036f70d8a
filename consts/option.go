package consts

// option keys
const (
	IsInstalled = "is_installed"
	BlogURL     = "blog_url"
	BlogTitle   = "blog_title"
	Theme       = "theme"
)

// DefaultTheme is rendered when no active theme has been published.
const DefaultTheme = "anatole"

// ThemeNameVariable is the shared template variable carrying the active theme.
const ThemeNameVariable = "themeName"
