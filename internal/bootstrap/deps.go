package bootstrap

import (
	"github.com/dongdio/OpenBlog/internal/emoji"
	"github.com/dongdio/OpenBlog/internal/model"
)

// ThemeRegistry lists the installed themes. A nil slice means there is
// nothing to publish.
type ThemeRegistry interface {
	ListThemes() ([]model.Theme, error)
}

// OptionStore is the typed read side of the persisted options. GetBoolE
// reports a missing option as false and any read failure as an error.
type OptionStore interface {
	GetStr(key string) string
	GetBoolE(key string) (bool, error)
}

type UserDirectory interface {
	CountUsers() (int64, error)
	CreateUser(user *model.User, rawPassword string) error
}

// SharedVariables is the template engine's variable space.
type SharedVariables interface {
	SetSharedVariable(name string, value any) error
}

// ThemeProvisioner installs the bundled themes into the user theme path.
type ThemeProvisioner interface {
	Provision() ([]string, error)
}

// EmojiSource loads the bundled shortcode map.
type EmojiSource func() (*emoji.Map, error)

// Publisher receives the snapshots built at startup.
type Publisher interface {
	SetThemes(themes []model.Theme)
	SetEmoji(m *emoji.Map)
}

// Deps groups the collaborators of an Initializer.
type Deps struct {
	Themes      ThemeRegistry
	Options     OptionStore
	Users       UserDirectory
	Variables   SharedVariables
	Provisioner ThemeProvisioner
	Emoji       EmojiSource
	Site        Publisher
}

// Env carries the process settings read by the pipeline.
type Env struct {
	Port          int
	ProductionEnv bool
	DocDisabled   bool
	// HostIP detects the address used when no blog url is configured.
	HostIP func() string
}
