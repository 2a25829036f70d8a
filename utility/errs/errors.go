package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	AlreadyBootstrapped = errors.New("bootstrap has already run in this process")
	AlreadyInstalled    = errors.New("blog is already installed")
	ThemeInitFailed     = errors.New("init internal theme to user path error")
)

var (
	OptionNotFound = errors.New("option not found")
	ThemeNotFound  = errors.New("theme not found")
)

var (
	InvalidEmojiMap         = errors.New("invalid emoji map")
	InvalidTemplateVariable = errors.New("invalid template variable")
)

var (
	EmptyUsername = errors.New("username is empty")
	EmptyPassword = errors.New("password is empty")
	UserExists    = errors.New("user already exists")
	UserNotFound  = errors.New("user not found")
)

// NewErr wrap constant error with an extra message
// use errors.Is(err1, ThemeNotFound) to check if err belongs to any internal error
func NewErr(err error, format string, a ...any) error {
	return errors.Wrap(err, fmt.Sprintf(format, a...))
}

func IsNotFoundError(err error) bool {
	return errors.Is(errors.Cause(err), OptionNotFound) ||
		errors.Is(errors.Cause(err), ThemeNotFound) ||
		errors.Is(errors.Cause(err), UserNotFound)
}
