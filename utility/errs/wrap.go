package errs

import (
	"github.com/pkg/errors"
)

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func Cause(err error) error {
	return errors.Cause(err)
}

func WithStack(err error) error {
	return errors.WithStack(err)
}

func WithMessage(err error, message string) error {
	return errors.WithMessage(err, message)
}

func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}
