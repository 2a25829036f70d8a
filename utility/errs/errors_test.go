package errs

import (
	"testing"
)

func TestErrs(t *testing.T) {

	err1 := NewErr(ThemeNotFound, "please install a theme first")
	t.Logf("err1: %s", err1)
	if !Is(err1, ThemeNotFound) {
		t.Errorf("failed, expect %s is %s", err1, ThemeNotFound)
	}
	if !Is(Cause(err1), ThemeNotFound) {
		t.Errorf("failed, expect %s is %s", err1, ThemeNotFound)
	}
	err2 := WithMessage(err1, "failed get theme")
	t.Logf("err2: %s", err2)
	if !Is(err2, ThemeNotFound) {
		t.Errorf("failed, expect %s is %s", err2, ThemeNotFound)
	}
	if !Is(Cause(err2), ThemeNotFound) {
		t.Errorf("failed, expect %s is %s", err2, ThemeNotFound)
	}
	if !IsNotFoundError(err2) {
		t.Errorf("failed, expect %s to be a not found error", err2)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(EmptyPassword, "create user")
	if Cause(err) != EmptyPassword {
		t.Errorf("failed, expect cause of %s to be %s", err, EmptyPassword)
	}
	if IsNotFoundError(err) {
		t.Errorf("failed, %s is not a not found error", err)
	}
}
