package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPassword(t *testing.T) {
	u := &User{Username: "test"}
	require.NoError(t, u.SetPassword("opentest"))
	assert.NotEqual(t, "opentest", u.PwdHash)
	assert.True(t, u.ValidatePassword("opentest"))
	assert.False(t, u.ValidatePassword("wrong"))
	assert.True(t, u.IsAdmin())
}
