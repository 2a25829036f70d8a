package op_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dongdio/OpenBlog/internal/conf"
	"github.com/dongdio/OpenBlog/internal/db"
	"github.com/dongdio/OpenBlog/internal/model"
	"github.com/dongdio/OpenBlog/internal/op"
	"github.com/dongdio/OpenBlog/utility/errs"
)

// Initialize the testing environment with an in-memory SQLite database
func init() {
	dB, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	conf.Conf = conf.DefaultConfig("data")
	db.Init(dB)
}

func TestOptions(t *testing.T) {
	_, err := op.GetOptionByKey("missing_key")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.OptionNotFound))

	require.NoError(t, op.SaveOption(&model.Option{Key: "theme", Value: "simple", Type: model.TypeString}))
	item, err := op.GetOptionByKey("theme")
	require.NoError(t, err)
	assert.Equal(t, "simple", item.Value)

	// the cache must not serve a stale value after an update
	require.NoError(t, op.SetOptionValue("theme", "anatole"))
	item, err = op.GetOptionByKey("theme")
	require.NoError(t, err)
	assert.Equal(t, "anatole", item.Value)

	require.NoError(t, op.SetOptionValue("blog_url", "https://example.com"))
	assert.Equal(t, "https://example.com", op.GetOptionsMap()["blog_url"])

	require.NoError(t, op.DeleteOptionByKey("blog_url"))
	_, err = op.GetOptionByKey("blog_url")
	assert.True(t, errs.Is(err, errs.OptionNotFound))
}

func TestOptionChangingCallback(t *testing.T) {
	called := 0
	op.RegisterOptionChangingCallback(func() { called++ })
	require.NoError(t, op.SaveOptions([]model.Option{{Key: "blog_title", Value: "hello"}}))
	assert.Equal(t, 1, called)
}

func TestCreateUser(t *testing.T) {
	testCases := []struct {
		name     string
		user     model.User
		password string
		wantErr  error
	}{
		{name: "valid user", user: model.User{Username: "writer", Nickname: "w"}, password: "secret"},
		{name: "duplicate username", user: model.User{Username: "writer"}, password: "secret", wantErr: errs.UserExists},
		{name: "empty username", user: model.User{Username: "  "}, password: "secret", wantErr: errs.EmptyUsername},
		{name: "empty password", user: model.User{Username: "other"}, wantErr: errs.EmptyPassword},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := tc.user
			err := op.CreateUser(&u, tc.password)
			if tc.wantErr == nil {
				require.NoError(t, err)
				assert.NotZero(t, u.ID)
				return
			}
			assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
		})
	}

	count, err := op.CountUsers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	u, err := op.GetUserByName("writer")
	require.NoError(t, err)
	assert.True(t, u.ValidatePassword("secret"))

	users, err := op.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "writer", users[0].Username)

	_, err = op.GetUserByName("")
	assert.ErrorIs(t, err, errs.EmptyUsername)
}
