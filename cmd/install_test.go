package cmd

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dongdio/OpenBlog/consts"
	"github.com/dongdio/OpenBlog/internal/conf"
	"github.com/dongdio/OpenBlog/internal/db"
	"github.com/dongdio/OpenBlog/internal/op"
	"github.com/dongdio/OpenBlog/internal/setting"
	"github.com/dongdio/OpenBlog/public"
	"github.com/dongdio/OpenBlog/utility/errs"
)

func init() {
	dB, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	conf.Conf = conf.DefaultConfig("data")
	db.Init(dB)
}

func TestInstall(t *testing.T) {
	form := installForm{
		Username: " owner ",
		Email:    "owner@example.com",
		Password: "secret",
		Title:    "My Blog",
		URL:      "https://blog.example.com",
	}

	// a theme directory that cannot be created leaves the blog uninstalled
	blocked := filepath.Join(t.TempDir(), "themes")
	require.NoError(t, os.WriteFile(blocked, []byte("not a dir"), 0o644))
	conf.Conf.ThemeDir = blocked
	_, err := install(form)
	assert.ErrorIs(t, err, errs.ThemeInitFailed)
	installed, err := setting.GetBoolE(consts.IsInstalled)
	require.NoError(t, err)
	assert.False(t, installed)
	count, err := op.CountUsers()
	require.NoError(t, err)
	assert.Zero(t, count)

	conf.Conf.ThemeDir = filepath.Join(t.TempDir(), "themes")
	admin, err := install(form)
	require.NoError(t, err)
	assert.Equal(t, "owner", admin.Username)
	assert.Equal(t, "owner", admin.Nickname)
	assert.True(t, admin.IsAdmin())

	installed, err = setting.GetBoolE(consts.IsInstalled)
	require.NoError(t, err)
	assert.True(t, installed)
	assert.Equal(t, "My Blog", setting.GetStr(consts.BlogTitle))
	assert.Equal(t, "https://blog.example.com", setting.GetStr(consts.BlogURL))

	// the bundled themes are in place before the server ever starts
	for _, name := range []string{"anatole", "simple"} {
		assert.DirExists(t, filepath.Join(conf.Conf.ThemeDir, name))
		want, err := fs.ReadFile(public.Themes, path.Join(public.ThemesRoot, name, "index.tmpl"))
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(conf.Conf.ThemeDir, name, "index.tmpl"))
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	stored, err := op.GetUserByName("owner")
	require.NoError(t, err)
	assert.True(t, stored.ValidatePassword("secret"))

	// a second install is refused and creates nothing
	_, err = install(installForm{Username: "intruder", Password: "x"})
	assert.ErrorIs(t, err, errs.AlreadyInstalled)

	// an existing administrator also refuses it, before any theme is copied
	require.NoError(t, op.SetOptionValue(consts.IsInstalled, "false"))
	conf.Conf.ThemeDir = filepath.Join(t.TempDir(), "themes")
	_, err = install(installForm{Username: "intruder", Password: "x"})
	assert.ErrorIs(t, err, errs.AlreadyInstalled)
	assert.NoDirExists(t, conf.Conf.ThemeDir)

	count, err = op.CountUsers()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
