package setting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dongdio/OpenBlog/internal/conf"
	"github.com/dongdio/OpenBlog/internal/db"
	"github.com/dongdio/OpenBlog/internal/op"
	"github.com/dongdio/OpenBlog/internal/setting"
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

func TestTypedAccessors(t *testing.T) {
	assert.Equal(t, "", setting.GetStr("nothing"))
	assert.Equal(t, "fallback", setting.GetStr("nothing", "fallback"))
	assert.Equal(t, 42, setting.GetInt("nothing", 42))
	assert.False(t, setting.GetBool("nothing"))
	assert.True(t, setting.GetBool("nothing", true))

	require.NoError(t, op.SetOptionValue("is_installed", "true"))
	require.NoError(t, op.SetOptionValue("page_size", "12"))
	require.NoError(t, op.SetOptionValue("broken_bool", "maybe"))

	assert.True(t, setting.GetBool("is_installed"))
	assert.Equal(t, 12, setting.GetInt("page_size", 10))
	assert.True(t, setting.GetBool("broken_bool", true))

	var store setting.Store
	installed, err := store.GetBoolE("is_installed")
	require.NoError(t, err)
	assert.True(t, installed)
	assert.Equal(t, "12", store.GetStr("page_size"))
}

func TestGetBoolE(t *testing.T) {
	b, err := setting.GetBoolE("never_saved")
	require.NoError(t, err)
	assert.False(t, b)

	require.NoError(t, op.SetOptionValue("empty_bool", ""))
	b, err = setting.GetBoolE("empty_bool")
	require.NoError(t, err)
	assert.False(t, b)

	require.NoError(t, op.SetOptionValue("odd_bool", "maybe"))
	_, err = setting.GetBoolE("odd_bool")
	assert.Error(t, err)
}

func TestGetBoolEReadFailure(t *testing.T) {
	require.NoError(t, op.SetOptionValue("is_installed", "true"))
	op.OptionCacheUpdate()

	sqlDB, err := db.GetDB().DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	t.Cleanup(func() {
		dB, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
		require.NoError(t, err)
		db.Init(dB)
	})

	installed, err := setting.GetBoolE("is_installed")
	require.Error(t, err)
	assert.False(t, errs.Is(err, errs.OptionNotFound))
	assert.False(t, installed)
	// the lenient accessor still hides the failure behind its default
	assert.True(t, setting.GetBool("is_installed", true))
}
