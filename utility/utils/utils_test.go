package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNestedFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a", "b", "config.json")

	f, err := CreateNestedFile(p)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assert.True(t, Exists(p))
	assert.True(t, IsDir(filepath.Dir(p)))
	assert.False(t, IsDir(p))
	assert.False(t, Exists(filepath.Join(dir, "missing")))
}

func TestWriteJSONToFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.json")
	ok := WriteJSONToFile(p, map[string]any{"http_port": 8080, "name": "blog"})
	require.True(t, ok)

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, int64(8080), GetBytes(b, "http_port").Int())
	assert.Equal(t, "blog", GetBytes(b, "name").String())
}
