package site

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dongdio/OpenBlog/internal/emoji"
	"github.com/dongdio/OpenBlog/internal/model"
)

func TestZeroValue(t *testing.T) {
	var s State
	assert.Nil(t, s.Themes())
	assert.Equal(t, 0, s.Emoji().Len())
	_, ok := s.Theme("anatole")
	assert.False(t, ok)
}

func TestSetThemesCopies(t *testing.T) {
	s := New()
	themes := []model.Theme{{ID: "anatole"}, {ID: "simple"}}
	s.SetThemes(themes)
	themes[0].ID = "changed"

	got, ok := s.Theme("anatole")
	assert.True(t, ok)
	assert.Equal(t, "anatole", got.ID)
	assert.Len(t, s.Themes(), 2)
}

func TestSetEmoji(t *testing.T) {
	s := New()
	m, err := emoji.Parse([]byte(`{"a": "a.png"}`))
	require.NoError(t, err)
	s.SetEmoji(m)
	assert.Equal(t, 1, s.Emoji().Len())

	s.SetEmoji(nil)
	assert.Equal(t, 0, s.Emoji().Len())
}

func TestConcurrentReadWrite(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetThemes([]model.Theme{{ID: "anatole"}, {ID: "simple"}})
		}()
		go func() {
			defer wg.Done()
			if themes := s.Themes(); themes != nil {
				assert.Len(t, themes, 2)
			}
		}()
	}
	wg.Wait()
}
