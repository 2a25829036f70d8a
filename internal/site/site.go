// Package site owns the in-memory snapshots published at startup and read by
// request handlers.
package site

import (
	"sync/atomic"

	"github.com/dongdio/OpenBlog/internal/emoji"
	"github.com/dongdio/OpenBlog/internal/model"
)

// State is safe for concurrent use. Writers replace values wholesale and
// readers never observe a partially built snapshot.
type State struct {
	themes atomic.Pointer[[]model.Theme]
	emoji  atomic.Pointer[emoji.Map]
}

func New() *State {
	return &State{}
}

// Themes returns the current theme snapshot. Callers must not modify it.
func (s *State) Themes() []model.Theme {
	p := s.themes.Load()
	if p == nil {
		return nil
	}
	return *p
}

// Theme looks up a theme of the current snapshot by id.
func (s *State) Theme(id string) (model.Theme, bool) {
	for _, t := range s.Themes() {
		if t.ID == id {
			return t, true
		}
	}
	return model.Theme{}, false
}

// SetThemes publishes a copy of themes.
func (s *State) SetThemes(themes []model.Theme) {
	snapshot := append([]model.Theme(nil), themes...)
	s.themes.Store(&snapshot)
}

// Emoji returns the published emoji map, never nil.
func (s *State) Emoji() *emoji.Map {
	if m := s.emoji.Load(); m != nil {
		return m
	}
	return emoji.Empty()
}

func (s *State) SetEmoji(m *emoji.Map) {
	if m == nil {
		m = emoji.Empty()
	}
	s.emoji.Store(m)
}
