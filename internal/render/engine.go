// Package render keeps the variables shared by every page template.
package render

import (
	"html/template"
	"maps"
	"regexp"
	"sync/atomic"

	"github.com/dongdio/OpenBlog/consts"
	"github.com/dongdio/OpenBlog/utility/errs"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Engine holds shared template variables in a copy-on-write map.
type Engine struct {
	shared atomic.Pointer[map[string]any]
}

func NewEngine() *Engine {
	e := &Engine{}
	m := map[string]any{}
	e.shared.Store(&m)
	return e
}

// SetSharedVariable publishes value under name for all templates.
func (e *Engine) SetSharedVariable(name string, value any) error {
	if !identifier.MatchString(name) {
		return errs.NewErr(errs.InvalidTemplateVariable, "bad name %q", name)
	}
	if value == nil {
		return errs.NewErr(errs.InvalidTemplateVariable, "nil value for %q", name)
	}
	for {
		old := e.shared.Load()
		next := maps.Clone(*old)
		next[name] = value
		if e.shared.CompareAndSwap(old, &next) {
			return nil
		}
	}
}

func (e *Engine) SharedVariable(name string) (any, bool) {
	v, ok := (*e.shared.Load())[name]
	return v, ok
}

// SharedVariables returns a copy of all shared variables.
func (e *Engine) SharedVariables() map[string]any {
	return maps.Clone(*e.shared.Load())
}

// ActiveTheme returns the published theme name or the default theme.
func (e *Engine) ActiveTheme() string {
	if v, ok := e.SharedVariable(consts.ThemeNameVariable); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return consts.DefaultTheme
}

// FuncMap exposes every shared variable as a template function, read at
// execution time.
func (e *Engine) FuncMap() template.FuncMap {
	fm := template.FuncMap{
		"shared": func(name string) any {
			v, _ := e.SharedVariable(name)
			return v
		},
		consts.ThemeNameVariable: e.ActiveTheme,
	}
	return fm
}
