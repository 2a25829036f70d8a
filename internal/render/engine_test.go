package render

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dongdio/OpenBlog/utility/errs"
)

func TestSetSharedVariable(t *testing.T) {
	e := NewEngine()
	assert.Equal(t, "anatole", e.ActiveTheme())

	require.NoError(t, e.SetSharedVariable("themeName", "simple"))
	assert.Equal(t, "simple", e.ActiveTheme())

	v, ok := e.SharedVariable("themeName")
	assert.True(t, ok)
	assert.Equal(t, "simple", v)
}

func TestSetSharedVariableRejects(t *testing.T) {
	e := NewEngine()
	for _, name := range []string{"", "1abc", "theme-name", "a b"} {
		err := e.SetSharedVariable(name, "x")
		assert.True(t, errs.Is(err, errs.InvalidTemplateVariable), "name %q", name)
	}
	err := e.SetSharedVariable("themeName", nil)
	assert.True(t, errs.Is(err, errs.InvalidTemplateVariable))
	assert.Empty(t, e.SharedVariables())
}

func TestSharedVariablesIsACopy(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.SetSharedVariable("title", "blog"))
	vars := e.SharedVariables()
	vars["title"] = "changed"
	v, _ := e.SharedVariable("title")
	assert.Equal(t, "blog", v)
}

func TestFuncMap(t *testing.T) {
	e := NewEngine()
	tpl := template.Must(template.New("page").Funcs(e.FuncMap()).Parse(`{{themeName}}|{{shared "title"}}`))

	require.NoError(t, e.SetSharedVariable("title", "My Blog"))
	var buf bytes.Buffer
	require.NoError(t, tpl.Execute(&buf, nil))
	assert.Equal(t, "anatole|My Blog", buf.String())

	require.NoError(t, e.SetSharedVariable("themeName", "simple"))
	buf.Reset()
	require.NoError(t, tpl.Execute(&buf, nil))
	assert.Equal(t, "simple|My Blog", buf.String())
}
