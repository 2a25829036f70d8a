package emoji

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dongdio/OpenBlog/utility/errs"
)

const sample = `{
	"OωO": "OwO/OwO.png",
	"Angry": "OwO/angry.png",
	"Applause": "OwO/applause.png"
}`

func TestParseKeepsOrder(t *testing.T) {
	m, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"OωO", "Angry", "Applause"}, m.Keys())

	v, ok := m.Get("Angry")
	assert.True(t, ok)
	assert.Equal(t, "OwO/angry.png", v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestParseRejectsMalformed(t *testing.T) {
	for name, doc := range map[string]string{
		"truncated":  `{"a": "b"`,
		"array":      `["a"]`,
		"non string": `{"a": 1}`,
		"empty":      ``,
	} {
		t.Run(name, func(t *testing.T) {
			m, err := Parse([]byte(doc))
			assert.Nil(t, m)
			assert.True(t, errs.Is(err, errs.InvalidEmojiMap), "got %v", err)
		})
	}
}

func TestKeysIsACopy(t *testing.T) {
	m, err := Parse([]byte(sample))
	require.NoError(t, err)
	keys := m.Keys()
	keys[0] = "changed"
	assert.Equal(t, "OωO", m.Keys()[0])
}

func TestRangeStops(t *testing.T) {
	m, err := Parse([]byte(sample))
	require.NoError(t, err)
	var seen []string
	m.Range(func(code, _ string) bool {
		seen = append(seen, code)
		return len(seen) < 2
	})
	assert.Equal(t, []string{"OωO", "Angry"}, seen)
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"static/owo.json": {Data: []byte(sample)}}
	m, err := Load(fsys, "static/owo.json")
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())

	_, err = Load(fsys, "static/missing.json")
	assert.Error(t, err)
}

func TestEmptyAndNil(t *testing.T) {
	assert.Equal(t, 0, Empty().Len())
	var m *Map
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	_, ok := m.Get("x")
	assert.False(t, ok)
}

func TestMarshalJSON(t *testing.T) {
	m, err := Parse([]byte(`{"b": "2.png", "a": "1.png"}`))
	require.NoError(t, err)
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"b":"2.png","a":"1.png"}`, string(b))
}
