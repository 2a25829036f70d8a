// Package emoji holds the shortcode map used by the comment editor.
package emoji

import (
	"io/fs"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/dongdio/OpenBlog/utility/errs"
)

// Map is an immutable shortcode -> resource path lookup that keeps the
// order of the source document.
type Map struct {
	keys   []string
	values map[string]string
}

var empty = &Map{values: map[string]string{}}

// Empty returns the shared empty map.
func Empty() *Map {
	return empty
}

// Parse reads a JSON object whose values are all strings.
func Parse(data []byte) (*Map, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.WithStack(errs.InvalidEmojiMap)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errs.NewErr(errs.InvalidEmojiMap, "expect a json object, got %s", root.Type)
	}
	m := &Map{values: make(map[string]string)}
	var err error
	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			err = errs.NewErr(errs.InvalidEmojiMap, "value of %q is not a string", key.String())
			return false
		}
		k := key.String()
		if _, ok := m.values[k]; !ok {
			m.keys = append(m.keys, k)
		}
		m.values[k] = value.String()
		return true
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Load parses the resource at name inside fsys.
func Load(fsys fs.FS, name string) (*Map, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed read %s", name)
	}
	return Parse(data)
}

func (m *Map) Get(code string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[code]
	return v, ok
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the shortcodes in document order. The slice is a copy.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Range calls f for each entry in document order until f returns false.
func (m *Map) Range(f func(code, path string) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !f(k, m.values[k]) {
			return
		}
	}
}

// MarshalJSON keeps the document order.
func (m *Map) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, k := range m.Keys() {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendString(buf, k)
		buf = append(buf, ':')
		buf = appendString(buf, m.values[k])
	}
	return append(buf, '}'), nil
}
