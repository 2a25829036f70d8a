package theme

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/yuin/goldmark"
)

// ReadmeName is the optional markdown introduction of a theme.
const ReadmeName = "README.md"

// Readme renders the README of an installed theme as sanitized html.
// A theme without README yields nil.
func (r *Registry) Readme(id string) ([]byte, error) {
	t, err := r.GetTheme(id)
	if err != nil {
		return nil, err
	}
	src, err := afero.ReadFile(r.fs, filepath.Join(t.Path, ReadmeName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed read readme of theme %s", id)
	}
	return renderMarkdown(src)
}

func renderMarkdown(src []byte) ([]byte, error) {
	var html bytes.Buffer
	if err := goldmark.Convert(src, &html); err != nil {
		return nil, errors.Wrap(err, "markdown conversion failed")
	}
	return bluemonday.UGCPolicy().SanitizeBytes(html.Bytes()), nil
}
