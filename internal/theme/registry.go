// Package theme lists installed themes and installs the bundled ones.
package theme

import (
	"path/filepath"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/maruel/natural"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/dongdio/OpenBlog/internal/model"
	"github.com/dongdio/OpenBlog/utility/errs"
)

// DescriptorName is the optional metadata file at the root of a theme.
const DescriptorName = "theme.yaml"

// Registry scans the user theme directory.
type Registry struct {
	fs       afero.Fs
	basePath string
}

func NewRegistry(fs afero.Fs, basePath string) *Registry {
	return &Registry{fs: fs, basePath: basePath}
}

func (r *Registry) ThemeBasePath() string {
	return r.basePath
}

// ListThemes returns the installed themes in natural order of id. It returns nil
// without error when the base path does not exist yet.
func (r *Registry) ListThemes() ([]model.Theme, error) {
	exists, err := afero.DirExists(r.fs, r.basePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed stat theme path %s", r.basePath)
	}
	if !exists {
		return nil, nil
	}
	entries, err := afero.ReadDir(r.fs, r.basePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed list theme path %s", r.basePath)
	}

	themes := make([]model.Theme, 0, len(entries))
	seen := mapset.NewThreadUnsafeSet[string]()
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		t := r.readTheme(entry.Name())
		if !seen.Add(t.ID) {
			log.Warnf("duplicate theme id %s in folder %s, ignored", t.ID, t.Folder)
			continue
		}
		themes = append(themes, t)
	}
	sort.Slice(themes, func(i, j int) bool {
		return natural.Less(themes[i].ID, themes[j].ID)
	})
	return themes, nil
}

// GetTheme returns the installed theme with the given id.
func (r *Registry) GetTheme(id string) (*model.Theme, error) {
	themes, err := r.ListThemes()
	if err != nil {
		return nil, err
	}
	for i := range themes {
		if themes[i].ID == id {
			return &themes[i], nil
		}
	}
	return nil, errs.NewErr(errs.ThemeNotFound, "id %s", id)
}

func (r *Registry) readTheme(folder string) model.Theme {
	dir := filepath.Join(r.basePath, folder)
	t := model.Theme{}
	data, err := afero.ReadFile(r.fs, filepath.Join(dir, DescriptorName))
	if err == nil {
		if err = yaml.Unmarshal(data, &t); err != nil {
			log.Warnf("failed parse %s of theme %s: %v", DescriptorName, folder, err)
			t = model.Theme{}
		}
	}
	t.Folder = folder
	t.Path = dir
	if t.ID == "" {
		t.ID = folder
	}
	if t.Name == "" {
		t.Name = t.ID
	}
	return t
}
