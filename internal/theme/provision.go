package theme

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	cp "github.com/otiai10/copy"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Provisioner copies the bundled default themes into the user theme directory.
type Provisioner struct {
	source   fs.FS
	root     string
	basePath string
}

// NewProvisioner copies every directory directly under root in source into basePath.
func NewProvisioner(source fs.FS, root, basePath string) *Provisioner {
	return &Provisioner{source: source, root: root, basePath: basePath}
}

// BundledThemes lists the theme directories shipped with the binary.
func (p *Provisioner) BundledThemes() ([]string, error) {
	entries, err := fs.ReadDir(p.source, p.root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed list bundled themes in %s", p.root)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Provision copies each bundled theme, overwriting files of the same name,
// and returns the names it installed. It stops at the first failure.
func (p *Provisioner) Provision() ([]string, error) {
	names, err := p.BundledThemes()
	if err != nil {
		return nil, err
	}
	if err = os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed create theme path %s", p.basePath)
	}
	installed := make([]string, 0, len(names))
	for _, name := range names {
		dst := filepath.Join(p.basePath, name)
		err = cp.Copy(path.Join(p.root, name), dst, cp.Options{
			FS:                p.source,
			PermissionControl: cp.AddPermission(0o200),
			OnDirExists: func(_, _ string) cp.DirExistsAction {
				return cp.Merge
			},
		})
		if err != nil {
			return installed, errors.Wrapf(err, "failed copy theme %s to %s", name, dst)
		}
		log.Debugf("installed bundled theme %s to %s", name, dst)
		installed = append(installed, name)
	}
	return installed, nil
}
