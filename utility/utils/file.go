package utils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Exists determine whether the file exists
func Exists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// IsDir determine whether the path is an existing directory
func IsDir(name string) bool {
	st, err := os.Stat(name)
	return err == nil && st.IsDir()
}

// CreateNestedFile create nested file
func CreateNestedFile(path string) (*os.File, error) {
	basePath := filepath.Dir(path)
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create folder %s", basePath)
	}
	return os.Create(path)
}
