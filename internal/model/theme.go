package model

// Theme describes an installed theme directory.
type Theme struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Author      string   `json:"author" yaml:"author"`
	Description string   `json:"description" yaml:"description"`
	Version     string   `json:"version" yaml:"version"`
	Website     string   `json:"website" yaml:"website"`
	Screenshots string   `json:"screenshots" yaml:"screenshots"`
	Folder      string   `json:"folder" yaml:"-"`
	Path        string   `json:"-" yaml:"-"`
	Tags        []string `json:"tags,omitempty" yaml:"tags"`
}
