// Package config provides the settings loader for recipe.
package config

import (
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the settings file looked up in the recipe directory.
const DefaultFilename = "recipe.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
	Logger   ports.Logger
}

// NewLoader creates a new Loader reading DefaultFilename.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Filename: DefaultFilename, Logger: log}
}

// Load reads the settings from dir. A missing file yields domain.DefaultSettings.
func (l *Loader) Load(dir string) (*domain.Settings, error) {
	filename := l.Filename
	if filename == "" {
		filename = DefaultFilename
	}
	path := filepath.Join(dir, filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var rf Recipefile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if rf.Version != "" && rf.Version != "1" && l.Logger != nil {
		l.Logger.Warn("unknown config version " + rf.Version + " in " + path)
	}

	return merge(domain.DefaultSettings(), &rf), nil
}

// merge overlays the non-empty values of rf onto s.
func merge(s *domain.Settings, rf *Recipefile) *domain.Settings {
	setIfNotEmpty(&s.Executable, rf.Conan.Executable)
	setIfNotEmpty(&s.Profile, rf.Conan.Profile)
	setIfNotEmpty(&s.Remote, rf.Conan.Remote)
	setIfNotEmpty(&s.BuildPolicy, rf.Conan.Build)
	setIfNotEmpty(&s.BuildDir, rf.BuildDir)
	setIfNotEmpty(&s.OutputDir, rf.OutputDir)
	if len(rf.Conan.Env) > 0 {
		s.Env = maps.Clone(rf.Conan.Env)
	}
	return s
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
