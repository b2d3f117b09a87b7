package config

import (
	"fmt"

	"pomodoro/internal/core/model"
)

// FileSource reads settings from a YAML file with environment overrides.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the settings file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the settings file path.
func (source *FileSource) Path() string {
	return source.path
}

// Settings returns the effective settings.
func (source *FileSource) Settings() (Settings, error) {
	settings, err := LoadSettings(source.path)
	if err != nil {
		return settings, fmt.Errorf("load %s: %w", source.path, err)
	}
	ApplyEnv(&settings)
	return settings, nil
}

// Read returns the effective clock configuration.
func (source *FileSource) Read() (model.SessionConfig, error) {
	settings, err := source.Settings()
	if err != nil {
		return settings.SessionConfig(), err
	}
	return settings.SessionConfig(), nil
}
