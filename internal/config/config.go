// Package config loads the interpreter configuration.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// ConfigurationName is the file name looked up inside the config path.
const ConfigurationName = "config.yaml"

// Configuration controls the interpreter's ambient behavior. The engine
// semantics are not configurable.
type Configuration struct {
	// Prompt is rendered before each read; \w expands to the base name
	// of the working directory.
	Prompt string `json:"prompt" validate:"required"`

	// HistoryFile is where session history persists. A leading ~ is
	// expanded against the user's home directory.
	HistoryFile string `json:"history_file" validate:"required"`

	// HistoryLimit caps persisted and rendered history entries.
	HistoryLimit int `json:"history_limit" validate:"gt=0"`

	// ProcessSample is how many processes ps and top render.
	ProcessSample int `json:"process_sample" validate:"gt=0,lte=500"`

	// Color toggles ANSI colors in the prompt and listings.
	Color bool `json:"color"`
}

// Validate checks the configuration for semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	return validate.Struct(c)
}

// Default returns the configuration used when no file is present.
func Default() *Configuration {
	return &Configuration{
		Prompt:        `\w$ `,
		HistoryFile:   "~/.termgo_history",
		HistoryLimit:  1000,
		ProcessSample: 20,
		Color:         true,
	}
}

// Load reads the configuration from a directory. A missing file yields
// the defaults; a malformed or invalid file is an error.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	contents, err := afero.ReadFile(fsys, filepath.Join(path, ConfigurationName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	out := Default()
	if err := yaml.UnmarshalStrict(contents, out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
