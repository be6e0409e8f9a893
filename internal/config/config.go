// Package config loads per-project defaults for the advent command.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// FileName of the project configuration, looked up in the working directory and its parents.
const FileName = ".advent.yaml"

// Config holds flag defaults keyed by flag name.
type Config struct {
	// Path the configuration was loaded from, if any.
	Path   string
	values map[string]any
}

// Empty configuration, supplying no defaults.
func Empty() *Config {
	return &Config{values: map[string]any{}}
}

// Parse configuration from YAML.
func Parse(r io.Reader) (*Config, error) {
	values := map[string]any{}
	err := yaml.NewDecoder(r).Decode(&values)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &Config{values: values}, nil
}

// Find walks up from dir to the nearest configuration file and loads it.
//
// An empty configuration is returned if none is found.
func Find(dir string) (*Config, error) {
	for {
		path := filepath.Join(dir, FileName)
		f, err := os.Open(path)
		if err == nil {
			defer f.Close() // nolint: errcheck
			config, err := Parse(f)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			config.Path = path
			return config, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		up := filepath.Dir(dir)
		if up == dir {
			return Empty(), nil
		}
		dir = up
	}
}

// Get a configured value by flag name. Hyphens and underscores are interchangeable.
func (c *Config) Get(name string) (any, bool) {
	if v, ok := c.values[name]; ok {
		return v, true
	}
	v, ok := c.values[strings.ReplaceAll(name, "-", "_")]
	return v, ok
}

// Resolver supplies flag defaults from the configuration.
//
// Relative paths are resolved against the directory containing the configuration file for flags
// of type "path" or "existingdir".
func (c *Config) Resolver() kong.Resolver {
	return kong.ResolverFunc(func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		v, ok := c.Get(flag.Name)
		if !ok {
			return nil, nil
		}
		s, isString := v.(string)
		if isString && c.Path != "" && isPathFlag(flag) && !filepath.IsAbs(s) {
			return filepath.Join(filepath.Dir(c.Path), s), nil
		}
		return v, nil
	})
}

func isPathFlag(flag *kong.Flag) bool {
	switch flag.Tag.Type {
	case "path", "existingdir", "existingfile":
		return true
	}
	return false
}
