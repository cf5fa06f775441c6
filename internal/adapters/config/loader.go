// Package config provides the configuration loader for glance.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only glance.yaml schema version.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the configuration. With an empty path it reads glance.yaml from cwd
// when present and uses defaults otherwise. Relative data paths are resolved against
// the directory of the config file, or cwd when there is none.
func (l *Loader) Load(cwd, path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	configPath, err := findConfiguration(cwd, path)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		cfg.Data = domain.ResolveDataPath(cwd, cfg.Data)
		return &cfg, nil
	}

	var file Glancefile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	if file.Version == "" {
		l.Logger.Warn(fmt.Sprintf("%s has no 'version', assuming %q", filepath.Base(configPath), SupportedVersion))
	} else if file.Version != SupportedVersion {
		err := zerr.With(domain.ErrInvalidConfig, "key", "version")
		return nil, zerr.With(err, "value", file.Version)
	}

	apply(&cfg, &file)
	cfg.Source = configPath
	cfg.Data = domain.ResolveDataPath(filepath.Dir(configPath), cfg.Data)

	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return &cfg, nil
}

func findConfiguration(cwd, path string) (string, error) {
	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
		if _, err := os.Stat(path); err != nil {
			return "", zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		return path, nil
	}

	candidate := domain.DefaultConfigPath(cwd)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", nil
}

// apply copies every key present in file onto cfg.
func apply(cfg *domain.Config, file *Glancefile) {
	if file.Title != "" {
		cfg.Title = file.Title
	}
	if file.Data != "" {
		cfg.Data = file.Data
	}
	if s := file.Server; s != nil {
		if s.Addr != "" {
			cfg.Server.Addr = s.Addr
		}
		setBool(&cfg.Server.OpenBrowser, s.OpenBrowser)
	}
	if t := file.Table; t != nil {
		setInt(&cfg.Table.MaxRows, t.MaxRows)
		setInt(&cfg.Table.Precision, t.Precision)
	}
	if p := file.Plot; p != nil {
		setInt(&cfg.Plot.DefaultColumns, p.DefaultColumns)
		setInt(&cfg.Plot.Width, p.Width)
		setInt(&cfg.Plot.Height, p.Height)
	}
	if s := file.Sparkline; s != nil {
		setInt(&cfg.Sparkline.Width, s.Width)
		setInt(&cfg.Sparkline.Height, s.Height)
		setInt(&cfg.Sparkline.MaxPoints, s.MaxPoints)
	}
	if c := file.Cache; c != nil {
		setInt(&cfg.Cache.Size, c.Size)
	}
	if m := file.Metrics; m != nil {
		setBool(&cfg.Metrics.Enabled, m.Enabled)
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// readAndUnmarshalYAML reads a YAML file and decodes it into target, rejecting unknown keys.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is chosen by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
