package model

import (
	"os"
	"path/filepath"
)

const (
	ConfigFileName      = "config.yml"
	DefaultSaveFileName = ".retained"
)

// ConfigDir returns the retained configuration directory.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "retained"), nil
}

// DefaultSavePath returns the save file location used when the host does not
// override it.
func DefaultSavePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultSaveFileName), nil
}

// Config is the host-editable configuration: the save file path and the
// fallback tag set used when nothing usable is retained for a screen.
type Config struct {
	SaveFile string         `yaml:"savefile"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// DefaultsConfig names the fallback tags. One layout name applies to every
// default tag.
type DefaultsConfig struct {
	Tags   []string `yaml:"tags"`
	Layout string   `yaml:"layout"`
}

// Defaults is the resolved fallback pair handed to the store: tag names and
// live layout handles, positionally aligned.
type Defaults struct {
	Names   []string
	Layouts []Layout
}

// NewConfig returns the built-in configuration: tags 1-9, tile layout, save
// file at the default path.
func NewConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Tags:   []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
			Layout: "tile",
		},
	}
}

// SavePath returns the configured save file path, falling back to
// DefaultSavePath when unset.
func (c *Config) SavePath() (string, error) {
	if c.SaveFile != "" {
		return c.SaveFile, nil
	}
	return DefaultSavePath()
}

// ResolveDefaults resolves the configured default layout name against the
// registry. An unknown name falls back to the first registered layout.
func (c *Config) ResolveDefaults(registry *LayoutRegistry) Defaults {
	layout := registry.Lookup(c.Defaults.Layout)
	if layout == nil {
		layout = registry.First()
	}

	defaults := Defaults{}
	for _, name := range c.Defaults.Tags {
		defaults.Names = append(defaults.Names, name)
		defaults.Layouts = append(defaults.Layouts, layout)
	}
	return defaults
}
