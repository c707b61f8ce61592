package loader

import (
	"os"
	"path/filepath"

	"github.com/chunga-ict/retained/kernel/model"
	"gopkg.in/yaml.v2"
)

// LoadConfig reads a retained configuration file. Fields absent from the
// file keep their built-in values, so a config may override just the save
// file path or just the default tags.
func LoadConfig(path string) (*model.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := model.NewConfig()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// TryLoadConfig loads the config from the default location, returning the
// built-in configuration when no file exists or it cannot be read.
func TryLoadConfig() *model.Config {
	dir, err := model.ConfigDir()
	if err != nil {
		return model.NewConfig()
	}
	cfg, err := LoadConfig(filepath.Join(dir, model.ConfigFileName))
	if err != nil {
		return model.NewConfig()
	}
	return cfg
}
