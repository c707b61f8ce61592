package subcmd

import (
	"fmt"
	"os"

	"github.com/chunga-ict/retained/kernel/loader"
	"github.com/chunga-ict/retained/kernel/model"
	"github.com/chunga-ict/retained/kernel/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "retained",
	Short: "Inspect and preview retained per-screen tag state",
}

var verbose bool

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(func() {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	})
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore builds and loads a FileStore from the CLI flags: an explicit
// config path wins, then the default config location, then built-ins. An
// explicit savefile overrides whatever the config names.
func openStore(saveFile, configPath string) (*store.FileStore, model.Defaults, error) {
	var cfg *model.Config
	if configPath != "" {
		loaded, err := loader.LoadConfig(configPath)
		if err != nil {
			return nil, model.Defaults{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = loader.TryLoadConfig()
	}

	if saveFile != "" {
		cfg.SaveFile = saveFile
	}
	path, err := cfg.SavePath()
	if err != nil {
		return nil, model.Defaults{}, err
	}

	registry := model.DefaultRegistry()
	defaults := cfg.ResolveDefaults(registry)

	st := store.NewFileStore(path, registry, defaults)
	if err := st.Load(); err != nil {
		return nil, model.Defaults{}, err
	}
	return st, defaults, nil
}
