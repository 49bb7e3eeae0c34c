// Package config loads the static toolkit configuration. The loaded
// value is returned to the caller and threaded through constructors;
// there is no package-level shared state.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/vojtech-kasny/IT-NETWORK/logging"
)

// HelpFileName is the markdown help document looked up next to the
// configuration file when ShowMDHelp is set.
const HelpFileName = "HELP.md"

// Config holds the toolkit configuration. ModulePath and Help are not
// read from the file; the loader fills them in itself.
type Config struct {
	DebugEnabled      bool   `mapstructure:"debug_enabled"`
	DebugLevel        int    `mapstructure:"debug_level"`
	Version           string `mapstructure:"version"`
	ShowMDHelp        bool   `mapstructure:"show_md_help"`
	ModulePath        string `mapstructure:"-"`
	Help              string `mapstructure:"-"`
	EnableCustomTitle bool   `mapstructure:"enable_custom_title"`
	BaseTitle         string `mapstructure:"base_title"`
}

// Load reads configuration from file and environment. An explicitly
// given file that cannot be read is a fatal bootstrap failure. A missing
// help document is logged as a warning and execution continues with Help
// left empty.
func Load(cfgFile string, log *logging.Logger) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("psit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/psit")
	}

	v.SetDefault("debug_enabled", false)
	v.SetDefault("debug_level", 0)
	v.SetDefault("version", "1.0.0")
	v.SetDefault("show_md_help", true)
	v.SetDefault("enable_custom_title", false)
	v.SetDefault("base_title", "IT-NETWORK")

	v.SetEnvPrefix("PSIT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// No config file found in the search paths: defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.ModulePath = modulePath(v.ConfigFileUsed())

	if cfg.ShowMDHelp {
		help, err := os.ReadFile(filepath.Join(cfg.ModulePath, HelpFileName))
		if err != nil {
			if log != nil {
				log.Warning(fmt.Sprintf("help document unavailable: %v", err))
			}
		} else {
			cfg.Help = string(help)
		}
	}

	return &cfg, nil
}

// modulePath resolves the directory the module is loaded from: the
// directory of the config file when one was used, the working directory
// otherwise.
func modulePath(cfgFileUsed string) string {
	if cfgFileUsed != "" {
		if abs, err := filepath.Abs(filepath.Dir(cfgFileUsed)); err == nil {
			return abs
		}
		return filepath.Dir(cfgFileUsed)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
