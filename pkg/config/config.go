package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/arthur-debert/linkgen/pkg/errors"
	"github.com/arthur-debert/linkgen/pkg/logging"
	"github.com/arthur-debert/linkgen/pkg/manifest"
	"github.com/arthur-debert/linkgen/pkg/paths"
)

// EnvPrefix prefixes every environment variable linkgen reads
const EnvPrefix = "LINKGEN"

// Keys
const (
	KeySource       = "source"
	KeyDestination  = "destination"
	KeyManifestName = "manifest_name"
	KeyReplaceDirs  = "replace_dirs"
	KeyNoColor      = "no_color"
)

// Config holds linkgen's settings
type Config struct {
	Source       string `mapstructure:"source" toml:"source" comment:"Templates root, one subdirectory per project"`
	Destination  string `mapstructure:"destination" toml:"destination" comment:"Root links are created under; empty means the templates root"`
	ManifestName string `mapstructure:"manifest_name" toml:"manifest_name" comment:"Manifest file looked up inside each project"`
	ReplaceDirs  bool   `mapstructure:"replace_dirs" toml:"replace_dirs" comment:"Remove real directories standing where a link must go"`
	NoColor      bool   `mapstructure:"no_color" toml:"no_color" comment:"Disable coloured output"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		ManifestName: manifest.DefaultFileName,
	}
}

// Loader resolves settings from flags, environment, file and defaults
type Loader struct {
	v        *viper.Viper
	explicit string
}

// NewLoader creates a loader. An empty configFile means the default XDG
// location, which may be absent; an explicit file must exist.
func NewLoader(configFile string) *Loader {
	v := viper.New()

	defaults := Default()
	v.SetDefault(KeySource, defaults.Source)
	v.SetDefault(KeyDestination, defaults.Destination)
	v.SetDefault(KeyManifestName, defaults.ManifestName)
	v.SetDefault(KeyReplaceDirs, defaults.ReplaceDirs)
	v.SetDefault(KeyNoColor, defaults.NoColor)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigType("toml")

	return &Loader{v: v, explicit: configFile}
}

// BindFlag lets a command-line flag override key when it is set
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return nil
	}
	if err := l.v.BindPFlag(key, flag); err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "cannot bind flag %s", flag.Name)
	}
	return nil
}

// File returns the config file path the loader reads
func (l *Loader) File() string {
	if l.explicit != "" {
		return paths.ExpandHome(l.explicit)
	}
	return paths.ConfigFile()
}

// Load resolves every setting
func (l *Loader) Load() (*Config, error) {
	logger := logging.GetLogger("config")
	file := l.File()

	_, statErr := os.Stat(file)
	switch {
	case statErr == nil:
		l.v.SetConfigFile(file)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", file).
				WithDetail("path", file)
		}
		logger.Debug().Str("path", file).Msg("Config file loaded")
	case l.explicit != "":
		return nil, errors.Wrapf(statErr, errors.ErrConfigLoad, "config file %s not found", file).
			WithDetail("path", file)
	default:
		logger.Trace().Str("path", file).Msg("No config file")
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot decode config")
	}

	cfg.Source = paths.ExpandHome(cfg.Source)
	cfg.Destination = paths.ExpandHome(cfg.Destination)
	if cfg.ManifestName == "" {
		cfg.ManifestName = manifest.DefaultFileName
	}

	logger.Debug().
		Str("source", cfg.Source).
		Str("destination", cfg.Destination).
		Str("manifest", cfg.ManifestName).
		Bool("replaceDirs", cfg.ReplaceDirs).
		Msg("Config resolved")

	return &cfg, nil
}
