package cargobump

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigName is the optional config file looked up in the project root.
const ConfigName = ".cargobump"

// Config holds the settings of one invocation.
type Config struct {
	Root     string     `mapstructure:"root"`
	Manifest string     `mapstructure:"manifest"`
	Log      LogConfig  `mapstructure:"log"`
	Yes      bool       `mapstructure:"yes"`
	DryRun   bool       `mapstructure:"dry_run"`
	Git      GitOptions `mapstructure:"git"`
}

// LogConfig selects the diagnostic log level and format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GitOptions enables committing and tagging rewritten manifests.
type GitOptions struct {
	Commit bool `mapstructure:"commit"`
	Tag    bool `mapstructure:"tag"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("root", ".")
	v.SetDefault("manifest", DefaultManifest)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "pretty")
	v.SetDefault("yes", false)
	v.SetDefault("dry_run", false)
	v.SetDefault("git.commit", false)
	v.SetDefault("git.tag", false)
}

// LoadConfig resolves configuration from defaults, a config file,
// CARGOBUMP_* environment variables and whatever flags are bound to v.
// Without an explicit configFile, .cargobump.toml in the project root is
// read when present.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix("CARGOBUMP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("toml")
		v.AddConfigPath(v.GetString("root"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the tool cannot work with.
func (c *Config) Validate() error {
	if c.Manifest == "" {
		return errors.New("manifest file name cannot be empty")
	}
	if filepath.Base(c.Manifest) != c.Manifest {
		return fmt.Errorf("manifest must be a file name, not a path: %q", c.Manifest)
	}
	switch c.Log.Format {
	case "", "pretty", "json":
	default:
		return fmt.Errorf("unknown log format %q (use pretty or json)", c.Log.Format)
	}
	if c.Git.Tag && !c.Git.Commit {
		return errors.New("--tag requires --commit")
	}
	return nil
}

// Workspace returns the workspace the configuration points at.
func (c *Config) Workspace() Workspace {
	return Workspace{Root: c.Root, Manifest: c.Manifest}
}
