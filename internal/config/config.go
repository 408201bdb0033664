// Package config loads blogscope settings from a TOML file, a .env file and
// the environment.
//
// Precedence, highest first: BLOGSCOPE_* environment variables (and PORT for
// the server port), the config file, built-in defaults. A .env file in the
// working directory is loaded into the environment before anything else and
// never overrides variables that are already set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	errs "github.com/matzehuels/blogscope/pkg/errors"
	"github.com/matzehuels/blogscope/pkg/httputil"
	"github.com/matzehuels/blogscope/pkg/integrations/placeholder"
)

const (
	appName  = "blogscope"
	fileName = "config.toml"

	// EnvPrefix prefixes every environment override, e.g. BLOGSCOPE_BASE_URL.
	EnvPrefix = "BLOGSCOPE"

	// MaxRetryAttempts bounds retry.attempts.
	MaxRetryAttempts = 20
)

// Cache backends.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Config is the complete blogscope configuration.
type Config struct {
	BaseURL string       `mapstructure:"base_url"`
	English bool         `mapstructure:"english"`
	Retry   RetryConfig  `mapstructure:"retry"`
	Cache   CacheConfig  `mapstructure:"cache"`
	Server  ServerConfig `mapstructure:"server"`
}

// RetryConfig controls the fetch client's retry policy.
type RetryConfig struct {
	Attempts int           `mapstructure:"attempts"`
	Step     time.Duration `mapstructure:"step"`
	Strategy string        `mapstructure:"strategy"`
}

// CacheConfig selects and configures the response cache.
type CacheConfig struct {
	Backend  string        `mapstructure:"backend"`
	Dir      string        `mapstructure:"dir"`
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// ServerConfig configures the static host.
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Dir  string `mapstructure:"dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL: placeholder.DefaultBaseURL,
		English: true,
		Retry: RetryConfig{
			Attempts: httputil.DefaultAttempts,
			Step:     httputil.DefaultStep,
			Strategy: httputil.StrategyLinear,
		},
		Cache: CacheConfig{
			Backend: CacheNone,
			TTL:     time.Hour,
		},
		Server: ServerConfig{
			Port: 3000,
			Dir:  "build",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/blogscope/config.toml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// DefaultCacheDir returns $XDG_CACHE_HOME/blogscope, falling back to ~/.cache.
func DefaultCacheDir() (string, error) {
	if home := os.Getenv("XDG_CACHE_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads configuration from path, or from [DefaultPath] when path is
// empty, and applies environment overrides. A missing file at the default
// location yields the defaults; a missing explicit path is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT"); err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config %s", path)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("base_url", d.BaseURL)
	v.SetDefault("english", d.English)
	v.SetDefault("retry.attempts", d.Retry.Attempts)
	v.SetDefault("retry.step", d.Retry.Step)
	v.SetDefault("retry.strategy", d.Retry.Strategy)
	v.SetDefault("cache.backend", d.Cache.Backend)
	v.SetDefault("cache.dir", d.Cache.Dir)
	v.SetDefault("cache.redis_url", d.Cache.RedisURL)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.dir", d.Server.Dir)
}

// Validate checks every field and returns an INVALID_CONFIG error for the
// first problem found.
func (c *Config) Validate() error {
	if err := errs.ValidateBaseURL(c.BaseURL); err != nil {
		return err
	}
	if c.Retry.Attempts < 1 {
		return errs.New(errs.ErrCodeInvalidConfig, "retry.attempts must be at least 1, got %d", c.Retry.Attempts)
	}
	if c.Retry.Attempts > MaxRetryAttempts {
		return errs.New(errs.ErrCodeInvalidConfig, "retry.attempts must be at most %d, got %d", MaxRetryAttempts, c.Retry.Attempts)
	}
	if c.Retry.Step <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "retry.step must be positive, got %s", c.Retry.Step)
	}
	if _, err := httputil.ParseStrategy(c.Retry.Strategy, c.Retry.Step); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "retry.strategy")
	}
	switch c.Cache.Backend {
	case CacheNone, CacheFile:
	case CacheRedis:
		if c.Cache.RedisURL == "" {
			return errs.New(errs.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
		}
	default:
		return errs.New(errs.ErrCodeInvalidConfig, "unknown cache.backend %q (want none, file or redis)", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	if err := errs.ValidatePort(strconv.Itoa(c.Server.Port)); err != nil {
		return err
	}
	return nil
}

// RetryPolicy builds the fetch client's retry policy. The config must be valid.
func (c *Config) RetryPolicy() httputil.Policy {
	p := httputil.DefaultPolicy()
	p.Attempts = c.Retry.Attempts
	if b, err := httputil.ParseStrategy(c.Retry.Strategy, c.Retry.Step); err == nil {
		p.Backoff = b
	}
	return p
}

// fileConfig mirrors Config for TOML encoding, with durations as strings.
type fileConfig struct {
	BaseURL string `toml:"base_url"`
	English bool   `toml:"english"`
	Retry   struct {
		Attempts int    `toml:"attempts"`
		Step     string `toml:"step"`
		Strategy string `toml:"strategy"`
	} `toml:"retry"`
	Cache struct {
		Backend  string `toml:"backend"`
		Dir      string `toml:"dir"`
		RedisURL string `toml:"redis_url"`
		TTL      string `toml:"ttl"`
	} `toml:"cache"`
	Server struct {
		Port int    `toml:"port"`
		Dir  string `toml:"dir"`
	} `toml:"server"`
}

// Write saves c as TOML at path, creating parent directories. It refuses to
// overwrite an existing file unless force is set.
func (c *Config) Write(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errs.New(errs.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var fc fileConfig
	fc.BaseURL = c.BaseURL
	fc.English = c.English
	fc.Retry.Attempts = c.Retry.Attempts
	fc.Retry.Step = c.Retry.Step.String()
	fc.Retry.Strategy = c.Retry.Strategy
	fc.Cache.Backend = c.Cache.Backend
	fc.Cache.Dir = c.Cache.Dir
	fc.Cache.RedisURL = c.Cache.RedisURL
	fc.Cache.TTL = c.Cache.TTL.String()
	fc.Server.Port = c.Server.Port
	fc.Server.Dir = c.Server.Dir

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(fc); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}
