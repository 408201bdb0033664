package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blogscope/internal/config"
	"github.com/matzehuels/blogscope/pkg/browse"
	"github.com/matzehuels/blogscope/pkg/buildinfo"
	"github.com/matzehuels/blogscope/pkg/cache"
	"github.com/matzehuels/blogscope/pkg/content"
	"github.com/matzehuels/blogscope/pkg/integrations/placeholder"
	"github.com/matzehuels/blogscope/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "blogscope"

	// skipConfig marks commands that must run without a loadable config.
	skipConfig = "blogscope/skip-config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfg        *config.Config
	configPath string
	baseURL    string
	english    bool
	noCache    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level, fetch retries,
// cache lookups and HTTP round trips are logged as they happen.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		h := debugHooks{c.Logger}
		observability.SetRetryHooks(h)
		observability.SetCacheHooks(h)
		observability.SetHTTPHooks(h)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Blogscope browses posts, users and comments from a blog API",
		Long:         `Blogscope fetches posts, users and comments from a JSONPlaceholder-style REST API and lets you list, sort, search and browse them from the terminal. It can also host the built web front end.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipConfig] == "true" {
				return nil
			}
			return c.loadConfig(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/blogscope/config.toml)")
	flags.StringVar(&c.baseURL, "base-url", "", "API origin (overrides config)")
	flags.BoolVar(&c.english, "english", true, "replace placeholder text with readable English")
	flags.BoolVar(&c.noCache, "no-cache", false, "bypass the response cache")

	root.AddCommand(c.postsCommand())
	root.AddCommand(c.usersCommand())
	root.AddCommand(c.commentsCommand())
	root.AddCommand(c.postCommand())
	root.AddCommand(c.userCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads .env and the config file, then applies flag overrides.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		c.Logger.Warn("ignoring .env", "err", err)
	}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.baseURL != "" {
		cfg.BaseURL = c.baseURL
	}
	if cmd.Flags().Changed("english") {
		cfg.English = c.english
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c.cfg = cfg
	c.Logger.Debug("config loaded", "base_url", cfg.BaseURL, "cache", cfg.Cache.Backend, "attempts", cfg.Retry.Attempts)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// config returns the loaded configuration, or defaults before loading.
func (c *CLI) config() *config.Config {
	if c.cfg == nil {
		d := config.Default()
		c.cfg = &d
	}
	return c.cfg
}

// =============================================================================
// Client Factory
// =============================================================================

// newBrowser wires cache, fetch client and orchestrator from the config.
// The returned close function releases the cache.
func (c *CLI) newBrowser(ctx context.Context) (*browse.Browser, func(), error) {
	cfg := c.config()
	logger := loggerFromContext(ctx)

	store, err := c.newCache(ctx)
	if err != nil {
		return nil, nil, err
	}

	client := placeholder.NewClient(store, cfg.Cache.TTL).WithBaseURL(cfg.BaseURL)
	if cfg.English {
		client.WithPostTransform(content.English)
	}
	client.WithRetryPolicy(cfg.RetryPolicy()).
		WithLogger(logger).
		WithHeader("User-Agent", buildinfo.UserAgent())

	closeFn := func() {
		if err := store.Close(); err != nil {
			logger.Debug("close cache", "err", err)
		}
	}
	return browse.New(client, logger), closeFn, nil
}

func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	cfg := c.config()
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.Cache.Backend {
	case config.CacheFile:
		dir, err := c.cacheDir()
		if err != nil {
			c.Logger.Warn("cache disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case config.CacheRedis:
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.RedisURL)
		if err != nil {
			return nil, err
		}
		return rc, nil
	default:
		return cache.NewNullCache(), nil
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, or the XDG default
// (~/.cache/blogscope/).
func (c *CLI) cacheDir() (string, error) {
	if dir := c.config().Cache.Dir; dir != "" {
		return dir, nil
	}
	return config.DefaultCacheDir()
}

// stdout returns the command's output writer, os.Stdout unless redirected.
func stdout(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
