package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blogscope/internal/config"
)

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())
	return cmd
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand() *cobra.Command {
	var (
		force bool
		path  string
	)

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a config file with the default settings",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = c.configPath
			}
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}

			cfg := config.Default()
			if err := cfg.Write(path, force); err != nil {
				return err
			}

			w := stdout(cmd)
			printSuccess(w, "Wrote config")
			printFile(w, path)
			printNextStep(w, "Show the effective settings", "blogscope config show")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().StringVar(&path, "path", "", "destination (default: --config or the XDG config path)")
	return cmd
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after merging defaults, the config file,
.env and BLOGSCOPE_* environment variables, and command-line flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config()
			w := stdout(cmd)

			printKeyValue(w, "base_url", cfg.BaseURL)
			printKeyValue(w, "english", strconv.FormatBool(cfg.English))
			printKeyValue(w, "retry", fmt.Sprintf("%d attempts, %s %s", cfg.Retry.Attempts, cfg.Retry.Strategy, cfg.Retry.Step))
			printKeyValue(w, "cache", cfg.Cache.Backend)
			printKeyValue(w, "cache_ttl", cfg.Cache.TTL.String())
			if cfg.Cache.Backend == config.CacheRedis {
				printKeyValue(w, "redis_url", cfg.Cache.RedisURL)
			}
			printKeyValue(w, "port", strconv.Itoa(cfg.Server.Port))
			printKeyValue(w, "build_dir", cfg.Server.Dir)
			return nil
		},
	}
}
