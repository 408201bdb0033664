package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blogscope/internal/server"
	errs "github.com/matzehuels/blogscope/pkg/errors"
)

// serveCommand creates the static host command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		port int
		dir  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the built web front end",
		Long: `Serve the built web front end from a build directory.

Static assets are cached for a year, HTML is never cached, and unknown paths
fall back to index.html so client-side routes survive a reload. The port can
also be set with PORT or BLOGSCOPE_SERVER_PORT.`,
		Example: `  blogscope serve --dir build --port 8080`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config()
			if cmd.Flags().Changed("port") {
				if err := errs.ValidatePort(strconv.Itoa(port)); err != nil {
					return err
				}
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("dir") {
				cfg.Server.Dir = dir
			}

			srv, err := server.New(server.Options{
				Dir:       cfg.Server.Dir,
				Port:      cfg.Server.Port,
				APIOrigin: cfg.BaseURL,
				Logger:    c.Logger,
			})
			if err != nil {
				return err
			}

			w := stdout(cmd)
			printSuccess(w, "Serving %s", cfg.Server.Dir)
			printDetail(w, "http://localhost:%d", cfg.Server.Port)
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default from config, 3000)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "build directory (default from config, build)")
	return cmd
}
