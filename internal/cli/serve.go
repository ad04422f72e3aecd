package cli

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/internal/config"
	"github.com/matzehuels/mosaic/pkg/api"
)

// serveCommand creates the serve command running the HTTP transform service.
func (c *CLI) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP transform service",
		Long: `Run the HTTP transform service.

The service is stateless: every request carries the layout it operates on
and gets back updates or a new layout. It stops gracefully on interrupt.

Endpoints:
  GET  /healthz
  POST /v1/build, /v1/leaves, /v1/corner, /v1/resolve, /v1/boxes, /v1/apply
  POST /v1/ops/insert, /v1/ops/remove, /v1/ops/hide, /v1/ops/expand, /v1/ops/drag`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ln, err := net.Listen("tcp", c.cfg.Serve.Addr)
			if err != nil {
				return err
			}
			return c.runServe(cmd, ln)
		},
	}

	cmd.Flags().String("addr", config.DefaultAddr, "listen address")
	cmd.Flags().Duration("shutdown-timeout", config.DefaultShutdownTimeout, "grace period for in-flight requests")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, ln net.Listener) error {
	srv := api.NewServer(api.ServerConfig{
		Addr:            c.cfg.Serve.Addr,
		ShutdownTimeout: c.cfg.Serve.ShutdownTimeout,
		Logger:          c.Logger,
		Options: api.Options{
			Direction:        c.cfg.Direction(),
			ExpandPercentage: c.cfg.ExpandPercentage,
		},
	})

	status := cmd.ErrOrStderr()
	printLink(status, "Listening", "http://"+displayAddr(ln.Addr()))
	printKeyValue(status, "Direction", c.cfg.StartDirection)
	printKeyValue(status, "Expand", pct(c.cfg.ExpandPercentage)+"%")

	err := srv.ServeListener(cmd.Context(), ln)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// displayAddr replaces an unspecified host with localhost.
func displayAddr(addr net.Addr) string {
	s := addr.String()
	host, port, err := net.SplitHostPort(s)
	if err != nil {
		return s
	}
	if host == "" || host == "::" || strings.HasPrefix(host, "0.0.0.0") {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
