package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	internalcmd "github.com/hostfleet/hostmcp/internal/cmd"
	"github.com/hostfleet/hostmcp/internal/config"
	"github.com/hostfleet/hostmcp/internal/flags"
	"github.com/hostfleet/hostmcp/internal/gateway"
	"github.com/hostfleet/hostmcp/internal/hosting"
	"github.com/hostfleet/hostmcp/internal/server"
)

// ServeCmd should be used to represent the 'serve' command.
type ServeCmd struct {
	*internalcmd.BaseCmd
	Addr string
}

// NewServeCmd creates a newly configured (Cobra) command.
func NewServeCmd(logger hclog.Logger) *cobra.Command {
	c := &ServeCmd{
		BaseCmd: internalcmd.NewBaseCmd(logger),
	}

	cobraCommand := &cobra.Command{
		Use:   "serve [--addr]",
		Short: "Runs the MCP server over stdio",
		Long: "Runs the MCP server over stdio, exposing the hosting provider API as tools. " +
			"When --addr (or gateway.addr in config) is set, an HTTP status gateway runs alongside.",
		RunE: c.run,
	}

	cobraCommand.Flags().StringVar(
		&c.Addr,
		"addr",
		"",
		"Address for the optional HTTP status gateway, overrides config",
	)

	return cobraCommand
}

// run is configured (via NewServeCmd) to be called by the Cobra framework when the command is executed.
func (c *ServeCmd) run(_ *cobra.Command, _ []string) error {
	logger := c.Logger()

	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		return err
	}

	apiKey := flags.APIKey()
	if apiKey == "" {
		return fmt.Errorf("provider API key is not configured, set %s", flags.EnvVarAPIKey)
	}

	var clientOpts []hosting.Option
	if timeout, ok := cfg.Timeout(); ok {
		clientOpts = append(clientOpts, hosting.WithTimeout(timeout))
	}

	client, err := hosting.New(logger, cfg.Provider.BaseURL, apiKey, clientOpts...)
	if err != nil {
		return err
	}

	mcpServer := server.New(logger, client, cfg)

	addr := strings.TrimSpace(c.Addr)
	if addr == "" {
		addr = strings.TrimSpace(cfg.Gateway.Addr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return mcpServer.Serve(gctx)
	})

	if addr != "" {
		gw, err := gateway.NewServer(logger, client, mcpServer.Tools(), addr, gateway.CORSConfig{
			Enabled:      cfg.Gateway.CORSEnabled,
			AllowOrigins: cfg.Gateway.CORSOrigins,
		})
		if err != nil {
			return err
		}
		g.Go(func() error {
			return gw.Start(gctx)
		})
	}

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
