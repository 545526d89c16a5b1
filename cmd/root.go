package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	internalcmd "github.com/hostfleet/hostmcp/internal/cmd"
	"github.com/hostfleet/hostmcp/internal/flags"
)

// RootCmd should be used to represent the root 'hostmcp' command.
type RootCmd struct {
	*internalcmd.BaseCmd
}

func Execute() error {
	// Best effort: a local .env may carry HOSTMCP_API_KEY during development.
	_ = godotenv.Load()

	logger, err := configureLogger()
	if err != nil {
		return fmt.Errorf("error configuring logger: %w", err)
	}

	rootCmd := NewRootCmd(logger)

	return rootCmd.Execute()
}

func NewRootCmd(logger hclog.Logger) *cobra.Command {
	c := &RootCmd{
		BaseCmd: internalcmd.NewBaseCmd(logger),
	}

	rootCmd := &cobra.Command{
		Use:          "hostmcp <command> [args]",
		Short:        "'hostmcp' exposes the HostFleet hosting API as MCP tools.",
		Long:         c.longDescription(),
		SilenceUsage: true,
		Version:      internalcmd.Version(),
	}

	// Global flags
	flags.InitFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(NewServeCmd(logger))
	rootCmd.AddCommand(NewDiagCmd(logger))
	rootCmd.AddCommand(NewToolsCmd(logger))

	return rootCmd
}

func (c *RootCmd) longDescription() string {
	return `'hostmcp' runs a Model Context Protocol server over stdio that exposes the
HostFleet web-hosting REST API as callable tools, with an optional HTTP status
gateway and built-in diagnostics for the provider connection.`
}

func configureLogger() (hclog.Logger, error) {
	logPath := strings.TrimSpace(os.Getenv(flags.EnvVarLogPath))

	// If HOSTMCP_LOG_PATH is not set, don't log anywhere: stdout belongs to
	// the MCP transport.
	logOutput := io.Discard

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file (%s): %w", logPath, err)
		}
		logOutput = f
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "hostmcp",
		Level:  hclog.LevelFromString(getLogLevel()),
		Output: logOutput,
	})

	return logger, nil
}

func getLogLevel() string {
	lvl := strings.ToLower(os.Getenv(flags.EnvVarLogLevel))
	switch lvl {
	case "trace", "debug", "info", "warn", "error", "off":
		return lvl
	default:
		return "info"
	}
}
