package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	internalcmd "github.com/hostfleet/hostmcp/internal/cmd"
	"github.com/hostfleet/hostmcp/internal/cmd/output"
	"github.com/hostfleet/hostmcp/internal/config"
	"github.com/hostfleet/hostmcp/internal/diag"
	"github.com/hostfleet/hostmcp/internal/flags"
	"github.com/hostfleet/hostmcp/internal/hosting"
)

// DiagCmd should be used to represent the 'diag' command.
type DiagCmd struct {
	*internalcmd.BaseCmd
	Format  internalcmd.OutputFormat
	Timeout time.Duration
}

// NewDiagCmd creates a newly configured (Cobra) command.
func NewDiagCmd(logger hclog.Logger) *cobra.Command {
	c := &DiagCmd{
		BaseCmd: internalcmd.NewBaseCmd(logger),
		Format:  internalcmd.FormatText,
	}

	cobraCommand := &cobra.Command{
		Use:   "diag",
		Short: "Runs connection diagnostics against the hosting provider",
		Long: "Runs a fixed sequence of direct provider API calls (configuration, reachability, " +
			"domain and package listing) and reports each outcome. Exits non-zero when any check fails.",
		RunE: c.run,
	}

	cobraCommand.Flags().Var(
		&c.Format,
		"format",
		fmt.Sprintf("Output format, one of: %s", internalcmd.AllowedOutputFormats().String()),
	)

	cobraCommand.Flags().DurationVar(
		&c.Timeout,
		"timeout",
		60*time.Second,
		"Overall timeout for the diagnostic run",
	)

	return cobraCommand
}

// run is configured (via NewDiagCmd) to be called by the Cobra framework when the command is executed.
func (c *DiagCmd) run(cobraCmd *cobra.Command, _ []string) error {
	logger := c.Logger()

	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		return err
	}

	var clientOpts []hosting.Option
	if timeout, ok := cfg.Timeout(); ok {
		clientOpts = append(clientOpts, hosting.WithTimeout(timeout))
	}

	client, err := hosting.New(logger, cfg.Provider.BaseURL, flags.APIKey(), clientOpts...)
	if err != nil {
		return err
	}

	// Text narration happens live inside the runner; structured formats
	// suppress it and render the collected results instead.
	narration := cobraCmd.OutOrStdout()
	if c.Format != internalcmd.FormatText {
		narration = io.Discard
	}

	runner := diag.NewRunner(logger, client, narration)

	ctx, cancel := context.WithTimeout(cobraCmd.Context(), c.Timeout)
	defer cancel()

	results, failures := runner.Run(ctx)

	switch c.Format {
	case internalcmd.FormatJSON:
		if err := output.NewJSONHandler[diag.Result](cobraCmd.OutOrStdout(), 2).HandleResults(results); err != nil {
			return err
		}
	case internalcmd.FormatYAML:
		if err := output.NewYAMLHandler[diag.Result](cobraCmd.OutOrStdout(), 2).HandleResults(results); err != nil {
			return err
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d diagnostic check(s) failed", failures)
	}
	return nil
}
