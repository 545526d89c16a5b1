package cmd

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	internalcmd "github.com/hostfleet/hostmcp/internal/cmd"
	"github.com/hostfleet/hostmcp/internal/cmd/output"
	"github.com/hostfleet/hostmcp/internal/config"
	"github.com/hostfleet/hostmcp/internal/flags"
	"github.com/hostfleet/hostmcp/internal/server"
)

// ToolEntry is the output row for one registered tool.
type ToolEntry struct {
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// ToolsCmd should be used to represent the 'tools' command.
type ToolsCmd struct {
	*internalcmd.BaseCmd
	Format internalcmd.OutputFormat
}

// NewToolsCmd creates a newly configured (Cobra) command.
func NewToolsCmd(logger hclog.Logger) *cobra.Command {
	c := &ToolsCmd{
		BaseCmd: internalcmd.NewBaseCmd(logger),
		Format:  internalcmd.FormatText,
	}

	cobraCommand := &cobra.Command{
		Use:   "tools",
		Short: "Lists the tools the MCP server would register",
		Long:  "Lists the tool catalog after applying the configured allowlist, without starting the server.",
		RunE:  c.run,
	}

	cobraCommand.Flags().Var(
		&c.Format,
		"format",
		fmt.Sprintf("Output format, one of: %s", internalcmd.AllowedOutputFormats().String()),
	)

	return cobraCommand
}

// run is configured (via NewToolsCmd) to be called by the Cobra framework when the command is executed.
func (c *ToolsCmd) run(cobraCmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		return err
	}

	// The catalog is static; a nil API is fine because no handler runs here.
	entries := make([]ToolEntry, 0)
	for _, def := range server.Catalog(nil) {
		if !cfg.ToolAllowed(def.Tool.Name) {
			continue
		}
		entries = append(entries, ToolEntry{
			Name:        def.Tool.Name,
			Description: def.Tool.Description,
		})
	}

	handler := c.outputHandler(cobraCmd.OutOrStdout())
	return handler.HandleResults(entries)
}

func (c *ToolsCmd) outputHandler(w io.Writer) output.Handler[ToolEntry] {
	switch c.Format {
	case internalcmd.FormatJSON:
		return output.NewJSONHandler[ToolEntry](w, 2)
	case internalcmd.FormatYAML:
		return output.NewYAMLHandler[ToolEntry](w, 2)
	default:
		return output.NewTextHandler[ToolEntry](w, func(w io.Writer, e ToolEntry) error {
			_, err := fmt.Fprintf(w, "%s\n  %s\n", e.Name, e.Description)
			return err
		})
	}
}
