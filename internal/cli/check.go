package cli

import (
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and both source tables",
		Long: `Load the configuration, then load and parse the planning and
technology tables without generating anything. Reports how many
planning rows and technology products were found.

Example:
  rcgen check --config rcgen.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, cmd)
		},
	}
	return cmd
}

func runCheck(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	plan, catalog, err := loadSources(cfg)
	if err != nil {
		return err
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	formatter.Text("planning: %d orders (%s)", plan.Len(), cfg.Sources.Planning.Path)
	formatter.Text("technology: %d products (%s)", catalog.Products(), cfg.Sources.Technology.Path)
	if formatter.Format == "json" {
		return formatter.Success(map[string]any{
			"planning_orders":     plan.Len(),
			"technology_products": catalog.Products(),
		})
	}
	return nil
}
