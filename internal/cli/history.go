package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/pvflorin/RC-Generator/internal/runlog"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit int
	RunID string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent batch runs from the run log",
		Long: `Show recent batch runs recorded in the run log, most recent
first. With --run, show the per-order outcomes of one run.

Example:
  rcgen history --config rcgen.yaml
  rcgen history --run 7f9c3f1a-... --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 10, "maximum number of runs to show")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "show the outcomes of one run id")

	return cmd
}

func runHistory(ctx context.Context, opts *HistoryOptions, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	if cfg.History.Path == "" {
		return NewExitError(ExitCommandError, "run history is disabled: history.path is empty")
	}

	store, err := runlog.Open(cfg.History.Path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open run log", err)
	}
	defer store.Close()

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.RunID != "" {
		return showRun(ctx, formatter, store, opts.RunID)
	}
	return showRecent(ctx, formatter, store, opts.Limit)
}

func showRecent(ctx context.Context, formatter *OutputFormatter, store *runlog.Store, limit int) error {
	runs, err := store.RecentRuns(ctx, limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read run log", err)
	}
	if len(runs) == 0 {
		formatter.Text("no runs recorded")
	}
	for _, run := range runs {
		formatter.Text("%s  %s  %d orders  %s",
			run.StartedAt.Local().Format(time.DateTime), run.ID, run.OrderCount, run.DraftPath)
	}
	if formatter.Format == "json" {
		return formatter.Success(runs)
	}
	return nil
}

func showRun(ctx context.Context, formatter *OutputFormatter, store *runlog.Store, runID string) error {
	run, outcomes, err := store.ReadRun(ctx, runID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read run", err)
	}

	formatter.Text("run %s  started %s  %d orders",
		run.ID, run.StartedAt.Local().Format(time.DateTime), run.OrderCount)
	for _, out := range outcomes {
		if out.Reason != "" {
			formatter.Text("  %s  %s  %s", out.OrderID, out.State, out.Reason)
			continue
		}
		formatter.Text("  %s  %s", out.OrderID, out.State)
		for _, doc := range out.Documents {
			formatter.Text("    %s", doc.Path)
		}
	}
	if formatter.Format == "json" {
		return formatter.Success(map[string]any{"run": run, "outcomes": outcomes})
	}
	return nil
}
