package cli

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions
	File  string
	Kind  string
	Draft bool
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batch [order-id...]",
		Short: "Generate documents for a list of internal orders",
		Long: `Generate documents for several internal orders in one run,
sequentially and in the given order. A failing order is reported and
the run continues with the next one.

Order ids come from the arguments, from --file (one id per line,
blank lines and # comments ignored), or both.

Example:
  rcgen batch INR000055 INR000060 --config rcgen.yaml
  rcgen batch --file orders.txt --draft`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.Context(), opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "file with one order id per line")
	cmd.Flags().StringVar(&opts.Kind, "kind", "both", "document kind to generate (rc|coc|both)")
	cmd.Flags().BoolVar(&opts.Draft, "draft", false, "write one email draft with all generated files attached")

	return cmd
}

func runBatch(ctx context.Context, opts *BatchOptions, args []string, cmd *cobra.Command) error {
	orderIDs := append([]string(nil), args...)
	if opts.File != "" {
		fromFile, err := readOrderFile(opts.File)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read order list", err)
		}
		orderIDs = append(orderIDs, fromFile...)
	}
	if len(orderIDs) == 0 {
		return NewExitError(ExitCommandError, "no order ids given: pass them as arguments or via --file")
	}

	kinds, err := parseKinds(opts.Kind)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --kind", err)
	}

	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	runner, cleanup, err := newRunner(cfg, opts.Draft)
	if err != nil {
		return err
	}
	defer cleanup()
	runner.Kinds = kinds

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result, err := runner.Run(ctx, orderIDs)
	if err != nil {
		return WrapExitError(ExitCommandError, "batch interrupted", err)
	}
	return reportResult(formatter, result)
}

// readOrderFile parses an order list: one id per line, blank lines and
// lines starting with # skipped.
func readOrderFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	return ids, scanner.Err()
}
