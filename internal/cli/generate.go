package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvflorin/RC-Generator/internal/batch"
	"github.com/pvflorin/RC-Generator/internal/render"
	"github.com/pvflorin/RC-Generator/internal/report"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Kind  string
	Draft bool
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <order-id>",
		Short: "Generate documents for one internal order",
		Long: `Generate the route card and/or declaration of conformity for a
single internal order.

Example:
  rcgen generate INR000055 --config rcgen.yaml
  rcgen generate INR000055 --kind coc --draft`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Kind, "kind", "both", "document kind to generate (rc|coc|both)")
	cmd.Flags().BoolVar(&opts.Draft, "draft", false, "write an email draft with the generated files attached")

	return cmd
}

func runGenerate(ctx context.Context, opts *GenerateOptions, orderID string, cmd *cobra.Command) error {
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

	result, err := runner.Run(ctx, []string{orderID})
	if err != nil {
		return WrapExitError(ExitCommandError, "generation interrupted", err)
	}
	return reportResult(formatter, result)
}

// parseKinds maps the --kind flag to renderer kinds.
func parseKinds(kind string) ([]render.Kind, error) {
	switch kind {
	case "rc":
		return []render.Kind{render.KindRouteCard}, nil
	case "coc":
		return []render.Kind{render.KindCOC}, nil
	case "both", "":
		return []render.Kind{render.KindRouteCard, render.KindCOC}, nil
	default:
		return nil, fmt.Errorf("unknown kind %q: must be rc, coc, or both", kind)
	}
}

// reportResult prints every outcome and translates failures into the
// exit code contract: code 1 when any order failed, 0 otherwise.
func reportResult(formatter *OutputFormatter, result *batch.Result) error {
	for _, out := range result.Outcomes {
		for _, doc := range out.Documents {
			formatter.Text("%s", report.Describe(doc))
		}
		if out.Err != nil {
			formatter.Text("%s", report.DescribeFailure(out.OrderID, out.Err))
		}
		for _, w := range out.Warnings {
			formatter.Text("warning: %s", report.DescribeWarning(out.OrderID, w))
		}
	}
	if result.Draft != nil {
		formatter.Text("draft saved at %s (%d attachments)", result.Draft.Path, len(result.Draft.Attached))
	}

	if formatter.Format == "json" {
		if err := formatter.Success(resultPayload(result)); err != nil {
			return WrapExitError(ExitCommandError, "failed to encode result", err)
		}
	}
	if failed := result.Failed(); failed > 0 {
		return NewExitError(ExitOrderFailure, fmt.Sprintf("%d of %d orders failed", failed, len(result.Outcomes)))
	}
	return nil
}

// outcomePayload is the JSON shape of one order outcome.
type outcomePayload struct {
	OrderID   string   `json:"order_id"`
	State     string   `json:"state"`
	Documents []string `json:"documents,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
	Error     string   `json:"error,omitempty"`
}

type resultEnvelope struct {
	RunID    string           `json:"run_id"`
	Outcomes []outcomePayload `json:"outcomes"`
	Draft    string           `json:"draft,omitempty"`
}

func resultPayload(result *batch.Result) resultEnvelope {
	env := resultEnvelope{RunID: result.RunID}
	for _, out := range result.Outcomes {
		p := outcomePayload{OrderID: out.OrderID, State: string(out.State)}
		p.Documents = report.Attachments(out.Documents)
		for _, w := range out.Warnings {
			p.Warnings = append(p.Warnings, w.String())
		}
		if out.Err != nil {
			p.Error = out.Err.Error()
		}
		env.Outcomes = append(env.Outcomes, p)
	}
	if result.Draft != nil {
		env.Draft = result.Draft.Path
	}
	return env
}
