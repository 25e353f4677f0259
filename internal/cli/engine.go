package cli

import (
	"log/slog"

	"github.com/pvflorin/RC-Generator/internal/batch"
	"github.com/pvflorin/RC-Generator/internal/config"
	"github.com/pvflorin/RC-Generator/internal/mail"
	"github.com/pvflorin/RC-Generator/internal/order"
	"github.com/pvflorin/RC-Generator/internal/render"
	"github.com/pvflorin/RC-Generator/internal/runlog"
	"github.com/pvflorin/RC-Generator/internal/table"
	"github.com/pvflorin/RC-Generator/internal/tech"
)

// loadConfig reads the configuration for a command invocation.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	return cfg, nil
}

// loadSources loads and parses both input tables. Any load or parse
// failure is fatal to the command: without sources no order can run.
func loadSources(cfg *config.Config) (*order.Plan, *tech.Catalog, error) {
	planCols := cfg.OrderColumns()
	planTbl, err := table.Load(cfg.Sources.Planning.Path, table.Options{
		Kind:     table.KindPlanning,
		Sheet:    cfg.Sources.Planning.Sheet,
		Required: planCols.Required(),
	})
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to load planning source", err)
	}
	plan, err := order.ParsePlan(planTbl, planCols)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to parse planning source", err)
	}

	techCols := cfg.TechColumns()
	techTbl, err := table.Load(cfg.Sources.Technology.Path, table.Options{
		Kind:     table.KindTechnology,
		Sheet:    cfg.Sources.Technology.Sheet,
		Required: techCols.Required(),
	})
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to load technology source", err)
	}
	catalog, err := tech.ParseCatalog(techTbl, techCols)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to parse technology source", err)
	}

	return plan, catalog, nil
}

// newRunner assembles the batch runner from the configuration. The
// returned cleanup closes the run-log store and must always be called.
func newRunner(cfg *config.Config, draft bool) (*batch.Runner, func(), error) {
	plan, catalog, err := loadSources(cfg)
	if err != nil {
		return nil, nil, err
	}

	runner := &batch.Runner{
		Plan:      plan,
		Catalog:   catalog,
		Renderer:  render.New(nil, cfg.RenderCompany()),
		Log:       slog.Default(),
		OutputDir: cfg.Output.Dir,
		Subject:   cfg.Mail.Subject,
		From:      cfg.Mail.From,
		To:        cfg.Mail.To,
	}
	if draft {
		runner.Drafter = mail.NewDrafter(nil, cfg.Mail.DraftDir, nil)
	}

	cleanup := func() {}
	if cfg.History.Path != "" {
		store, err := runlog.Open(cfg.History.Path)
		if err != nil {
			// History is best effort; a broken run log must not block
			// generation.
			slog.Warn("run log unavailable", "path", cfg.History.Path, "err", err)
		} else {
			runner.History = store
			cleanup = func() { store.Close() }
		}
	}
	return runner, cleanup, nil
}
