package batch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pvflorin/RC-Generator/internal/mail"
	"github.com/pvflorin/RC-Generator/internal/order"
	"github.com/pvflorin/RC-Generator/internal/render"
	"github.com/pvflorin/RC-Generator/internal/report"
	"github.com/pvflorin/RC-Generator/internal/runlog"
	"github.com/pvflorin/RC-Generator/internal/tech"
)

// State names one stage of an order's lifecycle inside a run.
type State string

const (
	StatePending    State = "pending"
	StateResolving  State = "resolving"
	StateSequencing State = "sequencing"
	StateRendering  State = "rendering"
	StateAttached   State = "attached"
	StateDone       State = "done"
	StateFailed     State = "failed"
)

// Outcome is the final result for one order. Err is nil exactly when
// State is StateDone.
type Outcome struct {
	OrderID   string
	State     State
	Documents []*render.GeneratedDocument
	Warnings  []tech.Warning
	Err       error
}

// Result is one batch run. Outcomes preserve the input order.
type Result struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Outcomes   []Outcome

	// Draft is set when drafting was requested and succeeded.
	Draft *mail.DraftStatus
}

// Failed returns the number of failed outcomes.
func (r *Result) Failed() int {
	n := 0
	for _, out := range r.Outcomes {
		if out.State == StateFailed {
			n++
		}
	}
	return n
}

// Documents returns every generated document across all outcomes, in
// generation order.
func (r *Result) Documents() []*render.GeneratedDocument {
	var docs []*render.GeneratedDocument
	for _, out := range r.Outcomes {
		docs = append(docs, out.Documents...)
	}
	return docs
}

// Runner drives the pipeline. Plan, Catalog, and Renderer are
// mandatory; Drafter and History are optional side channels.
type Runner struct {
	Plan     *order.Plan
	Catalog  *tech.Catalog
	Renderer *render.Renderer

	// Drafter, when set, writes one email draft per run with every
	// generated document attached.
	Drafter *mail.Drafter

	// History, when set, records the run and its outcomes. Write
	// failures are logged, never returned.
	History *runlog.Store

	Log   *slog.Logger
	Clock render.Clock

	// OutputDir is the root under which per-order directories are
	// created.
	OutputDir string

	// Kinds selects which documents to generate per order. Empty means
	// both the route card and the declaration of conformity.
	Kinds []render.Kind

	// Subject prefixes the draft email subject. From and To seed the
	// draft headers; the operator completes them before sending.
	Subject string
	From    string
	To      []string
}

// Run processes the order ids sequentially and returns the per-order
// outcomes in input order. A failing order never aborts the run; the
// only early exit is context cancellation, checked between orders, and
// then Run returns the partial result together with ctx.Err().
func (r *Runner) Run(ctx context.Context, orderIDs []string) (*Result, error) {
	log := r.log()
	kinds := r.kinds()
	clock := r.clock()

	result := &Result{
		RunID:     uuid.NewString(),
		StartedAt: clock.Now(),
	}
	log.Info("batch started", "run_id", result.RunID, "orders", len(orderIDs))

	for _, id := range orderIDs {
		if err := ctx.Err(); err != nil {
			result.FinishedAt = clock.Now()
			log.Warn("batch cancelled", "run_id", result.RunID, "processed", len(result.Outcomes))
			return result, err
		}
		result.Outcomes = append(result.Outcomes, r.runOrder(log, id, kinds))
	}

	if r.Drafter != nil {
		r.draft(log, result)
	}
	result.FinishedAt = clock.Now()

	if r.History != nil {
		r.record(ctx, log, result)
	}

	log.Info("batch finished",
		"run_id", result.RunID,
		"orders", len(result.Outcomes),
		"failed", result.Failed())
	return result, nil
}

// runOrder walks one order through the state machine. Every failure
// path returns a Failed outcome carrying the typed error.
func (r *Runner) runOrder(log *slog.Logger, orderID string, kinds []render.Kind) Outcome {
	out := Outcome{OrderID: orderID, State: StatePending}

	out.State = StateResolving
	log.Debug("resolving order", "order", orderID)
	octx, err := r.Plan.Resolve(orderID, r.Catalog)
	if err != nil {
		// Resolve covers the sequencing stage too; a duplicate-step
		// rejection fails there, not at the planning lookup.
		if tech.IsDuplicateStep(err) {
			out.State = StateSequencing
		}
		log.Error("order failed", "order", orderID, "stage", out.State, "err", err)
		out.State = StateFailed
		out.Err = err
		return out
	}
	out.Warnings = octx.Warnings
	for _, w := range octx.Warnings {
		log.Warn("sequencing warning", "order", orderID, "warning", w.String())
	}

	out.State = StateRendering
	for _, kind := range kinds {
		doc, err := r.Renderer.Render(kind, octx, r.OutputDir)
		if err != nil {
			log.Error("order failed", "order", orderID, "stage", out.State, "err", err)
			out.State = StateFailed
			out.Err = err
			return out
		}
		log.Info("document generated", "order", orderID, "kind", kind, "path", doc.Path)
		out.Documents = append(out.Documents, doc)
	}

	out.State = StateDone
	return out
}

// draft writes one email draft covering the whole run. Orders whose
// documents made it into the draft advance through StateAttached; a
// drafting failure is logged and leaves Result.Draft nil.
func (r *Runner) draft(log *slog.Logger, result *Result) {
	docs := result.Documents()
	if len(docs) == 0 {
		log.Info("no documents generated; skipping draft", "run_id", result.RunID)
		return
	}

	for i := range result.Outcomes {
		if result.Outcomes[i].State == StateDone && len(result.Outcomes[i].Documents) > 0 {
			result.Outcomes[i].State = StateAttached
		}
	}

	status, err := r.Drafter.Draft(mail.Draft{
		From:    r.From,
		To:      r.To,
		Subject: r.subject(result),
		Body:    r.body(result),
	}, report.Attachments(docs))
	if err != nil {
		log.Error("draft failed", "run_id", result.RunID, "err", err)
	} else {
		result.Draft = status
		for _, w := range status.Warnings {
			log.Warn("draft warning", "run_id", result.RunID, "warning", w.String())
		}
		log.Info("draft written", "run_id", result.RunID, "path", status.Path,
			"attached", len(status.Attached), "missing", len(status.Missing))
	}

	for i := range result.Outcomes {
		if result.Outcomes[i].State == StateAttached {
			result.Outcomes[i].State = StateDone
		}
	}
}

func (r *Runner) subject(result *Result) string {
	subject := strings.TrimSpace(r.Subject)
	if subject == "" {
		subject = "Generated documents"
	}
	var ids []string
	for _, out := range result.Outcomes {
		if len(out.Documents) > 0 {
			ids = append(ids, out.OrderID)
		}
	}
	return fmt.Sprintf("%s: %s", subject, strings.Join(ids, ", "))
}

func (r *Runner) body(result *Result) string {
	var b strings.Builder
	b.WriteString("The following documents were generated:\n\n")
	for _, out := range result.Outcomes {
		for _, doc := range out.Documents {
			b.WriteString("  - " + report.Describe(doc) + "\n")
		}
		if out.Err != nil {
			b.WriteString("  - " + report.DescribeFailure(out.OrderID, out.Err) + "\n")
		}
	}
	return b.String()
}

// record persists the run. Best effort: failures are logged only.
func (r *Runner) record(ctx context.Context, log *slog.Logger, result *Result) {
	draftPath := ""
	if result.Draft != nil {
		draftPath = result.Draft.Path
	}
	err := r.History.WriteRun(ctx, runlog.RunRecord{
		ID:         result.RunID,
		StartedAt:  result.StartedAt,
		FinishedAt: result.FinishedAt,
		DraftPath:  draftPath,
		OrderCount: len(result.Outcomes),
	})
	if err != nil {
		log.Error("run-log write failed", "run_id", result.RunID, "err", err)
		return
	}

	for seq, out := range result.Outcomes {
		rec := runlog.OutcomeRecord{
			RunID:   result.RunID,
			Seq:     seq,
			OrderID: out.OrderID,
			State:   string(out.State),
		}
		if out.Err != nil {
			rec.Reason = out.Err.Error()
		}
		for _, doc := range out.Documents {
			rec.Documents = append(rec.Documents, runlog.DocumentRecord{
				OrderID:     doc.OrderID,
				Kind:        string(doc.Kind),
				Path:        doc.Path,
				GeneratedAt: doc.GeneratedAt,
			})
		}
		if err := r.History.WriteOutcome(ctx, rec); err != nil {
			log.Error("run-log write failed", "run_id", result.RunID, "order", out.OrderID, "err", err)
		}
	}
}

func (r *Runner) log() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return slog.Default()
}

func (r *Runner) kinds() []render.Kind {
	if len(r.Kinds) > 0 {
		return r.Kinds
	}
	return []render.Kind{render.KindRouteCard, render.KindCOC}
}

func (r *Runner) clock() render.Clock {
	if r.Clock != nil {
		return r.Clock
	}
	return render.SystemClock{}
}
