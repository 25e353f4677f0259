package runlog

import (
	"context"
	"fmt"
	"time"
)

// WriteRun inserts a run record. Uses ON CONFLICT(id) DO NOTHING for
// idempotency; re-recording the same run id is silently ignored.
func (s *Store) WriteRun(ctx context.Context, run RunRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, draft_path, order_count)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
		run.DraftPath,
		run.OrderCount,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

// WriteOutcome inserts one order outcome and its generated documents.
// The run referenced by RunID must already exist. Duplicate
// (run_id, seq) pairs are silently ignored.
func (s *Store) WriteOutcome(ctx context.Context, out OutcomeRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write outcome: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO outcomes (run_id, seq, order_id, state, reason)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(run_id, seq) DO NOTHING
	`,
		out.RunID, out.Seq, out.OrderID, out.State, out.Reason,
	)
	if err != nil {
		return fmt.Errorf("write outcome: %w", err)
	}

	for _, doc := range out.Documents {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO documents (run_id, order_id, kind, path, generated_at)
			VALUES (?, ?, ?, ?, ?)
		`,
			out.RunID, doc.OrderID, doc.Kind, doc.Path,
			doc.GeneratedAt.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("write outcome document: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write outcome: %w", err)
	}
	return nil
}
