package runlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrRunNotFound is returned by ReadRun for an unknown run id.
var ErrRunNotFound = errors.New("run not found")

// ReadRun returns a run and its outcomes in input order (seq ASC).
// Documents are attached to their outcome.
func (s *Store) ReadRun(ctx context.Context, runID string) (*RunRecord, []OutcomeRecord, error) {
	var run RunRecord
	var started, finished string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, finished_at, draft_path, order_count
		FROM runs WHERE id = ?
	`, runID).Scan(&run.ID, &started, &finished, &run.DraftPath, &run.OrderCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrRunNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read run: %w", err)
	}
	if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return nil, nil, fmt.Errorf("read run: parse started_at: %w", err)
	}
	if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
		return nil, nil, fmt.Errorf("read run: parse finished_at: %w", err)
	}

	outcomes, err := s.readOutcomes(ctx, runID)
	if err != nil {
		return nil, nil, err
	}
	return &run, outcomes, nil
}

// RecentRuns returns up to limit runs, most recent first. Ties on
// start time break on id so the ordering is deterministic.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, draft_path, order_count
		FROM runs
		ORDER BY started_at DESC, id ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var run RunRecord
		var started, finished string
		if err := rows.Scan(&run.ID, &started, &finished, &run.DraftPath, &run.OrderCount); err != nil {
			return nil, fmt.Errorf("recent runs: %w", err)
		}
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("recent runs: parse started_at: %w", err)
		}
		if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("recent runs: parse finished_at: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (s *Store) readOutcomes(ctx context.Context, runID string) ([]OutcomeRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, seq, order_id, state, reason
		FROM outcomes
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("read outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []OutcomeRecord
	index := make(map[string]int)
	for rows.Next() {
		var out OutcomeRecord
		if err := rows.Scan(&out.RunID, &out.Seq, &out.OrderID, &out.State, &out.Reason); err != nil {
			return nil, fmt.Errorf("read outcomes: %w", err)
		}
		index[out.OrderID] = len(outcomes)
		outcomes = append(outcomes, out)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	docs, err := s.db.QueryContext(ctx, `
		SELECT order_id, kind, path, generated_at
		FROM documents
		WHERE run_id = ?
		ORDER BY order_id ASC, generated_at ASC, path ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}
	defer docs.Close()

	for docs.Next() {
		var doc DocumentRecord
		var generated string
		if err := docs.Scan(&doc.OrderID, &doc.Kind, &doc.Path, &generated); err != nil {
			return nil, fmt.Errorf("read documents: %w", err)
		}
		if doc.GeneratedAt, err = time.Parse(time.RFC3339Nano, generated); err != nil {
			return nil, fmt.Errorf("read documents: parse generated_at: %w", err)
		}
		if i, ok := index[doc.OrderID]; ok {
			outcomes[i].Documents = append(outcomes[i].Documents, doc)
		}
	}
	return outcomes, docs.Err()
}
