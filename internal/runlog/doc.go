// Package runlog provides SQLite-backed history of batch runs.
//
// The log is append-only:
//   - Runs: one record per batch invocation
//   - Outcomes: one record per order inside a run, in input order
//   - Documents: the files generated for an order inside a run
//
// # Critical Patterns
//
//   - Ordering inside a run uses seq INTEGER (input position), never
//     timestamps. Reads always include ORDER BY seq ASC so history
//     output is stable.
//   - Writes use ON CONFLICT DO NOTHING; re-recording a run is
//     harmless.
//   - History is best effort for the engine: a failed write never
//     fails the batch that produced it.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: outcomes and documents reference their run
package runlog
