// Package table loads the planning and technology spreadsheets into
// typed in-memory tables.
//
// The two upstream files are maintained independently and their header
// text drifts between revisions, so column resolution is deliberately
// forgiving: headers are matched case-insensitively, surrounding
// whitespace is trimmed, runs of inner whitespace collapse to a single
// space, and combining diacritical marks are stripped (the upstream
// headers are Romanian - "Operație" and "Operatie" must resolve to the
// same column).
//
// Row handling is equally forgiving where the data allows it:
//   - Fully-empty rows are skipped (exports commonly carry trailing
//     blanks).
//   - Repeated header rows are skipped (copy-paste merges of two
//     exports).
//   - A leading totals row above the real header is tolerated; the
//     header is the first row containing every required column.
//
// Missing required columns and unreadable files are NOT forgiven: they
// produce a *LoadError with code SOURCE_FORMAT or SOURCE_NOT_FOUND,
// which is fatal to the whole run since no orders can be resolved
// without both sources.
package table
