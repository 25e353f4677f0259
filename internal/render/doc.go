// Package render turns a resolved OrderContext into a Route Card or
// Declaration of Conformity workbook on disk.
//
// ARCHITECTURE:
//
// Grid-first rendering:
// Each document kind assembles a cell Grid (values, merges, styles)
// before anything touches the filesystem. The grid is the testable
// contract - golden tests compare grid text, and the XLSX writer is a
// thin translation layer. Swapping the output format means swapping
// the writer, not the layouts.
//
// Structured results:
// Render returns a GeneratedDocument whose Path is a first-class
// field. The human-readable Message exists for display only; no
// component may parse a path back out of it. Message wording is free
// to change (or be localized) without affecting attachments or the
// run log.
//
// Collision avoidance:
// File names embed a timestamp from the injected Clock, and writes go
// to outputDir/<orderID>/. Regenerating an order never overwrites an
// earlier document; a same-second regeneration gets a numeric suffix.
package render
