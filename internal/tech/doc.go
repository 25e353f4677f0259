// Package tech derives the ordered manufacturing operation sequence
// for a product code from the technology spreadsheet.
//
// Each product code maps to many steps; the step sequence number
// defines ordering and must be unique per product. Two data-entry
// defects are detected when a sequence is requested:
//
//   - Duplicate sequence numbers reject the sequence with a
//     DUPLICATE_STEP error. The ordering is ambiguous and a route card
//     generated from it could swap operations.
//   - Non-contiguous numbers (a hole in the +1 progression) are
//     recoverable: the steps are still returned in ascending order,
//     together with a SEQUENCE_GAP warning, so the caller can flag a
//     likely missing operation instead of silently printing an
//     incomplete route card.
package tech
