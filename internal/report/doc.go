// Package report turns engine results into operator-facing text.
//
// DESIGN
//
//   - Formatting only. Nothing in this package decides what happened;
//     it narrates structured results produced elsewhere.
//   - The attachment path of a generated document is read from the
//     result struct, never recovered from a display message. Message
//     wording can change freely without breaking downstream consumers.
//
// SURFACE
//
//   - Describe renders a one-line success summary for a document.
//   - DescribeFailure renders a one-line failure summary for an order.
//   - Attachments collects the file paths of a document slice.
package report
