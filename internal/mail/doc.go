// Package mail drafts notification emails for generated documents.
//
// DESIGN
//
//   - Drafts only. Nothing here opens an SMTP connection; the shipped
//     composer serializes the message to an .eml file the operator can
//     open and send from their own client.
//   - Attachment paths arrive already resolved (report.Attachments).
//     A path that does not exist on disk is reported as an
//     ATTACHMENT_MISSING warning and skipped; the draft is still
//     written with whatever attachments remain.
//
// SURFACE
//
//   - Composer abstracts message serialization so tests can capture
//     the composed draft without touching the RFC 5322 writer.
//   - EMLComposer is the shipped implementation, built on go-mail.
//   - Drafter checks attachments, names the output file, and delegates
//     to its Composer.
package mail
