// Package medical harvests scientific articles from PubMed Central pages.
// It fetches each catalogued article, extracts its abstract and body
// sections, previews sentence-aligned excerpts, and hands the full text to
// document and audio renderers.
//
// This package contains domain types, pure text algorithms and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// gofpdf/, gemini/, sqlite/).
package medical
