// Package layout reconstructs row and column structure from loosely
// positioned words when a document exposes no reliable table grid.
//
// The [Segmenter] works a page at a time: it calibrates the column gutters
// from header labels, drops header/footer boilerplate, finds the six-digit
// series anchors that delimit rows, and slices the page into vertical bands,
// one per candidate record. A record that continues onto the next page is
// carried across as an explicit open band in the fold state rather than as
// hidden mutable state.
package layout
