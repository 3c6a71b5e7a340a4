// Package tables extracts candidate records from pre-segmented table grids.
//
// A grid is a rows-by-columns matrix of cell text produced by an external
// table-structure reader. The extractor maps grid columns to record fields,
// either from a recognized header row or from the jurisdiction's default
// column order, and keeps only rows anchored by a six-digit series
// identifier.
package tables
