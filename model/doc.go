// Package model provides the intermediate representation (IR) for retention
// schedule extraction.
//
// This package defines the data structures shared by every stage of the
// pipeline. Extraction strategies consume a [Document] (positioned words and
// table cell grids, grouped by page) and produce [RawRecord] values;
// normalization turns those into the final [Record] schema.
//
// # Coordinates
//
// All geometry uses top-down page coordinates, matching the output of the
// text-layout readers that feed the pipeline: Top is the distance from the
// top edge of the page, and X0/X1 are the left and right edges of a word.
//
// # Lifecycle
//
// [Word], [Grid], and [RawRecord] values exist only while a single document
// is processed and are discarded after normalization. [Record] is the only
// type that outlives a document's processing.
package model
