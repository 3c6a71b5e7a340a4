package model

// Grid is a pre-segmented 2-D table cell grid: rows of cell text, as
// produced by an external table-structure reader. Cells may contain embedded
// newlines where the reader preserved line breaks.
type Grid [][]string

// RowCount returns the number of rows in the grid.
func (g Grid) RowCount() int {
	return len(g)
}

// Page holds the extracted content of a single document page: the positioned
// words from the text-layout reader and any table cell grids from the
// table-structure reader. Either slice may be empty.
type Page struct {
	Number int
	Width  float64
	Height float64
	Words  []Word
	Grids  []Grid
}

// Meta carries the per-document metadata supplied by the caller. None of it
// is derived by the extraction core itself.
type Meta struct {
	// Jurisdiction is the issuing jurisdiction code (e.g. "va", "oh").
	Jurisdiction string

	// ScheduleType is "general" or "specific".
	ScheduleType string

	// ScheduleID identifies the schedule document (e.g. "GS-102").
	ScheduleID string

	// EffectiveDate is the schedule's effective date in ISO-8601 date form,
	// or empty when unknown.
	EffectiveDate string
}

// Document is the full input for one schedule document: metadata plus the
// per-page word and grid content.
type Document struct {
	Meta  Meta
	Pages []Page
}
