package tables

import (
	"regexp"
	"strings"

	"github.com/archivista/schedula/dialect"
	"github.com/archivista/schedula/model"
)

var seriesIDPattern = regexp.MustCompile(`^\d{6}$`)

// columns maps record fields to grid column indices.
type columns struct {
	desc, id, ret, disp int
}

// defaultColumns is the column order used when a grid has no header row.
func defaultColumns() columns {
	return columns{desc: 0, id: 1, ret: 2, disp: 3}
}

// max returns the highest column index the mapping references.
func (c columns) max() int {
	m := c.desc
	for _, v := range []int{c.id, c.ret, c.disp} {
		if v > m {
			m = v
		}
	}
	return m
}

// GridExtractor produces candidate records from table grids.
type GridExtractor struct {
	profile *dialect.Profile
}

// NewGridExtractor creates a GridExtractor for the given jurisdiction
// profile.
func NewGridExtractor(profile *dialect.Profile) *GridExtractor {
	return &GridExtractor{profile: profile}
}

// Extract walks every grid on every page and returns one candidate record
// per data row anchored by a six-digit series identifier.
func (e *GridExtractor) Extract(doc *model.Document) []model.RawRecord {
	var records []model.RawRecord
	for _, page := range doc.Pages {
		for _, grid := range page.Grids {
			records = append(records, e.extractGrid(grid, doc.Meta)...)
		}
	}
	return records
}

func (e *GridExtractor) extractGrid(grid model.Grid, meta model.Meta) []model.RawRecord {
	if len(grid) < 2 {
		return nil
	}

	cols := defaultColumns()
	rows := grid
	if hasHeaderRow(grid[0]) {
		cols = mapColumns(grid[0])
		rows = grid[1:]
	}

	var records []model.RawRecord
	for _, row := range rows {
		if len(row) <= cols.max() {
			continue
		}
		seriesID := strings.TrimSpace(strings.ReplaceAll(row[cols.id], "\n", ""))
		if !seriesIDPattern.MatchString(seriesID) {
			continue
		}
		title, desc := e.splitDescriptionCell(row[cols.desc])
		records = append(records, model.RawRecord{
			SeriesID:    seriesID,
			Title:       title,
			Description: desc,
			Retention:   row[cols.ret],
			Disposition: row[cols.disp],
			Meta:        meta,
		})
	}
	return records
}

// hasHeaderRow reports whether the grid's first row looks like column
// headers rather than data.
func hasHeaderRow(row []string) bool {
	joined := strings.ToUpper(strings.Join(row, " "))
	return strings.Contains(joined, "SERIES") || strings.Contains(joined, "DESCRIPTION")
}

// mapColumns assigns field indices by keyword match against header cells.
// Fields whose keyword is absent keep the default position.
func mapColumns(header []string) columns {
	cols := defaultColumns()
	for i, h := range header {
		upper := strings.ToUpper(strings.ReplaceAll(h, "\n", " "))
		switch {
		case strings.Contains(upper, "DESCRIPTION"):
			cols.desc = i
		case strings.Contains(upper, "NUMBER"):
			cols.id = i
		case strings.Contains(upper, "RETENTION"):
			cols.ret = i
		case strings.Contains(upper, "DISPOSITION"):
			cols.disp = i
		}
	}
	return cols
}

// splitDescriptionCell separates a combined title-and-description cell. A
// cell with an embedded line break splits there; otherwise the profile's
// lead-phrase heuristic decides.
func (e *GridExtractor) splitDescriptionCell(cell string) (title, desc string) {
	if i := strings.Index(cell, "\n"); i >= 0 {
		return strings.TrimSpace(cell[:i]), strings.TrimSpace(cell[i+1:])
	}
	return e.profile.SplitTitle(cell)
}
