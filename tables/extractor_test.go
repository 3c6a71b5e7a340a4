package tables

import (
	"testing"

	"github.com/archivista/schedula/dialect"
	"github.com/archivista/schedula/model"
)

func docWithGrids(grids ...model.Grid) *model.Document {
	return &model.Document{
		Meta:  model.Meta{Jurisdiction: "va", ScheduleID: "GS-101"},
		Pages: []model.Page{{Number: 1, Grids: grids}},
	}
}

func TestExtractHeaderedGrid(t *testing.T) {
	grid := model.Grid{
		{"RECORDS SERIES AND\nDESCRIPTION", "SERIES\nNUMBER", "SCHEDULED RETENTION PERIOD", "DISPOSITION METHOD"},
		{"Payroll records.\nThis series documents payroll runs.", "010101", "Retain 3 years", "Destruction"},
		{"", "TOTAL", "", ""},
	}

	records := NewGridExtractor(dialect.Virginia()).Extract(docWithGrids(grid))
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if r.SeriesID != "010101" {
		t.Errorf("SeriesID = %q, want %q", r.SeriesID, "010101")
	}
	if r.Title != "Payroll records." {
		t.Errorf("Title = %q, want %q", r.Title, "Payroll records.")
	}
	if r.Description != "This series documents payroll runs." {
		t.Errorf("Description = %q, want %q", r.Description, "This series documents payroll runs.")
	}
	if r.Retention != "Retain 3 years" {
		t.Errorf("Retention = %q, want %q", r.Retention, "Retain 3 years")
	}
	if r.Disposition != "Destruction" {
		t.Errorf("Disposition = %q, want %q", r.Disposition, "Destruction")
	}
	if r.Meta.ScheduleID != "GS-101" {
		t.Errorf("Meta.ScheduleID = %q, want %q", r.Meta.ScheduleID, "GS-101")
	}
}

func TestExtractReorderedHeaderColumns(t *testing.T) {
	grid := model.Grid{
		{"SERIES NUMBER", "RECORDS SERIES AND DESCRIPTION", "DISPOSITION METHOD", "SCHEDULED RETENTION PERIOD"},
		{"010203", "Minutes.\nBoard meeting minutes.", "Archives", "Retain permanently"},
	}

	records := NewGridExtractor(dialect.Virginia()).Extract(docWithGrids(grid))
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if r.SeriesID != "010203" {
		t.Errorf("SeriesID = %q, want %q", r.SeriesID, "010203")
	}
	if r.Retention != "Retain permanently" {
		t.Errorf("Retention = %q, want %q", r.Retention, "Retain permanently")
	}
	if r.Disposition != "Archives" {
		t.Errorf("Disposition = %q, want %q", r.Disposition, "Archives")
	}
}

func TestExtractHeaderlessGridUsesDefaultOrder(t *testing.T) {
	grid := model.Grid{
		{"Correspondence.\nRoutine letters.", "020101", "Retain 1 year", "Destruction"},
		{"Budgets.\nAnnual budget files.", "020102", "Retain 5 years", "Destruction"},
	}

	records := NewGridExtractor(dialect.Virginia()).Extract(docWithGrids(grid))
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].SeriesID != "020101" || records[1].SeriesID != "020102" {
		t.Errorf("series = %q, %q", records[0].SeriesID, records[1].SeriesID)
	}
	if records[0].Title != "Correspondence." {
		t.Errorf("Title = %q, want %q", records[0].Title, "Correspondence.")
	}
}

func TestExtractSkipsRows(t *testing.T) {
	tests := []struct {
		name string
		grid model.Grid
		want int
	}{
		{
			name: "single row grid ignored",
			grid: model.Grid{{"Only one row", "010101", "Retain", "Destroy"}},
			want: 0,
		},
		{
			name: "non numeric identifier",
			grid: model.Grid{
				{"a", "b", "c", "d"},
				{"Some text", "ABC123", "Retain", "Destroy"},
			},
			want: 0,
		},
		{
			name: "short row",
			grid: model.Grid{
				{"a", "b", "c", "d"},
				{"Some text", "010101"},
			},
			want: 0,
		},
		{
			name: "identifier with embedded newline",
			grid: model.Grid{
				{"a", "b", "c", "d"},
				{"Some text", "010\n101", "Retain 2 years", "Destruction"},
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := NewGridExtractor(dialect.Virginia()).Extract(docWithGrids(tt.grid))
			if len(records) != tt.want {
				t.Errorf("got %d records, want %d", len(records), tt.want)
			}
		})
	}
}

func TestExtractDescriptionWithoutLineBreak(t *testing.T) {
	grid := model.Grid{
		{"a", "b", "c", "d"},
		{"Payroll records. This series documents payroll runs.", "010101", "Retain 3 years", "Destruction"},
	}

	records := NewGridExtractor(dialect.Virginia()).Extract(docWithGrids(grid))
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Title != "Payroll records." {
		t.Errorf("Title = %q, want %q", records[0].Title, "Payroll records.")
	}
	if records[0].Description != "This series documents payroll runs." {
		t.Errorf("Description = %q, want %q", records[0].Description, "This series documents payroll runs.")
	}
}
