package htmlgrid

import (
	"context"
	"regexp"
	"strings"

	"github.com/archivista/schedula/dialect"
	"github.com/archivista/schedula/model"
)

var seriesIDPattern = regexp.MustCompile(`^\d{6}$`)

// MarkerExtractor reads candidate records from the three-column grids that
// OCR-to-HTML converters produce for scanned schedules: a combined
// title-and-description cell, the series identifier, and the retention
// statement. Rows whose identifier and retention cells are both empty
// continue the description of the previous record.
//
// It satisfies the processor's Strategy interface.
type MarkerExtractor struct {
	profile *dialect.Profile
}

// NewMarkerExtractor creates a MarkerExtractor for the given jurisdiction
// profile.
func NewMarkerExtractor(profile *dialect.Profile) *MarkerExtractor {
	return &MarkerExtractor{profile: profile}
}

// Name identifies the strategy in results and logs.
func (e *MarkerExtractor) Name() string { return "marker-html" }

// Extract walks the document's grids and returns the records found in
// three-column rows.
func (e *MarkerExtractor) Extract(_ context.Context, doc *model.Document) ([]model.RawRecord, error) {
	var records []model.RawRecord
	var open *model.RawRecord
	closeOpen := func() {
		if open != nil {
			records = append(records, *open)
			open = nil
		}
	}

	for _, page := range doc.Pages {
		for _, grid := range page.Grids {
			for _, row := range grid {
				if len(row) != 3 {
					continue
				}
				combined := row[0]
				seriesID := strings.TrimSpace(strings.ReplaceAll(row[1], "\n", ""))
				retention := strings.TrimSpace(row[2])

				upper := strings.ToUpper(combined)
				if strings.Contains(upper, "RECORDS SERIES") || strings.Contains(upper, "EFFECTIVE SCHEDULE") {
					continue
				}

				switch {
				case seriesIDPattern.MatchString(seriesID):
					closeOpen()
					title, desc := e.profile.SplitTitle(flatten(combined))
					open = &model.RawRecord{
						SeriesID:    seriesID,
						Title:       title,
						Description: desc,
						Retention:   retention,
						Meta:        doc.Meta,
					}
				case open != nil && seriesID == "" && retention == "":
					if text := flatten(combined); text != "" {
						if open.Description != "" {
							open.Description += " " + text
						} else {
							open.Description = text
						}
					}
				}
			}
		}
	}
	closeOpen()
	return records, nil
}

func flatten(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}
