package model

// RawRecord is one candidate record as produced by an extraction strategy,
// before field normalization. The four text fields hold whatever the
// strategy reconstructed; normalization splits, reclassifies, and cleans
// them into a Record.
type RawRecord struct {
	SeriesID    string
	Title       string
	Description string
	Retention   string
	Disposition string
	Meta        Meta
}

// Record is the final normalized schema for one record series. JSON tags
// match the field names downstream collaborators persist, so encoding a
// Record produces the stable wire form.
type Record struct {
	Jurisdiction   string `json:"state"`
	ScheduleType   string `json:"schedule_type"`
	ScheduleID     string `json:"schedule_id"`
	SeriesID       string `json:"series_id"`
	Title          string `json:"series_title"`
	Description    string `json:"series_description"`
	Retention      string `json:"retention_statement"`
	RetentionYears *int   `json:"retention_years"`
	Disposition    string `json:"disposition"`
	Confidential   bool   `json:"confidential"`
	LegalCitation  string `json:"legal_citation"`
	LastUpdated    string `json:"last_updated"`
	LastChecked    string `json:"last_checked"`
}

// Result is the output of one extraction strategy after normalization and
// scoring: the ordered records it produced, the strategy's name, and its
// quality score.
type Result struct {
	Records  []Record
	Strategy string
	Score    int
}
