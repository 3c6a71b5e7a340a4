package schedula

import (
	"regexp"
	"strings"

	"github.com/archivista/schedula/dialect"
	"github.com/archivista/schedula/model"
)

// EmptyScore is the score of an empty record set; it always loses.
const EmptyScore = -9999

var embeddedSeriesID = regexp.MustCompile(`\d{6}`)

// Scorer evaluates the quality of an extracted record set so the processor
// can pick the winning strategy.
type Scorer struct {
	profile *dialect.Profile
}

// NewScorer creates a Scorer for the given jurisdiction profile.
func NewScorer(profile *dialect.Profile) *Scorer {
	return &Scorer{profile: profile}
}

// Score rates a record set. The baseline is ten points per record; each
// defect subtracts from it and each derived retention period adds a small
// bonus.
func (s *Scorer) Score(records []model.Record) int {
	if len(records) == 0 {
		return EmptyScore
	}

	score := len(records) * 10
	seen := make(map[string]bool, len(records))

	for _, r := range records {
		if seen[r.SeriesID] {
			score -= 20
		}
		seen[r.SeriesID] = true

		if r.Title == "" {
			score -= 15
		}
		if r.Description == "" {
			score -= 5
		}
		if r.Retention == "" {
			score -= 10
		}

		// A title that reads like description text means the split between
		// the two fields landed in the wrong place.
		lower := strings.ToLower(r.Title)
		if s.profile.LeadPrefix != "" && strings.HasPrefix(lower, s.profile.LeadPrefix) {
			score -= 15
		}
		for _, phrase := range s.profile.LeadPhrases {
			if strings.HasPrefix(lower, strings.ToLower(phrase)+" ") {
				score -= 15
				break
			}
		}

		if r.Description != "" && r.Title == "" {
			score -= 10
		}
		if s.titleHasCitationToken(r.Title) {
			score -= 10
		}
		if embeddedSeriesID.MatchString(r.Title) {
			score -= 10
		}

		if r.RetentionYears != nil {
			score += 3
		}
	}
	return score
}

func (s *Scorer) titleHasCitationToken(title string) bool {
	for _, tok := range s.profile.CitationTokens {
		if strings.Contains(title, tok) {
			return true
		}
	}
	return false
}
