package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/archivista/schedula/dialect"
	"github.com/archivista/schedula/model"
)

var (
	whitespacePattern    = regexp.MustCompile(`\s+`)
	permanentPattern     = regexp.MustCompile(`(?i)\bpermanently?\b`)
	retainResiduePattern = regexp.MustCompile(`(?i)^Retain[\s.]*$`)
	thenPattern          = regexp.MustCompile(`(?i)(?:,\s*)?then\s+(.*)`)
	trailingPunct        = regexp.MustCompile(`[.,;:]$`)
	confidentialPattern  = regexp.MustCompile(`(?i)\b(Non-confidential|Confidential)\b`)
	yearsPattern         = regexp.MustCompile(`(\d+)\s*[Yy]ear`)
)

// dispositionKeywords are excised from retention text when the disposition
// field lacks them.
var dispositionKeywords = []struct {
	pattern *regexp.Regexp
	word    string
}{
	{regexp.MustCompile(`(?i)\bDestruction\b`), "Destruction"},
	{regexp.MustCompile(`(?i)\bArchives\b`), "Archives"},
}

// Normalizer applies the ordered field-cleanup rules for one jurisdiction
// profile. It is stateless and safe for concurrent use.
type Normalizer struct {
	profile *dialect.Profile
}

// New creates a Normalizer for the given jurisdiction profile.
func New(profile *dialect.Profile) *Normalizer {
	return &Normalizer{profile: profile}
}

// Normalize converts one raw candidate record into the output schema. It is
// deterministic and performs no I/O; the caller stamps LastChecked.
func (n *Normalizer) Normalize(raw model.RawRecord) model.Record {
	title := collapse(raw.Title)
	desc := collapse(raw.Description)
	retention := collapse(raw.Retention)
	disposition := collapse(raw.Disposition)

	if disposition == "" {
		if phrase, start, ok := n.profile.TrailingDisposition(retention); ok {
			disposition = titleCase(phrase)
			retention = strings.TrimSpace(retention[:start])
		}
	}

	if disposition == "" && permanentPattern.MatchString(retention) {
		disposition = "Permanent"
		retention = collapse(permanentPattern.ReplaceAllString(retention, ""))
		retention = strings.TrimSpace(retainResiduePattern.ReplaceAllString(retention, ""))
	}

	if disposition == "" {
		retention, disposition = n.splitThenClause(retention)
	}

	retention, disposition = exciseConfidentiality(retention, disposition)
	retention, disposition = exciseDispositionKeywords(retention, disposition)

	desc, retention, citation := n.extractCitation(desc, retention)

	scheduleType := raw.Meta.ScheduleType
	if scheduleType == "" {
		scheduleType = n.profile.ScheduleType(raw.Meta.ScheduleID)
	}
	jurisdiction := raw.Meta.Jurisdiction
	if jurisdiction == "" {
		jurisdiction = n.profile.Name
	}

	return model.Record{
		Jurisdiction:   jurisdiction,
		ScheduleType:   scheduleType,
		ScheduleID:     raw.Meta.ScheduleID,
		SeriesID:       raw.SeriesID,
		Title:          title,
		Description:    desc,
		Retention:      retention,
		RetentionYears: n.retentionYears(retention, disposition),
		Disposition:    disposition,
		Confidential:   n.isConfidential(disposition),
		LegalCitation:  citation,
		LastUpdated:    raw.Meta.EffectiveDate,
	}
}

// splitThenClause handles "<retention>, then <tail>" retention statements.
// A marker-token clause in the tail stays attached to retention; the rest of
// the tail becomes the disposition, with a tail mentioning archives (and not
// a review condition) classified as Permanent.
func (n *Normalizer) splitThenClause(retention string) (string, string) {
	loc := thenPattern.FindStringSubmatchIndex(retention)
	if loc == nil {
		return retention, ""
	}
	match := retention[loc[0]:loc[1]]
	tail := strings.TrimSpace(retention[loc[2]:loc[3]])

	if ms, me, ok := n.profile.Marker(tail); ok {
		marker := tail[ms:me]
		tail = strings.TrimSpace(strings.Replace(tail, marker, "", 1))
		retention = strings.TrimSpace(strings.Replace(retention, match, marker, 1))
	} else {
		retention = strings.TrimSpace(strings.Replace(retention, match, "", 1))
	}

	tail = strings.TrimSpace(trailingPunct.ReplaceAllString(tail, ""))
	retention = strings.TrimSpace(trailingPunct.ReplaceAllString(retention, ""))

	lower := strings.ToLower(tail)
	if strings.Contains(lower, "archives") &&
		!strings.Contains(lower, "possible") && !strings.Contains(lower, "review") {
		return retention, "Permanent"
	}
	return retention, capitalizeFirst(tail)
}

// exciseConfidentiality moves a stray Confidential or Non-confidential token
// out of the retention text and onto the front of the disposition.
func exciseConfidentiality(retention, disposition string) (string, string) {
	loc := confidentialPattern.FindStringSubmatchIndex(retention)
	if loc == nil {
		return retention, disposition
	}
	token := retention[loc[2]:loc[3]]
	retention = collapse(retention[:loc[2]] + retention[loc[3]:])
	if !strings.HasPrefix(strings.ToLower(disposition), strings.ToLower(token)) {
		disposition = strings.TrimSpace(titleCase(token) + " " + disposition)
	}
	return retention, disposition
}

// exciseDispositionKeywords moves bare Destruction and Archives keywords out
// of the retention text and onto the end of the disposition when absent
// there.
func exciseDispositionKeywords(retention, disposition string) (string, string) {
	for _, kw := range dispositionKeywords {
		if strings.Contains(strings.ToLower(disposition), strings.ToLower(kw.word)) {
			continue
		}
		loc := kw.pattern.FindStringIndex(retention)
		if loc == nil {
			continue
		}
		retention = collapse(retention[:loc[0]] + retention[loc[1]:])
		disposition = strings.TrimSpace(disposition + " " + kw.word)
	}
	return retention, disposition
}

// extractCitation pulls the first legal citation from the description,
// falling back to the retention text. A citation found in the description is
// removed from it, along with any punctuation it left dangling.
func (n *Normalizer) extractCitation(desc, retention string) (string, string, string) {
	if start, end, ok := n.profile.Citation(desc); ok {
		citation := strings.TrimSpace(desc[start:end])
		desc = collapse(desc[:start] + desc[end:])
		desc = strings.TrimSpace(trailingPunct.ReplaceAllString(desc, ""))
		return desc, retention, citation
	}
	if start, end, ok := n.profile.Citation(retention); ok {
		return desc, retention, strings.TrimSpace(retention[start:end])
	}
	return desc, retention, ""
}

// retentionYears derives the numeric retention period. Permanent records
// have none; otherwise the first digit or spelled-out number followed by
// "year" wins. The result is always nil or strictly positive.
func (n *Normalizer) retentionYears(retention, disposition string) *int {
	if strings.Contains(strings.ToLower(retention), "permanent") ||
		strings.Contains(strings.ToLower(disposition), "permanent") {
		return nil
	}
	if m := yearsPattern.FindStringSubmatch(retention); m != nil {
		if y, err := strconv.Atoi(m[1]); err == nil && y > 0 {
			return &y
		}
		return nil
	}
	if y, ok := n.profile.WordNumber(retention); ok {
		return &y
	}
	return nil
}

func (n *Normalizer) isConfidential(disposition string) bool {
	lower := strings.ToLower(disposition)
	if strings.Contains(lower, "confidential") && !strings.Contains(lower, "non-confidential") {
		return true
	}
	return n.profile.ShredConfidential && strings.Contains(lower, "shred")
}

func collapse(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// titleCase capitalizes each word. A cases.Caser is stateful, so one is
// built per call rather than shared.
func titleCase(s string) string {
	return cases.Title(language.AmericanEnglish).String(s)
}

func capitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
