package dialect

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/archivista/schedula/model"
)

// HeaderLabel is an adjacent word pair that identifies a column header on the
// page (e.g. "Series" followed by "Number"). First must match a word exactly;
// Second is matched by substring against the following word. Both comparisons
// are case-insensitive.
type HeaderLabel struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

// Matches reports whether the label matches the pair of word texts.
func (h HeaderLabel) Matches(first, second string) bool {
	return strings.EqualFold(strings.TrimSpace(first), h.First) &&
		strings.Contains(strings.ToLower(second), strings.ToLower(h.Second))
}

// Profile is the immutable per-jurisdiction configuration consumed by the
// extraction pipeline. Construct one with a built-in ([Virginia], [Ohio]) or
// [Load]; a zero Profile is not usable.
type Profile struct {
	// Name is the jurisdiction code, e.g. "va".
	Name string `yaml:"name"`

	// Gutters are the default column boundaries used until a page's header
	// labels calibrate better ones.
	Gutters model.Gutters `yaml:"gutters"`

	// FooterStrings are boilerplate substrings (lowercase); any word whose
	// text contains one is dropped during layout segmentation.
	FooterStrings []string `yaml:"footer_strings"`

	// SeriesLabel, RetentionLabel, and DispositionLabel locate the column
	// headers that calibrate g1, g2, and g3 respectively.
	SeriesLabel      HeaderLabel `yaml:"series_label"`
	RetentionLabel   HeaderLabel `yaml:"retention_label"`
	DispositionLabel HeaderLabel `yaml:"disposition_label"`

	// LeadPrefix optionally precedes a lead phrase ("this series").
	LeadPrefix string `yaml:"lead_prefix"`

	// LeadPhrases are the words a series description characteristically
	// starts with ("documents", "collects", ...). The first occurrence of
	// one splits a combined title+description string.
	LeadPhrases []string `yaml:"lead_phrases"`

	// DispositionPhrases are known disposition statements, ordered most
	// specific first so "Non-confidential Destruction" wins over
	// "Destruction".
	DispositionPhrases []string `yaml:"disposition_phrases"`

	// CitationPattern is the regular expression recognizing this
	// jurisdiction's legal citations.
	CitationPattern string `yaml:"citation_pattern"`

	// CitationTokens are short citation abbreviations ("COV", "CFR") whose
	// presence in a series title indicates a bad title split.
	CitationTokens []string `yaml:"citation_tokens"`

	// MarkerToken is an internal system-code prefix (e.g. "OAKS:") that
	// belongs to the retention statement even when it trails a disposition
	// clause. Empty when the jurisdiction has none.
	MarkerToken string `yaml:"marker_token"`

	// WordNumbers maps spelled-out retention years to integers.
	WordNumbers map[string]int `yaml:"word_numbers"`

	// ShredConfidential marks dispositions mentioning "shred" as
	// confidential, a dialect used where schedules never say
	// "confidential" outright.
	ShredConfidential bool `yaml:"shred_confidential"`

	// GeneralIDPrefix is the schedule-ID prefix of general schedules
	// ("GS"); other IDs are agency-specific schedules.
	GeneralIDPrefix string `yaml:"general_id_prefix"`

	lead     *regexp.Regexp
	disp     *regexp.Regexp
	citation *regexp.Regexp
	marker   *regexp.Regexp
	wordNum  *regexp.Regexp
}

// Load reads a YAML profile and compiles its lexicons.
func Load(r io.Reader) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	if err := p.compile(); err != nil {
		return nil, err
	}
	return &p, nil
}

// compile validates the profile and builds its regular expressions.
func (p *Profile) compile() error {
	if p.Name == "" {
		return fmt.Errorf("profile has no name")
	}
	if !p.Gutters.Valid() {
		return fmt.Errorf("profile %s: gutters must be strictly increasing", p.Name)
	}

	if len(p.LeadPhrases) > 0 {
		alts := make([]string, len(p.LeadPhrases))
		for i, ph := range p.LeadPhrases {
			alts[i] = regexp.QuoteMeta(ph)
		}
		pat := `(?i)(`
		if p.LeadPrefix != "" {
			pat += `(?:` + regexp.QuoteMeta(p.LeadPrefix) + `\s+)?`
		}
		pat += `(?:` + strings.Join(alts, "|") + `)\b.*)`
		re, err := regexp.Compile(pat)
		if err != nil {
			return fmt.Errorf("profile %s: lead phrases: %w", p.Name, err)
		}
		p.lead = re
	}

	if len(p.DispositionPhrases) > 0 {
		alts := make([]string, len(p.DispositionPhrases))
		for i, ph := range p.DispositionPhrases {
			alts[i] = regexp.QuoteMeta(ph)
		}
		re, err := regexp.Compile(`(?i)(` + strings.Join(alts, "|") + `)$`)
		if err != nil {
			return fmt.Errorf("profile %s: disposition phrases: %w", p.Name, err)
		}
		p.disp = re
	}

	if p.CitationPattern != "" {
		re, err := regexp.Compile(`(?i)` + p.CitationPattern)
		if err != nil {
			return fmt.Errorf("profile %s: citation pattern: %w", p.Name, err)
		}
		p.citation = re
	}

	if p.MarkerToken != "" {
		re, err := regexp.Compile(`(?i)(\.?\s*` + regexp.QuoteMeta(p.MarkerToken) + `.*)`)
		if err != nil {
			return fmt.Errorf("profile %s: marker token: %w", p.Name, err)
		}
		p.marker = re
	}

	if len(p.WordNumbers) > 0 {
		words := make([]string, 0, len(p.WordNumbers))
		for w := range p.WordNumbers {
			words = append(words, regexp.QuoteMeta(w))
		}
		sort.Strings(words)
		re, err := regexp.Compile(`(?i)\b(` + strings.Join(words, "|") + `)\b\s*year`)
		if err != nil {
			return fmt.Errorf("profile %s: word numbers: %w", p.Name, err)
		}
		p.wordNum = re
	}

	return nil
}

// mustCompile is used by the built-in profiles, whose lexicons are fixed.
func (p *Profile) mustCompile() *Profile {
	if err := p.compile(); err != nil {
		panic(err)
	}
	return p
}

// SplitTitle splits a combined title+description string. The description
// begins at the first lead phrase; failing that, at the first period when the
// prefix is under 100 characters; otherwise the whole text is the title.
func (p *Profile) SplitTitle(raw string) (title, description string) {
	if p.lead != nil {
		if loc := p.lead.FindStringIndex(raw); loc != nil {
			return strings.TrimSpace(raw[:loc[0]]), strings.TrimSpace(raw[loc[0]:loc[1]])
		}
	}
	if i := strings.Index(raw, "."); i >= 0 && i < 100 {
		return strings.TrimSpace(raw[:i]), strings.TrimSpace(raw[i+1:])
	}
	return strings.TrimSpace(raw), ""
}

// TrailingDisposition finds a known disposition phrase at the end of s.
// It returns the phrase and its start index, or ok=false when none matches.
func (p *Profile) TrailingDisposition(s string) (phrase string, start int, ok bool) {
	if p.disp == nil {
		return "", 0, false
	}
	loc := p.disp.FindStringSubmatchIndex(s)
	if loc == nil {
		return "", 0, false
	}
	return s[loc[2]:loc[3]], loc[2], true
}

// Citation finds the first legal citation in s, returning its bounds.
func (p *Profile) Citation(s string) (start, end int, ok bool) {
	if p.citation == nil {
		return 0, 0, false
	}
	loc := p.citation.FindStringIndex(s)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// Marker finds the jurisdiction's marker-token clause in s.
func (p *Profile) Marker(s string) (start, end int, ok bool) {
	if p.marker == nil {
		return 0, 0, false
	}
	loc := p.marker.FindStringIndex(s)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// WordNumber finds a spelled-out year count ("five years") in s.
func (p *Profile) WordNumber(s string) (n int, ok bool) {
	if p.wordNum == nil {
		return 0, false
	}
	m := p.wordNum.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, ok = p.WordNumbers[strings.ToLower(m[1])]
	return n, ok
}

// ScheduleType derives "general" or "specific" from a schedule ID.
func (p *Profile) ScheduleType(scheduleID string) string {
	if p.GeneralIDPrefix != "" && strings.HasPrefix(scheduleID, p.GeneralIDPrefix) {
		return "general"
	}
	return "specific"
}
