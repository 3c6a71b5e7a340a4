package dialect

import (
	"strings"
	"testing"
)

func TestLoadYAMLProfile(t *testing.T) {
	src := `
name: tx
gutters:
  g1: 140
  g2: 380
  g3: 520
footer_strings:
  - "records retention"
series_label: {first: series, second: number}
retention_label: {first: scheduled, second: retention}
disposition_label: {first: disposition, second: method}
lead_prefix: this series
lead_phrases: [documents, consists]
disposition_phrases: ["Confidential Destruction", Destruction]
citation_pattern: '(\bTAC\s*\d+)'
citation_tokens: [TAC]
word_numbers: {one: 1, two: 2}
general_id_prefix: RRS
`
	p, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "tx" {
		t.Errorf("Name = %q, want %q", p.Name, "tx")
	}
	if p.Gutters.G2 != 380 {
		t.Errorf("G2 = %v, want 380", p.Gutters.G2)
	}

	title, desc := p.SplitTitle("Deeds. This series documents land transfers.")
	if title != "Deeds." || desc != "This series documents land transfers." {
		t.Errorf("SplitTitle = %q, %q", title, desc)
	}
	if _, _, ok := p.Citation("see TAC 42"); !ok {
		t.Error("Citation did not match the loaded pattern")
	}
	if n, ok := p.WordNumber("retain two years"); !ok || n != 2 {
		t.Errorf("WordNumber = %d, %v", n, ok)
	}
	if got := p.ScheduleType("RRS-12"); got != "general" {
		t.Errorf("ScheduleType = %q, want %q", got, "general")
	}
}

func TestLoadRejectsBadProfiles(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing name", "gutters: {g1: 1, g2: 2, g3: 3}"},
		{"non increasing gutters", "name: xx\ngutters: {g1: 300, g2: 200, g3: 500}"},
		{"unknown field", "name: xx\ngutters: {g1: 1, g2: 2, g3: 3}\nbogus: true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.src)); err == nil {
				t.Error("Load accepted an invalid profile")
			}
		})
	}
}

func TestBuiltinProfilesCompile(t *testing.T) {
	for _, p := range []*Profile{Virginia(), Ohio()} {
		if p.Name == "" {
			t.Fatal("built-in profile has no name")
		}
		if !p.Gutters.Valid() {
			t.Errorf("%s: gutters invalid", p.Name)
		}
	}
}

func TestHeaderLabelMatches(t *testing.T) {
	label := HeaderLabel{First: "series", Second: "number"}
	tests := []struct {
		first, second string
		want          bool
	}{
		{"Series", "Number", true},
		{"SERIES", "NUMBERS", true},
		{" series ", "number", true},
		{"series", "identifier", false},
		{"a series", "number", false},
	}
	for _, tt := range tests {
		if got := label.Matches(tt.first, tt.second); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.first, tt.second, got, tt.want)
		}
	}
}

func TestSplitTitle(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantTitle string
		wantDesc  string
	}{
		{
			name:      "lead phrase with prefix",
			raw:       "Payroll records. This series documents payroll runs.",
			wantTitle: "Payroll records.",
			wantDesc:  "This series documents payroll runs.",
		},
		{
			name:      "bare lead phrase",
			raw:       "Audit files. Consists of working papers.",
			wantTitle: "Audit files.",
			wantDesc:  "Consists of working papers.",
		},
		{
			name:      "first period fallback",
			raw:       "Meeting minutes. Agendas and related notes.",
			wantTitle: "Meeting minutes",
			wantDesc:  "Agendas and related notes.",
		},
		{
			name:      "long text without early period is all title",
			raw:       strings.Repeat("x", 120) + ". More text",
			wantTitle: strings.Repeat("x", 120) + ". More text",
			wantDesc:  "",
		},
		{
			name:      "no split point",
			raw:       "Correspondence",
			wantTitle: "Correspondence",
			wantDesc:  "",
		},
	}
	p := Virginia()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, desc := p.SplitTitle(tt.raw)
			if title != tt.wantTitle || desc != tt.wantDesc {
				t.Errorf("SplitTitle(%q) = %q, %q, want %q, %q", tt.raw, title, desc, tt.wantTitle, tt.wantDesc)
			}
		})
	}
}

func TestTrailingDispositionMostSpecificFirst(t *testing.T) {
	p := Virginia()
	phrase, start, ok := p.TrailingDisposition("Retain 2 years Non-confidential Destruction")
	if !ok {
		t.Fatal("no phrase matched")
	}
	if phrase != "Non-confidential Destruction" {
		t.Errorf("phrase = %q, want %q", phrase, "Non-confidential Destruction")
	}
	if start != len("Retain 2 years ") {
		t.Errorf("start = %d, want %d", start, len("Retain 2 years "))
	}

	if _, _, ok := p.TrailingDisposition("Retain 2 years Destruction."); ok {
		t.Error("matched a phrase that is not at the end of the string")
	}
}

func TestMarker(t *testing.T) {
	p := Ohio()
	start, end, ok := p.Marker("destroy. OAKS: AP012")
	if !ok {
		t.Fatal("marker not found")
	}
	if got := "destroy. OAKS: AP012"[start:end]; got != ". OAKS: AP012" {
		t.Errorf("marker = %q, want %q", got, ". OAKS: AP012")
	}

	if _, _, ok := Virginia().Marker("destroy. OAKS: AP012"); ok {
		t.Error("profile without a marker token matched one")
	}
}

func TestWordNumberVocabulary(t *testing.T) {
	p := Ohio()
	tests := []struct {
		s    string
		want int
		ok   bool
	}{
		{"Retain five years", 5, true},
		{"Retain Fifteen Years", 15, true},
		{"Retain sixteen years", 16, true},
		{"Retain twenty years", 0, false},
		{"five apples", 0, false},
	}
	for _, tt := range tests {
		n, ok := p.WordNumber(tt.s)
		if n != tt.want || ok != tt.ok {
			t.Errorf("WordNumber(%q) = %d, %v, want %d, %v", tt.s, n, ok, tt.want, tt.ok)
		}
	}
}
