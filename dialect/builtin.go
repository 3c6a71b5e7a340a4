package dialect

import "github.com/archivista/schedula/model"

// standardWordNumbers is the spelled-out year vocabulary seen across
// schedules. Values above twelve appear only as fifteen and sixteen.
func standardWordNumbers() map[string]int {
	return map[string]int{
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
		"eleven": 11, "twelve": 12, "fifteen": 15, "sixteen": 16,
	}
}

// Virginia returns the profile for Library of Virginia retention schedules.
func Virginia() *Profile {
	p := &Profile{
		Name:    "va",
		Gutters: model.Gutters{G1: 150, G2: 400, G3: 550},
		FooterStrings: []string{
			"800 e. broad", "23219", "692-3600",
			"records retention and disposition", "effective schedule date",
		},
		SeriesLabel:      HeaderLabel{First: "series", Second: "number"},
		RetentionLabel:   HeaderLabel{First: "scheduled", Second: "retention"},
		DispositionLabel: HeaderLabel{First: "disposition", Second: "method"},
		LeadPrefix:       "this series",
		LeadPhrases:      []string{"documents", "collects", "verifies", "consists"},
		DispositionPhrases: []string{
			"Non-confidential Destruction",
			"Confidential Destruction",
			"Permanent, Archives",
			"Permanent, In Agency",
			"Archives",
			"Destruction",
		},
		CitationPattern: `(\b\d+\s*CFR.*|\b\d+\s*VAC.*|\bCode of Virginia\b.*|\bCOV\b.*|\b\d+\s*USC.*)$`,
		CitationTokens:  []string{"COV", "CFR", "VAC"},
		WordNumbers:     standardWordNumbers(),
		GeneralIDPrefix: "GS",
	}
	return p.mustCompile()
}

// Ohio returns the profile for Ohio retention schedules. Ohio bundles the
// disposition into the retention statement via a "then ..." clause and tags
// fiscal series with an OAKS system code that stays with the retention text.
func Ohio() *Profile {
	p := &Profile{
		Name:    "oh",
		Gutters: model.Gutters{G1: 150, G2: 400, G3: 550},
		FooterStrings: []string{
			"ohio history connection", "state archives of ohio",
		},
		SeriesLabel:       HeaderLabel{First: "series", Second: "number"},
		RetentionLabel:    HeaderLabel{First: "scheduled", Second: "retention"},
		DispositionLabel:  HeaderLabel{First: "disposition", Second: "method"},
		LeadPhrases:       []string{"documents", "consists"},
		CitationPattern:   `(\bORC\s*\d+\.\d+|\b\d+\s*CFR\s*\d+|\b\d+\s*USC\s*\d+)`,
		CitationTokens:    []string{"ORC", "CFR", "USC"},
		MarkerToken:       "OAKS:",
		WordNumbers:       standardWordNumbers(),
		ShredConfidential: true,
		GeneralIDPrefix:   "GS",
	}
	return p.mustCompile()
}
