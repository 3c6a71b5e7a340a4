package layout

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/archivista/schedula/model"
)

// hyphenBreakPattern matches a hyphen followed by whitespace, the residue of
// a word broken across lines.
var hyphenBreakPattern = regexp.MustCompile(`-\s+`)

// Stringify flattens positioned words into a single text run. Words are
// ordered by line then by x-position, where a line is the word's top edge
// rounded to the nearest bucket, so small baseline jitter does not reorder a
// line. Hyphenated line breaks are repaired.
func Stringify(words []model.Word, bucket float64) string {
	if len(words) == 0 {
		return ""
	}
	if bucket <= 0 {
		bucket = 1
	}
	sorted := make([]model.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		li := math.Round(sorted[i].Top/bucket) * bucket
		lj := math.Round(sorted[j].Top/bucket) * bucket
		if li != lj {
			return li < lj
		}
		return sorted[i].X0 < sorted[j].X0
	})

	parts := make([]string, len(sorted))
	for i, w := range sorted {
		parts[i] = w.Text
	}
	joined := strings.Join(parts, " ")
	joined = hyphenBreakPattern.ReplaceAllString(joined, "")
	return strings.TrimSpace(joined)
}
