// Package docmeta derives document-level metadata from schedule page text.
package docmeta

import (
	"regexp"
	"strings"
	"time"

	"github.com/archivista/schedula/model"
)

var effectiveDatePattern = regexp.MustCompile(`(?i)EFFECTIVE\s+(?:SCHEDULE\s+)?DATE[:\s]+(\d{1,2}/\d{1,2}/\d{4})`)

// maxPreflightPages bounds the scan; schedules state their effective date on
// the cover sheet or the page after it.
const maxPreflightPages = 2

// EffectiveDate finds an "Effective Schedule Date: M/D/YYYY" statement in
// text and returns the date in ISO-8601 form.
func EffectiveDate(text string) (string, bool) {
	m := effectiveDatePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	t, err := time.Parse("1/2/2006", m[1])
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// DocumentEffectiveDate scans the leading pages of a document's word text
// for the effective date statement.
func DocumentEffectiveDate(doc *model.Document) (string, bool) {
	for i, page := range doc.Pages {
		if i >= maxPreflightPages {
			break
		}
		var sb strings.Builder
		for _, w := range page.Words {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(w.Text)
		}
		if date, ok := EffectiveDate(sb.String()); ok {
			return date, true
		}
	}
	return "", false
}
