package schedula

import "strings"

// Warning codes reported by Process.
const (
	// WarnStrategyFailed indicates a strategy raised an error or panicked;
	// it was treated as having produced zero records.
	WarnStrategyFailed = "strategy-failed"

	// WarnNoOutput indicates no strategy produced a usable record set. The
	// document yields no output, which is a normal terminal state.
	WarnNoOutput = "no-output"
)

// Warning describes a non-fatal issue encountered while processing a
// document.
type Warning struct {
	Code    string
	Message string
}

func (w Warning) String() string {
	return w.Code + ": " + w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
