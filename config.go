package schedula

import (
	"log/slog"
	"time"

	"github.com/archivista/schedula/dialect"
)

// Config configures a Processor.
type Config struct {
	// Profile is the jurisdiction dialect to extract with. Required.
	Profile *dialect.Profile

	// Strategies are tried in order. Defaults to the table-grid strategy
	// followed by the layout strategy.
	Strategies []Strategy

	// Logger for progress and warning messages.
	Logger *slog.Logger

	// Now supplies the clock used to stamp each record's LastChecked date.
	Now func() time.Time
}

func (c *Config) defaults() {
	if len(c.Strategies) == 0 {
		c.Strategies = []Strategy{
			NewGridStrategy(c.Profile),
			NewLayoutStrategy(c.Profile),
		}
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Now == nil {
		c.Now = time.Now
	}
}
