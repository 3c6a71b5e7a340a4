package schedula

import (
	"context"

	"github.com/archivista/schedula/dialect"
	"github.com/archivista/schedula/layout"
	"github.com/archivista/schedula/model"
	"github.com/archivista/schedula/tables"
)

// StrategyLayout is the name of the layout-segmentation strategy. An exact
// score tie between strategies is broken in its favor.
const StrategyLayout = "layout"

// StrategyGrid is the name of the table-grid strategy.
const StrategyGrid = "grid"

// Strategy produces candidate records from a document. Implementations that
// call out to blocking readers should honor the context; the built-in
// strategies are pure and ignore it.
type Strategy interface {
	// Name identifies the strategy in results and logs.
	Name() string

	// Extract returns raw candidate records for the document. An error or
	// panic is treated by the processor as zero records, not as a fatal
	// failure.
	Extract(ctx context.Context, doc *model.Document) ([]model.RawRecord, error)
}

type gridStrategy struct {
	extractor *tables.GridExtractor
}

// NewGridStrategy returns the strategy that extracts records from
// pre-segmented table grids.
func NewGridStrategy(profile *dialect.Profile) Strategy {
	return gridStrategy{extractor: tables.NewGridExtractor(profile)}
}

func (s gridStrategy) Name() string { return StrategyGrid }

func (s gridStrategy) Extract(_ context.Context, doc *model.Document) ([]model.RawRecord, error) {
	return s.extractor.Extract(doc), nil
}

type layoutStrategy struct {
	segmenter *layout.Segmenter
}

// NewLayoutStrategy returns the strategy that segments positioned words into
// column-anchored row bands.
func NewLayoutStrategy(profile *dialect.Profile) Strategy {
	return layoutStrategy{segmenter: layout.New(profile)}
}

func (s layoutStrategy) Name() string { return StrategyLayout }

func (s layoutStrategy) Extract(_ context.Context, doc *model.Document) ([]model.RawRecord, error) {
	return s.segmenter.Segment(doc), nil
}
