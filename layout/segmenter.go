package layout

import (
	"regexp"
	"sort"
	"strings"

	"github.com/archivista/schedula/dialect"
	"github.com/archivista/schedula/model"
)

// seriesIDPattern matches the six-digit series identifiers that anchor rows.
var seriesIDPattern = regexp.MustCompile(`^\d{6}$`)

// pageNumberPattern matches "page N of M" folio lines.
var pageNumberPattern = regexp.MustCompile(`^(page\s*)?\d+\s+of\s+\d+$`)

// Config holds tuning parameters for layout segmentation. All values are in
// page points.
type Config struct {
	// HeaderMargin is subtracted from a header label's left edge when
	// calibrating a gutter, so the gutter sits just left of the label.
	// Default: 10.
	HeaderMargin float64

	// MinSeriesX is the minimum x-position for a series-number header label
	// to calibrate g1. Labels left of this are the phrase "series number"
	// appearing inside the description column, not the column header.
	// Default: 100.
	MinSeriesX float64

	// TopMargin and BottomMargin are fixed page margins; words inside them
	// are dropped. Defaults: 50 and 40.
	TopMargin    float64
	BottomMargin float64

	// HeaderPad is added below the calibrated header bottom when dropping
	// header words. Default: 5.
	HeaderPad float64

	// AnchorBuffer is how far above a series anchor a band starts, admitting
	// a title line that sits just above the anchor. Default: 15.
	AnchorBuffer float64

	// LineBucket is the vertical rounding bucket used to order words into
	// lines despite baseline jitter. Default: 5.
	LineBucket float64
}

// DefaultConfig returns the segmentation defaults.
func DefaultConfig() Config {
	return Config{
		HeaderMargin: 10,
		MinSeriesX:   100,
		TopMargin:    50,
		BottomMargin: 40,
		HeaderPad:    5,
		AnchorBuffer: 15,
		LineBucket:   5,
	}
}

// Segmenter turns a document's positioned words into candidate records, one
// per row band.
type Segmenter struct {
	cfg     Config
	profile *dialect.Profile
}

// New creates a Segmenter for the given jurisdiction profile with default
// configuration.
func New(profile *dialect.Profile) *Segmenter {
	return NewWithConfig(profile, DefaultConfig())
}

// NewWithConfig creates a Segmenter with custom configuration.
func NewWithConfig(profile *dialect.Profile, cfg Config) *Segmenter {
	return &Segmenter{cfg: cfg, profile: profile}
}

// Band is the vertical slice of a page attributed to one candidate record:
// the anchor's series identifier, the band's y-range [YStart, YEnd), and the
// words assigned to each of the three text columns.
type Band struct {
	SeriesID string
	YStart   float64
	YEnd     float64
	Desc     []model.Word
	Ret      []model.Word
	Disp     []model.Word
}

// assign places a word into the band column indicated by its x-position.
// Words straddling the identifier column fall through and are dropped.
func (b *Band) assign(w model.Word, g model.Gutters) {
	switch {
	case w.X1 < g.G1:
		b.Desc = append(b.Desc, w)
	case g.G2 <= w.X0 && w.X0 < g.G3:
		b.Ret = append(b.Ret, w)
	case w.X0 >= g.G3:
		b.Disp = append(b.Disp, w)
	}
}

// state is the accumulator threaded through page folds: bands closed so far,
// the band left open for cross-page continuation (at most one), the
// calibrated gutters inherited by the next page, and the cumulative vertical
// offset that places each page's words in document coordinates so a record
// spanning pages reads in order.
type state struct {
	closed  []*Band
	open    *Band
	gutters model.Gutters
	offset  float64
}

// Segment processes the document's pages in order and returns one candidate
// record per detected row band, in reading order.
func (s *Segmenter) Segment(doc *model.Document) []model.RawRecord {
	st := state{gutters: s.profile.Gutters}
	for i := range doc.Pages {
		st = s.foldPage(st, &doc.Pages[i])
	}
	if st.open != nil {
		st.closed = append(st.closed, st.open)
	}

	records := make([]model.RawRecord, 0, len(st.closed))
	for _, b := range st.closed {
		records = append(records, s.record(b, doc.Meta))
	}
	return records
}

// foldPage advances the accumulator over one page.
func (s *Segmenter) foldPage(st state, page *model.Page) state {
	if len(page.Words) == 0 {
		st.offset += page.Height
		return st
	}

	gutters, headerBottom := s.calibrate(page.Words, st.gutters)
	st.gutters = gutters

	words := s.filterWords(page, headerBottom)
	for i := range words {
		words[i].Top += st.offset
		words[i].Bottom += st.offset
	}
	anchors, anchorAt := s.findAnchors(words, gutters)
	st.offset += page.Height

	if len(anchors) == 0 {
		// Continuation page: everything belongs to the open record.
		if st.open != nil {
			for _, w := range words {
				st.open.assign(w, gutters)
			}
		}
		return st
	}

	bands := s.makeBands(anchors, st.offset)

	for i, w := range words {
		if anchorAt[i] {
			continue
		}
		assigned := false
		for _, b := range bands {
			if b.YStart <= w.Top && w.Top < b.YEnd {
				b.assign(w, gutters)
				assigned = true
				break
			}
		}
		if !assigned && st.open != nil && w.Top < bands[0].YStart {
			st.open.assign(w, gutters)
		}
	}

	// Close the carried-over record as the first band opens, then each band
	// as its successor opens; the last band stays open for the next page.
	for _, b := range bands {
		if st.open != nil {
			st.closed = append(st.closed, st.open)
		}
		st.open = b
	}
	return st
}

// calibrate locates column header labels on the page and derives gutters
// from their positions. Labels not found keep the inherited value, and a
// calibration that would break the strict g1 < g2 < g3 ordering is rejected
// in favor of the inherited gutters.
func (s *Segmenter) calibrate(words []model.Word, prev model.Gutters) (model.Gutters, float64) {
	g := prev
	var headerBottom float64
	for i := 0; i+1 < len(words); i++ {
		w, next := words[i], words[i+1]
		switch {
		case s.profile.SeriesLabel.Matches(w.Text, next.Text):
			if w.X0 > s.cfg.MinSeriesX {
				g.G1 = w.X0 - s.cfg.HeaderMargin
				headerBottom = maxFloat(headerBottom, w.Bottom)
			}
		case s.profile.RetentionLabel.Matches(w.Text, next.Text):
			g.G2 = w.X0 - s.cfg.HeaderMargin
			headerBottom = maxFloat(headerBottom, w.Bottom)
		case s.profile.DispositionLabel.Matches(w.Text, next.Text):
			g.G3 = w.X0 - s.cfg.HeaderMargin
			headerBottom = maxFloat(headerBottom, w.Bottom)
		}
	}
	if !g.Valid() {
		return prev, headerBottom
	}
	return g, headerBottom
}

// filterWords drops header, margin, folio, and footer boilerplate words.
func (s *Segmenter) filterWords(page *model.Page, headerBottom float64) []model.Word {
	kept := make([]model.Word, 0, len(page.Words))
	for _, w := range page.Words {
		if w.Top < headerBottom+s.cfg.HeaderPad || w.Top < s.cfg.TopMargin {
			continue
		}
		if w.Bottom > page.Height-s.cfg.BottomMargin {
			continue
		}
		lower := strings.ToLower(w.Text)
		if pageNumberPattern.MatchString(strings.TrimSpace(lower)) {
			continue
		}
		if s.isFooter(lower) {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}

func (s *Segmenter) isFooter(lower string) bool {
	for _, fs := range s.profile.FooterStrings {
		if strings.Contains(lower, fs) {
			return true
		}
	}
	return false
}

// findAnchors returns the page's series anchors sorted by vertical position
// and a set marking which filtered-word indices are anchors.
func (s *Segmenter) findAnchors(words []model.Word, g model.Gutters) ([]model.Word, map[int]bool) {
	var anchors []model.Word
	anchorAt := make(map[int]bool)
	for i, w := range words {
		if g.G1 <= w.X0 && w.X0 < g.G2 && seriesIDPattern.MatchString(strings.TrimSpace(w.Text)) {
			anchors = append(anchors, w)
			anchorAt[i] = true
		}
	}
	sort.SliceStable(anchors, func(i, j int) bool {
		return anchors[i].Top < anchors[j].Top
	})
	return anchors, anchorAt
}

// makeBands slices the page into one band per anchor. Bands are ordered by
// YStart and non-overlapping by construction: each band ends where its
// successor begins, and the last extends to the page bottom.
func (s *Segmenter) makeBands(anchors []model.Word, pageBottom float64) []*Band {
	bands := make([]*Band, len(anchors))
	for i, a := range anchors {
		yEnd := pageBottom
		if i+1 < len(anchors) {
			yEnd = anchors[i+1].Top - s.cfg.AnchorBuffer
		}
		bands[i] = &Band{
			SeriesID: strings.TrimSpace(a.Text),
			YStart:   a.Top - s.cfg.AnchorBuffer,
			YEnd:     yEnd,
		}
	}
	return bands
}

// record reconstructs a band's column text and shapes it into a RawRecord.
func (s *Segmenter) record(b *Band, meta model.Meta) model.RawRecord {
	title, desc := s.profile.SplitTitle(Stringify(b.Desc, s.cfg.LineBucket))
	return model.RawRecord{
		SeriesID:    b.SeriesID,
		Title:       title,
		Description: desc,
		Retention:   Stringify(b.Ret, s.cfg.LineBucket),
		Disposition: Stringify(b.Disp, s.cfg.LineBucket),
		Meta:        meta,
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
