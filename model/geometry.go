package model

// Word represents a single positioned word produced by an external
// text-layout reader. Coordinates are top-down page coordinates: Top and
// Bottom are distances from the top edge of the page, X0 and X1 are the left
// and right edges. Words are immutable values; the pipeline never writes to
// them.
type Word struct {
	Text   string
	Top    float64
	Bottom float64
	X0     float64
	X1     float64
}

// Width returns the horizontal extent of the word.
func (w Word) Width() float64 {
	return w.X1 - w.X0
}

// Height returns the vertical extent of the word.
func (w Word) Height() float64 {
	return w.Bottom - w.Top
}

// Gutters holds the three x-coordinates that partition a page into the four
// logical columns of a retention schedule: description, series identifier,
// retention, and disposition. Values must be strictly increasing.
type Gutters struct {
	G1 float64 `yaml:"g1"`
	G2 float64 `yaml:"g2"`
	G3 float64 `yaml:"g3"`
}

// Valid reports whether the gutters are strictly increasing.
func (g Gutters) Valid() bool {
	return g.G1 < g.G2 && g.G2 < g.G3
}
