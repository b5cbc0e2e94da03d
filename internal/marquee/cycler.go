package marquee

// Cycler owns the rotation start index and recolours a sequence on each
// tick. It is not safe for concurrent use; call it from the UI goroutine only.
type Cycler struct {
	palette Palette
	start   int
}

// NewCycler returns a cycler starting at palette index 0.
func NewCycler(p Palette) *Cycler {
	if p.Len() == 0 {
		p = DefaultPalette()
	}
	return &Cycler{palette: p}
}

// Palette returns the palette in use.
func (c *Cycler) Palette() Palette { return c.palette }

// Start returns the palette index the next tick begins at.
func (c *Cycler) Start() int { return c.start }

// Tick colours every non-space unit in palette order from the start index,
// then moves the start index back one slot so the pattern drifts left.
func (c *Cycler) Tick(seq *Sequence) {
	n := c.palette.Len()
	idx := c.start
	for i := range seq.units {
		u := &seq.units[i]
		if u.IsSpace() {
			continue
		}
		u.setColor(c.palette.At(idx))
		idx = (idx + 1) % n
	}
	c.start = (c.start - 1 + n) % n
}
