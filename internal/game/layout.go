package game

import (
	"math"

	"github.com/iburimskiy/hello-marquee/internal/config"
)

// rowLayout places labels left to right with fixed spacing, the way a
// horizontal box does.
type rowLayout struct {
	xs         []float64 // left edge of each label, relative to the row
	widths     []float64
	lineHeight float64
	width      float64
}

func newRowLayout(widths []float64, lineHeight float64) rowLayout {
	l := rowLayout{
		xs:         make([]float64, len(widths)),
		widths:     append([]float64(nil), widths...),
		lineHeight: lineHeight,
	}
	x := 0.0
	for i, w := range widths {
		if i > 0 {
			x += config.Spacing
		}
		l.xs[i] = x
		x += w
	}
	l.width = x
	return l
}

// reflectionHeight is how much of the line shows mirrored below it.
func (l rowLayout) reflectionHeight() float64 {
	return l.lineHeight * config.ReflectionFraction
}

// contentHeight covers the line and its reflection.
func (l rowLayout) contentHeight() float64 {
	return l.lineHeight + l.reflectionHeight()
}

// windowSize is the content plus padding on every side.
func (l rowLayout) windowSize() (int, int) {
	w := l.width + 2*config.Padding
	h := l.contentHeight() + 2*config.Padding
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// origin returns the top-left of the row when centred in a w×h screen.
func (l rowLayout) origin(w, h int) (float64, float64) {
	return (float64(w) - l.width) / 2, (float64(h) - l.contentHeight()) / 2
}
