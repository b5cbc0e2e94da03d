// Package game renders the message in a desktop window with ebiten.
//
// ebiten calls Update and Draw on a single goroutine. Everything that mutates
// the message colours arrives through the Queue and runs at the start of
// Update, so drawing never races with a colour change.
package game

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/iburimskiy/hello-marquee/internal/config"
	"github.com/iburimskiy/hello-marquee/internal/logging"
	"github.com/iburimskiy/hello-marquee/internal/marquee"
)

const (
	queueSize       = 16
	reflectionSteps = 12
	shadowAlpha     = 0.45
)

var (
	background  = color.RGBA{R: 0xF4, G: 0xF4, B: 0xF4, A: 0xFF}
	defaultFill = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
	shadowFill  = color.RGBA{A: 0xFF}

	// soft edge for the shadow, sampled around its offset
	shadowTaps = [][2]float64{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// Game is the ebiten game showing one message.
type Game struct {
	seq    *marquee.Sequence
	queue  *Queue
	face   *text.GoTextFace
	layout rowLayout
	margin float64

	row *ebiten.Image

	ctx context.Context
	log *zap.Logger
}

// New measures seq with the bold sans-serif face and prepares the offscreen
// row image.
func New(seq *marquee.Sequence) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	face := &text.GoTextFace{Source: src, Size: config.FontSize}

	m := face.Metrics()
	lineHeight := m.HAscent + m.HDescent
	widths := make([]float64, seq.Len())
	for i := range widths {
		widths[i], _ = text.Measure(seq.At(i).Text, face, lineHeight)
	}

	g := &Game{
		seq:    seq,
		queue:  NewQueue(queueSize),
		face:   face,
		layout: newRowLayout(widths, lineHeight),
		margin: config.ShadowRadius + math.Max(math.Abs(config.ShadowOffsetX), math.Abs(config.ShadowOffsetY)),
		ctx:    context.Background(),
		log:    logging.Named("window"),
	}
	rw := int(math.Ceil(g.layout.width + 2*g.margin))
	rh := int(math.Ceil(g.layout.lineHeight + 2*g.margin))
	g.row = ebiten.NewImage(max(rw, 1), max(rh, 1))
	return g, nil
}

// Post queues fn to run on the update goroutine.
func (g *Game) Post(fn func()) {
	g.queue.Post(fn)
}

// Run opens the window and blocks until it is closed or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	g.ctx = ctx
	defer g.queue.Close()

	w, h := g.layout.windowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g.log.Info("Window opening", zap.Int("width", w), zap.Int("height", h), zap.Int("units", g.seq.Len()))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	g.log.Info("Window closed")
	return nil
}

func (g *Game) Update() error {
	g.queue.Drain()

	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	g.row.Clear()
	for i := 0; i < g.seq.Len(); i++ {
		g.drawLabel(g.row, g.seq.At(i), g.margin+g.layout.xs[i], g.margin)
	}

	b := screen.Bounds()
	ox, oy := g.layout.origin(b.Dx(), b.Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox-g.margin, oy-g.margin)
	screen.DrawImage(g.row, op)

	g.drawReflection(screen, ox-g.margin, oy+g.layout.lineHeight)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// drawLabel paints one unit with its shadow and lighting at (x, y).
func (g *Game) drawLabel(dst *ebiten.Image, u *marquee.Unit, x, y float64) {
	if u.IsSpace() {
		return
	}
	fill := defaultFill
	if c, ok := u.Color(); ok {
		fill = c.RGBA
	}

	spread := config.ShadowRadius / 2
	for _, tap := range shadowTaps {
		g.drawText(dst, u.Text,
			x+config.ShadowOffsetX+tap[0]*spread,
			y+config.ShadowOffsetY+tap[1]*spread,
			shadowFill, shadowAlpha/float64(len(shadowTaps)))
	}

	hi, lo := litColors(fill)
	dx, dy := lightOffset()
	g.drawText(dst, u.Text, x-dx, y-dy, lo, 1)
	g.drawText(dst, u.Text, x+dx, y+dy, hi, 1)
	g.drawText(dst, u.Text, x, y, fill, 1)
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, c color.Color, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, s, g.face, op)
}

// drawReflection mirrors the bottom part of the row below it, in strips of
// falling opacity.
func (g *Game) drawReflection(screen *ebiten.Image, x, top float64) {
	reflH := g.layout.reflectionHeight()
	if reflH <= 0 {
		return
	}
	stripH := reflH / reflectionSteps
	bottom := g.margin + g.layout.lineHeight
	w := g.row.Bounds().Dx()

	for k := 0; k < reflectionSteps; k++ {
		y0 := int(math.Floor(bottom - float64(k+1)*stripH))
		y1 := int(math.Ceil(bottom - float64(k)*stripH))
		if y1 <= y0 {
			continue
		}
		strip := g.row.SubImage(image.Rect(0, y0, w, y1)).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(x, top+float64(k)*stripH+float64(y1-y0))
		op.ColorScale.ScaleAlpha(float32(reflectionAlpha(k, reflectionSteps)))
		screen.DrawImage(strip, op)
	}
}
