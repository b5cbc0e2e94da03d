package game

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/hello-marquee/internal/config"
)

const (
	highlightMix = 0.45
	shadeMix     = 0.35
)

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{}
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// litColors returns the highlight and shade tones of base under the distant
// light. The light gets weaker the lower its elevation.
func litColors(base color.RGBA) (highlight, shade color.RGBA) {
	c, ok := colorful.MakeColor(base)
	if !ok {
		return base, base
	}
	strength := clamp01(math.Sin(config.LightElevation * math.Pi / 180))
	hi := c.BlendLab(white, highlightMix*strength).Clamped()
	lo := c.BlendLab(black, shadeMix*strength).Clamped()
	return toRGBA(hi, base.A), toRGBA(lo, base.A)
}

func toRGBA(c colorful.Color, a uint8) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// lightOffset returns the screen-space offset pointing toward the light,
// scaled by the surface relief.
func lightOffset() (dx, dy float64) {
	az := config.LightAzimuth * math.Pi / 180
	el := config.LightElevation * math.Pi / 180
	depth := config.LightSurfaceScale * math.Cos(el) * 0.5
	// ebiten's y axis points down, so a negative azimuth is up and to the right.
	return math.Cos(az) * depth, math.Sin(az) * depth
}

// reflectionAlpha is the opacity of strip k of n, fading from the top
// opacity to nothing.
func reflectionAlpha(k, n int) float64 {
	if n <= 0 {
		return 0
	}
	return config.ReflectionTopOpacity * clamp01(1-(float64(k)+0.5)/float64(n))
}
