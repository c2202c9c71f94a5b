package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette converts hex colour strings to raylib colours, caching each
// conversion. Styles change fill strings at runtime, so lookups happen
// every frame.
type Palette struct {
	cache map[string]colorful.Color
}

// NewPalette creates an empty palette cache.
func NewPalette() *Palette {
	return &Palette{cache: make(map[string]colorful.Color)}
}

// Parse returns the colour for s. Accepts "#rgb" and "#rrggbb".
func (p *Palette) Parse(s string) (colorful.Color, error) {
	if c, ok := p.cache[s]; ok {
		return c, nil
	}
	hex := s
	if len(hex) == 4 && hex[0] == '#' {
		hex = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parsing colour %q: %w", s, err)
	}
	p.cache[s] = c
	return c, nil
}

// Color returns s as a raylib colour with the given opacity. Unparseable
// and empty strings yield a transparent colour.
func (p *Palette) Color(s string, opacity float64) rl.Color {
	if s == "" {
		return rl.Blank
	}
	c, err := p.Parse(s)
	if err != nil {
		return rl.Blank
	}
	r, g, b := c.RGB255()
	return rl.Color{R: r, G: g, B: b, A: uint8(clamp01(opacity) * 255)}
}

// Blend mixes a and b in Lab space, t in [0, 1].
func (p *Palette) Blend(a, b string, t float64) rl.Color {
	ca, errA := p.Parse(a)
	cb, errB := p.Parse(b)
	if errA != nil || errB != nil {
		return p.Color(a, 1)
	}
	r, g, bl := ca.BlendLab(cb, clamp01(t)).Clamped().RGB255()
	return rl.Color{R: r, G: g, B: bl, A: 255}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
