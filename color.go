package brushpaint

import "github.com/gogpu/brushpaint/internal/blend"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Whether the color components are
// premultiplied by alpha depends on the API; Composite expects
// premultiplied colors.
type RGBA struct {
	R, G, B, A float64
}

// Premultiply returns a premultiplied color.
func (c RGBA) Premultiply() RGBA {
	return RGBA{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// Unpremultiply returns an unpremultiplied color.
func (c RGBA) Unpremultiply() RGBA {
	if c.A == 0 {
		return RGBA{R: 0, G: 0, B: 0, A: 0}
	}
	return RGBA{
		R: c.R / c.A,
		G: c.G / c.A,
		B: c.B / c.A,
		A: c.A,
	}
}

// Composite combines a layer color src with the accumulated paint dst using
// the blend mode's Porter-Duff operator. Both colors must be premultiplied.
// An undefined blend mode returns dst unchanged.
func (m BlendMode) Composite(src, dst RGBA) RGBA {
	if !m.IsValid() {
		return dst
	}
	c := blend.Composite(blend.Op(m), blend.Color(src), blend.Color(dst))
	return RGBA(c)
}
