// Package blend implements the Porter-Duff compositing operators used to
// combine a texture layer with the paint accumulated beneath it.
//
// All operations work with premultiplied alpha colors whose components are
// in the range [0, 1]. The layer is the source (S) and the accumulated
// paint is the destination (D).
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Color is a premultiplied RGBA color.
type Color struct {
	R, G, B, A float64
}

// Op is a compositing operator. The order matches brushpaint.BlendMode.
type Op uint8

const (
	OpModulate Op = iota // Result: S*D
	OpDstIn              // Result: D*Sa
	OpDstOut             // Result: D*(1-Sa)
	OpSrcAtop            // Result: S*Da + D*(1-Sa)
	OpSrcIn              // Result: S*Da
	OpSrcOver            // Result: S + D*(1-Sa)
	OpSrc                // Result: S
	OpXor                // Result: S*(1-Da) + D*(1-Sa)
)

// Func is the signature for compositing operations.
type Func func(s, d Color) Color

// GetFunc returns the compositing function for op, and false for
// undefined operators.
func GetFunc(op Op) (Func, bool) {
	switch op {
	case OpModulate:
		return modulate, true
	case OpDstIn:
		return dstIn, true
	case OpDstOut:
		return dstOut, true
	case OpSrcAtop:
		return srcAtop, true
	case OpSrcIn:
		return srcIn, true
	case OpSrcOver:
		return srcOver, true
	case OpSrc:
		return src, true
	case OpXor:
		return xor, true
	default:
		return nil, false
	}
}

// Composite applies op to s and d. Undefined operators leave d unchanged.
func Composite(op Op, s, d Color) Color {
	f, ok := GetFunc(op)
	if !ok {
		return d
	}
	return f(s, d)
}

// modulate multiplies source and destination.
func modulate(s, d Color) Color {
	return Color{R: s.R * d.R, G: s.G * d.G, B: s.B * d.B, A: s.A * d.A}
}

// dstIn keeps destination where source is opaque.
func dstIn(s, d Color) Color {
	return d.scale(s.A)
}

// dstOut keeps destination where source is transparent.
func dstOut(s, d Color) Color {
	return d.scale(1 - s.A)
}

// srcAtop composites source over destination, preserving destination alpha.
func srcAtop(s, d Color) Color {
	c := s.scale(d.A).add(d.scale(1 - s.A))
	c.A = d.A
	return c
}

// srcIn keeps source where destination is opaque.
func srcIn(s, d Color) Color {
	return s.scale(d.A)
}

// srcOver composites source over destination.
func srcOver(s, d Color) Color {
	return s.add(d.scale(1 - s.A))
}

// src replaces destination with source.
func src(s, _ Color) Color {
	return s
}

// xor keeps source and destination where they don't overlap.
func xor(s, d Color) Color {
	return s.scale(1 - d.A).add(d.scale(1 - s.A))
}

func (c Color) scale(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A * f}
}

func (c Color) add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}
