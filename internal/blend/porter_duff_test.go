package blend

import (
	"math"
	"testing"
)

func approx(a, b Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestComposite(t *testing.T) {
	// Half-transparent premultiplied red over three-quarter opaque blue.
	s := Color{R: 0.5, G: 0, B: 0, A: 0.5}
	d := Color{R: 0, G: 0, B: 0.75, A: 0.75}

	tests := []struct {
		name string
		op   Op
		want Color
	}{
		{"Modulate", OpModulate, Color{R: 0, G: 0, B: 0, A: 0.375}},
		{"DstIn", OpDstIn, Color{R: 0, G: 0, B: 0.375, A: 0.375}},
		{"DstOut", OpDstOut, Color{R: 0, G: 0, B: 0.375, A: 0.375}},
		{"SrcAtop", OpSrcAtop, Color{R: 0.375, G: 0, B: 0.375, A: 0.75}},
		{"SrcIn", OpSrcIn, Color{R: 0.375, G: 0, B: 0, A: 0.375}},
		{"SrcOver", OpSrcOver, Color{R: 0.5, G: 0, B: 0.375, A: 0.875}},
		{"Src", OpSrc, s},
		{"Xor", OpXor, Color{R: 0.125, G: 0, B: 0.375, A: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Composite(tt.op, s, d)
			if !approx(got, tt.want) {
				t.Errorf("Composite(%s) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestCompositeUndefinedOpKeepsDestination(t *testing.T) {
	d := Color{R: 0.1, G: 0.2, B: 0.3, A: 0.4}
	if got := Composite(Op(99), Color{A: 1}, d); got != d {
		t.Errorf("Composite(Op(99)) = %+v, want destination %+v", got, d)
	}
	if _, ok := GetFunc(Op(99)); ok {
		t.Error("GetFunc(Op(99)) ok = true, want false")
	}
}

func TestOpaqueSourceOver(t *testing.T) {
	s := Color{R: 0.2, G: 0.4, B: 0.6, A: 1}
	d := Color{R: 1, G: 1, B: 1, A: 1}
	if got := Composite(OpSrcOver, s, d); !approx(got, s) {
		t.Errorf("opaque SrcOver = %+v, want source %+v", got, s)
	}
	if got := Composite(OpDstOut, s, d); !approx(got, Color{}) {
		t.Errorf("opaque DstOut = %+v, want transparent", got)
	}
}
