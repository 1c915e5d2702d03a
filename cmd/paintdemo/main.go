// Command paintdemo builds a few sample brush paints, validates them
// through a ValidationCache and prints their canonical form.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/brushpaint"
	"github.com/gogpu/brushpaint/uri"
)

func main() {
	var (
		texture = flag.String("texture", "/texture:grain", "color texture URI")
		repeat  = flag.Int("repeat", 3, "times each paint is validated")
		verbose = flag.Bool("v", false, "log cache activity")
	)
	flag.Parse()

	if *verbose {
		brushpaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	u, err := uri.Parse(*texture)
	if err != nil {
		log.Fatalf("Bad texture: %v", err)
	}

	vc := brushpaint.NewValidationCache(brushpaint.WithCapacity(16))
	report := brushpaint.ReporterFunc(func(code brushpaint.Code, msg string) {
		log.Printf("%s: %s", code, msg)
	})

	for _, p := range samplePaints(u) {
		var ok bool
		for range *repeat {
			ok = brushpaint.CheckOK(report, vc.Validate(p))
		}
		fmt.Printf("%016x valid=%t\n  %s\n", p.Hash(), ok, p)
		if ok {
			describeLayers(p)
		}
	}

	s := vc.Stats()
	log.Printf("Cache: %d hits, %d misses (%.0f%% hit rate)", s.Hits, s.Misses, s.HitRate*100)
}

func samplePaints(u uri.URI) []brushpaint.BrushPaint {
	tiled := brushpaint.NewTextureLayerFor(u)
	tiled.Size = brushpaint.V2(4, 4)
	tiled.Opacity = 0.8

	winding := brushpaint.NewTextureLayerFor(u)
	winding.Mapping = brushpaint.TextureMappingWinding
	winding.SizeUnit = brushpaint.TextureSizeUnitBrushSize
	winding.Rotation = brushpaint.HalfPi
	winding.RotationJitter = brushpaint.Degrees(15)
	winding.BlendMode = brushpaint.BlendModeSrcOver
	winding.Keyframes = []brushpaint.TextureKeyframe{
		{Progress: 0.25, Opacity: brushpaint.Some(0.5)},
		{Progress: 0.75, Size: brushpaint.Some(brushpaint.V2(2, 2)), Rotation: brushpaint.Some(brushpaint.Pi)},
	}

	broken := brushpaint.NewTextureLayerFor(u)
	broken.Rotation = brushpaint.Radians(math.Inf(1))

	return []brushpaint.BrushPaint{
		brushpaint.NewBrushPaint(tiled),
		brushpaint.NewBrushPaint(tiled, winding),
		brushpaint.NewBrushPaint(broken),
	}
}

func describeLayers(p brushpaint.BrushPaint) {
	// Composite each layer's opacity onto an opaque white canvas.
	canvas := brushpaint.RGBA{R: 1, G: 1, B: 1, A: 1}
	for i, layer := range p.TextureLayers {
		base := layer.BasePlacement()
		fmt.Printf("  layer %d: transform %v\n", i, base.Transform().Aff3())
		for _, kf := range layer.Keyframes {
			r := kf.Resolve(layer)
			fmt.Printf("    @%g: size=%v rotation=%v opacity=%g\n", kf.Progress, r.Size, r.Rotation, r.Opacity)
		}
		src := brushpaint.RGBA{R: 0.2, G: 0.3, B: 0.6, A: 1}
		src.A = base.Opacity
		canvas = layer.BlendMode.Composite(src.Premultiply(), canvas)
	}
	fmt.Printf("  composite: %+v\n", canvas)
}
