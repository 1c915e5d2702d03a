// Package brushpaint describes how procedurally textured paint is applied
// along a drawn stroke.
//
// # Overview
//
// A BrushPaint is an ordered list of TextureLayer values. Each layer names
// a texture, says how it tiles and where it is anchored, gives its base
// size, offset, rotation and opacity, the random jitter ranges around
// those values, a list of TextureKeyframe overrides along the stroke's
// progress, and the BlendMode used to composite it onto the layers before
// it.
//
// The package validates, canonicalizes, compares and hashes these values.
// It does not render: a stroke renderer consumes a configuration after
// Validate has accepted it.
//
// # Quick Start
//
//	layer := brushpaint.NewTextureLayerFor(uri.MustParse("/texture:grain"))
//	layer.Mapping = brushpaint.TextureMappingWinding
//	layer.Rotation = brushpaint.HalfPi
//	layer.Keyframes = []brushpaint.TextureKeyframe{
//	    {Progress: 0.5, Opacity: brushpaint.Some(0.25)},
//	}
//	paint := brushpaint.NewBrushPaint(layer)
//
//	if err := brushpaint.Validate(paint); err != nil {
//	    return err
//	}
//	log.Println(paint) // BrushPaint{texture_layers={TextureLayer{...}}}
//
// Start layers from NewTextureLayer or NewTextureLayerFor rather than a
// TextureLayer{} literal, whose size and opacity are zero.
//
// # Value Semantics
//
// All three entities are plain values. Copying a BrushPaint with Clone
// copies its layers and keyframes; assignment alone shares the slices.
// Equal compares every field, and the order of layers and keyframes is part
// of a value's identity. Hash is consistent with Equal, so paints can key
// caches; ValidationCache does exactly that for Validate.
//
// # Canonical Strings
//
// String on each entity returns a deterministic rendering that depends on
// content only. Enums print as their symbolic names ("kWinding"), angles as
// multiples of π ("0.5π"), vectors as "<x, y>". Keyframes omit the
// overrides they do not set.
//
// # Concurrency
//
// Validate, String, Equal and Hash are pure and safe to call concurrently
// on shared values, provided no goroutine mutates them.
package brushpaint
