package brushpaint

import (
	"slices"

	"github.com/gogpu/brushpaint/uri"
)

// TextureKeyframe overrides some of a layer's base parameters at a point of
// progress along the stroke.
//
// Absent fields inherit the layer's base value; they do not mean zero. The
// zero TextureKeyframe has progress 0 and overrides nothing.
//
// TextureKeyframe values are comparable with ==.
type TextureKeyframe struct {
	// Progress is the keyframe's position on the layer's progress axis,
	// conceptually in [0, 1]. The range is not enforced.
	Progress float64

	// Size overrides TextureLayer.Size when set.
	Size Optional[Vec]

	// Offset overrides TextureLayer.Offset when set.
	Offset Optional[Vec]

	// Rotation overrides TextureLayer.Rotation when set. Must be finite.
	Rotation Optional[Angle]

	// Opacity overrides TextureLayer.Opacity when set.
	Opacity Optional[float64]
}

// Equal reports whether k and other have identical fields.
func (k TextureKeyframe) Equal(other TextureKeyframe) bool {
	return k == other
}

// TextureLayer is one procedural texture application in a BrushPaint.
//
// Use NewTextureLayer to obtain a layer with the documented defaults; the
// zero TextureLayer has a zero size and zero opacity.
type TextureLayer struct {
	// ColorTextureURI names the texture. The zero URI means unset.
	ColorTextureURI uri.URI

	// Mapping selects how the texture repeats. Default Tiling.
	Mapping TextureMapping

	// Origin selects the placement anchor. Default StrokeSpaceOrigin.
	Origin TextureOrigin

	// SizeUnit selects the units of Size and Offset. Default StrokeCoordinates.
	SizeUnit TextureSizeUnit

	// Size is the base texture size. Default <1, 1>.
	Size Vec

	// Offset is the base texture offset. Default <0, 0>.
	Offset Vec

	// Rotation is the base texture rotation. Must be finite.
	Rotation Angle

	// SizeJitter is the maximum random deviation of Size.
	SizeJitter Vec

	// OffsetJitter is the maximum random deviation of Offset.
	OffsetJitter Vec

	// RotationJitter is the maximum random deviation of Rotation. Must be finite.
	RotationJitter Angle

	// Opacity is the base opacity, conceptually in [0, 1]. Default 1.
	Opacity float64

	// Keyframes are applied in order. Their order is part of the layer's identity.
	Keyframes []TextureKeyframe

	// BlendMode composites this layer onto the layers before it. Default Modulate.
	BlendMode BlendMode
}

// NewTextureLayer returns a layer with every field at its default value.
func NewTextureLayer() TextureLayer {
	return TextureLayer{
		Mapping:   TextureMappingTiling,
		Origin:    TextureOriginStrokeSpaceOrigin,
		SizeUnit:  TextureSizeUnitStrokeCoordinates,
		Size:      Vec{X: 1, Y: 1},
		Opacity:   1,
		BlendMode: BlendModeModulate,
	}
}

// NewTextureLayerFor returns a default layer that samples the texture named by u.
func NewTextureLayerFor(u uri.URI) TextureLayer {
	l := NewTextureLayer()
	l.ColorTextureURI = u
	return l
}

// Clone returns a deep copy of the layer. The keyframe slice is not shared.
func (l TextureLayer) Clone() TextureLayer {
	l.Keyframes = slices.Clone(l.Keyframes)
	return l
}

// Equal reports whether l and other have identical fields, including the
// keyframes in the same order.
func (l TextureLayer) Equal(other TextureLayer) bool {
	return l.ColorTextureURI == other.ColorTextureURI &&
		l.Mapping == other.Mapping &&
		l.Origin == other.Origin &&
		l.SizeUnit == other.SizeUnit &&
		l.Size == other.Size &&
		l.Offset == other.Offset &&
		l.Rotation == other.Rotation &&
		l.SizeJitter == other.SizeJitter &&
		l.OffsetJitter == other.OffsetJitter &&
		l.RotationJitter == other.RotationJitter &&
		l.Opacity == other.Opacity &&
		slices.Equal(l.Keyframes, other.Keyframes) &&
		l.BlendMode == other.BlendMode
}

// BrushPaint describes how texture is applied along a stroke.
//
// TextureLayers are composited back to front in slice order. A BrushPaint
// with no layers paints flat color. Build layers with NewTextureLayer or
// NewTextureLayerFor; a TextureLayer{} literal has zero size and opacity.
type BrushPaint struct {
	TextureLayers []TextureLayer
}

// NewBrushPaint returns a paint with the given layers. The slice is copied.
func NewBrushPaint(layers ...TextureLayer) BrushPaint {
	return BrushPaint{TextureLayers: cloneLayers(layers)}
}

// Clone returns a deep copy of the paint. Neither layers nor keyframes are
// shared with p.
func (p BrushPaint) Clone() BrushPaint {
	return BrushPaint{TextureLayers: cloneLayers(p.TextureLayers)}
}

// Equal reports whether p and other have equal layers in the same order.
func (p BrushPaint) Equal(other BrushPaint) bool {
	return slices.EqualFunc(p.TextureLayers, other.TextureLayers, TextureLayer.Equal)
}

func cloneLayers(layers []TextureLayer) []TextureLayer {
	if layers == nil {
		return nil
	}
	out := make([]TextureLayer, len(layers))
	for i, l := range layers {
		out[i] = l.Clone()
	}
	return out
}
