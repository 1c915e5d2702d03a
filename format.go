package brushpaint

import "strings"

// Canonical strings are a function of content only. They are used as log
// output and in golden tests, so the field order and spelling are fixed.

// String renders the keyframe, printing progress and only the overrides
// that are present:
//
//	TextureKeyframe{progress=0.3, size=<4, 6>, rotation=0.5π}
func (k TextureKeyframe) String() string {
	var b strings.Builder
	k.writeTo(&b)
	return b.String()
}

func (k TextureKeyframe) writeTo(b *strings.Builder) {
	b.WriteString("TextureKeyframe{progress=")
	b.WriteString(formatScalar(k.Progress))
	if v, ok := k.Size.Get(); ok {
		b.WriteString(", size=")
		b.WriteString(v.String())
	}
	if v, ok := k.Offset.Get(); ok {
		b.WriteString(", offset=")
		b.WriteString(v.String())
	}
	if v, ok := k.Rotation.Get(); ok {
		b.WriteString(", rotation=")
		b.WriteString(v.String())
	}
	if v, ok := k.Opacity.Get(); ok {
		b.WriteString(", opacity=")
		b.WriteString(formatScalar(v))
	}
	b.WriteByte('}')
}

// String renders every field of the layer in declaration order. An unset
// texture prints as "color_texture_uri=".
func (l TextureLayer) String() string {
	var b strings.Builder
	l.writeTo(&b)
	return b.String()
}

func (l TextureLayer) writeTo(b *strings.Builder) {
	b.WriteString("TextureLayer{color_texture_uri=")
	b.WriteString(l.ColorTextureURI.String())
	b.WriteString(", mapping=")
	b.WriteString(l.Mapping.String())
	b.WriteString(", origin=")
	b.WriteString(l.Origin.String())
	b.WriteString(", size_unit=")
	b.WriteString(l.SizeUnit.String())
	b.WriteString(", size=")
	b.WriteString(l.Size.String())
	b.WriteString(", offset=")
	b.WriteString(l.Offset.String())
	b.WriteString(", rotation=")
	b.WriteString(l.Rotation.String())
	b.WriteString(", size_jitter=")
	b.WriteString(l.SizeJitter.String())
	b.WriteString(", offset_jitter=")
	b.WriteString(l.OffsetJitter.String())
	b.WriteString(", rotation_jitter=")
	b.WriteString(l.RotationJitter.String())
	b.WriteString(", opacity=")
	b.WriteString(formatScalar(l.Opacity))
	b.WriteString(", keyframes={")
	for i, k := range l.Keyframes {
		if i > 0 {
			b.WriteString(", ")
		}
		k.writeTo(b)
	}
	b.WriteString("}, blend_mode=")
	b.WriteString(l.BlendMode.String())
	b.WriteByte('}')
}

// String renders the paint as "BrushPaint{texture_layers={...}}".
func (p BrushPaint) String() string {
	var b strings.Builder
	b.WriteString("BrushPaint{texture_layers={")
	for i, l := range p.TextureLayers {
		if i > 0 {
			b.WriteString(", ")
		}
		l.writeTo(&b)
	}
	b.WriteString("}}")
	return b.String()
}
