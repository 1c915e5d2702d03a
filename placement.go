package brushpaint

// TexturePlacement is the effective placement of a texture layer at a
// keyframe, after absent keyframe overrides have inherited the layer's base
// values. Jitter is not applied.
type TexturePlacement struct {
	Size     Vec
	Offset   Vec
	Rotation Angle
	Opacity  float64
}

// BasePlacement returns the layer's placement without any keyframe.
func (l TextureLayer) BasePlacement() TexturePlacement {
	return TexturePlacement{
		Size:     l.Size,
		Offset:   l.Offset,
		Rotation: l.Rotation,
		Opacity:  l.Opacity,
	}
}

// Resolve applies k's present overrides to the base placement of layer.
// Absent overrides keep the layer's value. No interpolation between
// keyframes takes place.
func (k TextureKeyframe) Resolve(layer TextureLayer) TexturePlacement {
	return TexturePlacement{
		Size:     k.Size.ValueOr(layer.Size),
		Offset:   k.Offset.ValueOr(layer.Offset),
		Rotation: k.Rotation.ValueOr(layer.Rotation),
		Opacity:  k.Opacity.ValueOr(layer.Opacity),
	}
}

// Transform maps the unit texture square into the layer's size units:
// scale by Size, then rotate by Rotation, then translate by Offset.
func (p TexturePlacement) Transform() Matrix {
	return Translate(p.Offset).Multiply(Rotate(p.Rotation)).Multiply(Scale(p.Size))
}
