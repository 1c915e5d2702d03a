package brushpaint

import "strconv"

// TextureMapping specifies how a texture repeats or fills the stroke.
type TextureMapping int

const (
	// TextureMappingTiling repeats the texture across the stroke plane.
	TextureMappingTiling TextureMapping = iota
	// TextureMappingWinding wraps the texture along the stroke path.
	TextureMappingWinding
)

// String returns the symbolic name, or "TextureMapping(n)" for undefined values.
func (m TextureMapping) String() string {
	switch m {
	case TextureMappingTiling:
		return "kTiling"
	case TextureMappingWinding:
		return "kWinding"
	default:
		return undefinedEnum("TextureMapping", int(m))
	}
}

// IsValid reports whether m is a defined TextureMapping.
func (m TextureMapping) IsValid() bool {
	return m >= TextureMappingTiling && m <= TextureMappingWinding
}

// TextureOrigin specifies the anchor a texture is placed relative to.
type TextureOrigin int

const (
	// TextureOriginStrokeSpaceOrigin anchors at the origin of stroke space.
	TextureOriginStrokeSpaceOrigin TextureOrigin = iota
	// TextureOriginFirstStrokeInput anchors at the first input of the stroke.
	TextureOriginFirstStrokeInput
	// TextureOriginLastStrokeInput anchors at the last input of the stroke.
	TextureOriginLastStrokeInput
)

// String returns the symbolic name, or "TextureOrigin(n)" for undefined values.
func (o TextureOrigin) String() string {
	switch o {
	case TextureOriginStrokeSpaceOrigin:
		return "kStrokeSpaceOrigin"
	case TextureOriginFirstStrokeInput:
		return "kFirstStrokeInput"
	case TextureOriginLastStrokeInput:
		return "kLastStrokeInput"
	default:
		return undefinedEnum("TextureOrigin", int(o))
	}
}

// IsValid reports whether o is a defined TextureOrigin.
func (o TextureOrigin) IsValid() bool {
	return o >= TextureOriginStrokeSpaceOrigin && o <= TextureOriginLastStrokeInput
}

// TextureSizeUnit specifies the units of a layer's size and offset.
type TextureSizeUnit int

const (
	// TextureSizeUnitStrokeCoordinates measures in stroke coordinate units.
	TextureSizeUnitStrokeCoordinates TextureSizeUnit = iota
	// TextureSizeUnitBrushSize measures in multiples of the brush size.
	TextureSizeUnitBrushSize
	// TextureSizeUnitStrokeSize measures in multiples of the stroke bounds.
	TextureSizeUnitStrokeSize
)

// String returns the symbolic name, or "TextureSizeUnit(n)" for undefined values.
func (u TextureSizeUnit) String() string {
	switch u {
	case TextureSizeUnitStrokeCoordinates:
		return "kStrokeCoordinates"
	case TextureSizeUnitBrushSize:
		return "kBrushSize"
	case TextureSizeUnitStrokeSize:
		return "kStrokeSize"
	default:
		return undefinedEnum("TextureSizeUnit", int(u))
	}
}

// IsValid reports whether u is a defined TextureSizeUnit.
func (u TextureSizeUnit) IsValid() bool {
	return u >= TextureSizeUnitStrokeCoordinates && u <= TextureSizeUnitStrokeSize
}

// BlendMode specifies how a texture layer is composited onto the paint
// accumulated from the layers before it. The layer is the source and the
// accumulated paint is the destination.
type BlendMode int

const (
	// BlendModeModulate multiplies source and destination: S*D.
	BlendModeModulate BlendMode = iota
	// BlendModeDstIn keeps destination where the source covers it: D*Sa.
	BlendModeDstIn
	// BlendModeDstOut keeps destination where the source does not cover it: D*(1-Sa).
	BlendModeDstOut
	// BlendModeSrcAtop draws source over destination only where destination exists.
	BlendModeSrcAtop
	// BlendModeSrcIn keeps source where the destination covers it: S*Da.
	BlendModeSrcIn
	// BlendModeSrcOver draws source over destination.
	BlendModeSrcOver
	// BlendModeSrc replaces destination with source.
	BlendModeSrc
	// BlendModeXor keeps the non-overlapping parts of source and destination.
	BlendModeXor
)

// String returns the symbolic name, or "BlendMode(n)" for undefined values.
func (m BlendMode) String() string {
	switch m {
	case BlendModeModulate:
		return "kModulate"
	case BlendModeDstIn:
		return "kDstIn"
	case BlendModeDstOut:
		return "kDstOut"
	case BlendModeSrcAtop:
		return "kSrcAtop"
	case BlendModeSrcIn:
		return "kSrcIn"
	case BlendModeSrcOver:
		return "kSrcOver"
	case BlendModeSrc:
		return "kSrc"
	case BlendModeXor:
		return "kXor"
	default:
		return undefinedEnum("BlendMode", int(m))
	}
}

// IsValid reports whether m is a defined BlendMode.
func (m BlendMode) IsValid() bool {
	return m >= BlendModeModulate && m <= BlendModeXor
}

func undefinedEnum(name string, v int) string {
	return name + "(" + strconv.Itoa(v) + ")"
}
