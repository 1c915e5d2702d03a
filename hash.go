package brushpaint

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hash functions are consistent with Equal: equal values hash equally.
// Every field that takes part in equality is written, optional fields with
// a presence byte first so that an absent override and an override to the
// default value hash differently.

// Hash returns a 64-bit hash of the keyframe.
func (k TextureKeyframe) Hash() uint64 {
	d := xxhash.New()
	hashKeyframe(d, k)
	return d.Sum64()
}

// Hash returns a 64-bit hash of the layer, including its keyframes in order.
func (l TextureLayer) Hash() uint64 {
	d := xxhash.New()
	hashLayer(d, l)
	return d.Sum64()
}

// Hash returns a 64-bit hash of the paint, including its layers in order.
func (p BrushPaint) Hash() uint64 {
	d := xxhash.New()
	hashWriteLen(d, len(p.TextureLayers))
	for _, l := range p.TextureLayers {
		hashLayer(d, l)
	}
	return d.Sum64()
}

func hashKeyframe(d *xxhash.Digest, k TextureKeyframe) {
	hashWriteFloat64(d, k.Progress)
	hashWriteOptionalVec(d, k.Size)
	hashWriteOptionalVec(d, k.Offset)
	v, ok := k.Rotation.Get()
	hashWriteBool(d, ok)
	if ok {
		hashWriteFloat64(d, float64(v))
	}
	o, ok := k.Opacity.Get()
	hashWriteBool(d, ok)
	if ok {
		hashWriteFloat64(d, o)
	}
}

func hashLayer(d *xxhash.Digest, l TextureLayer) {
	hashWriteString(d, l.ColorTextureURI.String())
	hashWriteUint64(d, uint64(l.Mapping))
	hashWriteUint64(d, uint64(l.Origin))
	hashWriteUint64(d, uint64(l.SizeUnit))
	hashWriteVec(d, l.Size)
	hashWriteVec(d, l.Offset)
	hashWriteFloat64(d, float64(l.Rotation))
	hashWriteVec(d, l.SizeJitter)
	hashWriteVec(d, l.OffsetJitter)
	hashWriteFloat64(d, float64(l.RotationJitter))
	hashWriteFloat64(d, l.Opacity)
	hashWriteLen(d, len(l.Keyframes))
	for _, k := range l.Keyframes {
		hashKeyframe(d, k)
	}
	hashWriteUint64(d, uint64(l.BlendMode))
}

// hashWriteUint64 writes a uint64 to the hash.
func hashWriteUint64(d *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = d.Write(buf[:])
}

// hashWriteFloat64 writes a float64 with -0 folded to 0.
func hashWriteFloat64(d *xxhash.Digest, f float64) {
	hashWriteUint64(d, math.Float64bits(foldZero(f)))
}

func hashWriteVec(d *xxhash.Digest, v Vec) {
	hashWriteFloat64(d, v.X)
	hashWriteFloat64(d, v.Y)
}

func hashWriteOptionalVec(d *xxhash.Digest, o Optional[Vec]) {
	v, ok := o.Get()
	hashWriteBool(d, ok)
	if ok {
		hashWriteVec(d, v)
	}
}

// hashWriteLen writes a sequence length so that element boundaries are
// unambiguous.
func hashWriteLen(d *xxhash.Digest, n int) {
	hashWriteUint64(d, uint64(n))
}

// hashWriteString writes a length-prefixed string to the hash.
func hashWriteString(d *xxhash.Digest, s string) {
	hashWriteLen(d, len(s))
	_, _ = d.WriteString(s)
}

// hashWriteBool writes a bool to the hash.
func hashWriteBool(d *xxhash.Digest, v bool) {
	if v {
		_, _ = d.Write([]byte{1})
	} else {
		_, _ = d.Write([]byte{0})
	}
}
