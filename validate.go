package brushpaint

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidArgument is the class of every validation failure.
// Use errors.Is to test for it.
var ErrInvalidArgument = errors.New("brushpaint: invalid argument")

// ValidationError describes one field of a BrushPaint that a renderer
// cannot safely consume.
type ValidationError struct {
	// Path locates the offending entity, e.g. "texture_layers[1].keyframes[0]".
	Path string

	// Field is the offending field, e.g. "rotation_jitter".
	Field string

	// Value is the rejected value.
	Value float64
}

// Error returns a message naming the field, e.g.
// "brushpaint: texture_layers[0]: `rotation` must be finite, got +Inf".
func (e *ValidationError) Error() string {
	return fmt.Sprintf("brushpaint: %s: `%s` must be finite, got %v", e.Path, e.Field, e.Value)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Validate checks every layer and every keyframe of p and returns nil if
// all of them are valid. Otherwise it returns the first *ValidationError
// in layer order, then keyframe order.
//
// Validate is pure: it neither modifies p nor logs.
func Validate(p BrushPaint) error {
	var first *ValidationError
	walkViolations(p, func(e *ValidationError) bool {
		first = e
		return false
	})
	if first != nil {
		return first
	}
	return nil
}

// Violations returns every validation failure in p, in the order Validate
// would encounter them. It returns nil for a valid paint.
func Violations(p BrushPaint) []*ValidationError {
	var all []*ValidationError
	walkViolations(p, func(e *ValidationError) bool {
		all = append(all, e)
		return true
	})
	return all
}

// walkViolations calls yield for each violation until yield returns false.
func walkViolations(p BrushPaint, yield func(*ValidationError) bool) {
	for i, layer := range p.TextureLayers {
		layerPath := "texture_layers[" + strconv.Itoa(i) + "]"

		if !layer.Rotation.IsFinite() {
			if !yield(&ValidationError{Path: layerPath, Field: "rotation", Value: float64(layer.Rotation)}) {
				return
			}
		}
		if !layer.RotationJitter.IsFinite() {
			if !yield(&ValidationError{Path: layerPath, Field: "rotation_jitter", Value: float64(layer.RotationJitter)}) {
				return
			}
		}

		for j, kf := range layer.Keyframes {
			if rot, ok := kf.Rotation.Get(); ok && !rot.IsFinite() {
				path := layerPath + ".keyframes[" + strconv.Itoa(j) + "]"
				if !yield(&ValidationError{Path: path, Field: "rotation", Value: float64(rot)}) {
					return
				}
			}
		}
	}
}
