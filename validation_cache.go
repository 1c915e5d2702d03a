package brushpaint

import (
	"log/slog"

	"github.com/gogpu/brushpaint/cache"
)

// ValidationCache memoizes Validate for configurations that are validated
// repeatedly, such as the paint of every stroke drawn with the same brush.
//
// Entries are keyed by BrushPaint.Hash and confirmed with BrushPaint.Equal,
// so two paints share a result only when they are equal. The cache stores
// its own deep copy of each paint; callers may keep mutating theirs.
//
// ValidationCache is safe for concurrent use.
type ValidationCache struct {
	entries *cache.ShardedCache[uint64, []validationEntry]
	logger  *slog.Logger
}

// validationEntry is one paint in a hash bucket with its Validate result.
type validationEntry struct {
	paint BrushPaint
	err   error
}

// NewValidationCache creates an empty ValidationCache.
func NewValidationCache(opts ...CacheOption) *ValidationCache {
	o := defaultCacheOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ValidationCache{
		entries: cache.NewSharded[uint64, []validationEntry](o.capacity, cache.Uint64Hasher),
		logger:  o.logger,
	}
}

// Validate returns the same result as the package-level Validate for p,
// computing it at most once per distinct paint while the paint is cached.
// Each call returns its own copy of a cached error.
//
// A paint holding NaN is not equal to itself and could never be found
// again, so it is validated without touching the cache.
func (vc *ValidationCache) Validate(p BrushPaint) error {
	if !p.Equal(p) {
		result := Validate(p)
		vc.logMiss(p, p.Hash(), result)
		return result
	}

	h := p.Hash()
	bucket, _ := vc.entries.Get(h)
	for _, e := range bucket {
		if e.paint.Equal(p) {
			return copyError(e.err)
		}
	}

	result := Validate(p)
	vc.logMiss(p, h, result)

	stored := validationEntry{paint: p.Clone(), err: copyError(result)}
	vc.entries.Update(h, func(bucket []validationEntry, _ bool) []validationEntry {
		for _, e := range bucket {
			if e.paint.Equal(p) {
				return bucket
			}
		}
		// Copy the bucket so slices returned by earlier calls stay intact.
		next := make([]validationEntry, len(bucket), len(bucket)+1)
		copy(next, bucket)
		return append(next, stored)
	})
	return result
}

func (vc *ValidationCache) logMiss(p BrushPaint, h uint64, result error) {
	vc.log().Debug("brushpaint: validation cache miss",
		"hash", h,
		"layers", len(p.TextureLayers))
	if result != nil {
		vc.log().Debug("brushpaint: configuration rejected", "hash", h, "err", result)
	}
}

// copyError returns a fresh *ValidationError so that callers mutating the
// error they receive cannot change what the cache returns later.
func copyError(err error) error {
	if ve, ok := err.(*ValidationError); ok {
		c := *ve
		return &c
	}
	return err
}

// Len returns the number of hash buckets held.
func (vc *ValidationCache) Len() int {
	return vc.entries.Len()
}

// Stats returns hit and miss counters of the underlying cache. A hit means
// a bucket for the paint's hash existed. Paints holding NaN are not counted.
func (vc *ValidationCache) Stats() cache.Stats {
	return vc.entries.Stats()
}

// Clear drops every cached result and resets the hit and miss counters.
func (vc *ValidationCache) Clear() {
	vc.entries.Clear()
	vc.entries.ResetStats()
}

func (vc *ValidationCache) log() *slog.Logger {
	if vc.logger != nil {
		return vc.logger
	}
	return Logger()
}
