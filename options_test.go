package brushpaint

import (
	"log/slog"
	"testing"

	"github.com/gogpu/brushpaint/cache"
)

// TestDefaultCacheOptions tests that the default options resolve to the
// cache package default capacity and the package logger.
func TestDefaultCacheOptions(t *testing.T) {
	vc := NewValidationCache()
	if got := vc.Stats().Capacity; got != cache.DefaultCapacity {
		t.Errorf("default capacity = %d, want %d", got, cache.DefaultCapacity)
	}
	if vc.logger != nil {
		t.Error("default cache should use the package logger")
	}
	if vc.log() != Logger() {
		t.Error("log() should fall back to Logger()")
	}
}

func TestWithCapacity(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"explicit", 8, 8},
		{"zero uses default", 0, cache.DefaultCapacity},
		{"negative uses default", -3, cache.DefaultCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vc := NewValidationCache(WithCapacity(tt.n))
			if got := vc.Stats().Capacity; got != tt.want {
				t.Errorf("capacity = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWithLogger(t *testing.T) {
	l := slog.New(nopHandler{})
	vc := NewValidationCache(WithLogger(l))
	if vc.log() != l {
		t.Error("WithLogger() logger not used")
	}
}

// TestOptionsOrder tests that later options override earlier ones.
func TestOptionsOrder(t *testing.T) {
	vc := NewValidationCache(WithCapacity(4), WithCapacity(16))
	if got := vc.Stats().Capacity; got != 16 {
		t.Errorf("capacity = %d, want 16", got)
	}
}
