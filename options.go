package brushpaint

import "log/slog"

// CacheOption configures a ValidationCache during creation.
//
// Example:
//
//	vc := brushpaint.NewValidationCache(
//	    brushpaint.WithCapacity(64),
//	    brushpaint.WithLogger(logger),
//	)
type CacheOption func(*cacheOptions)

// cacheOptions holds optional configuration for ValidationCache creation.
type cacheOptions struct {
	capacity int
	logger   *slog.Logger
}

// defaultCacheOptions returns the default cache options.
func defaultCacheOptions() cacheOptions {
	return cacheOptions{
		capacity: 0,   // cache.DefaultCapacity
		logger:   nil, // package logger, resolved on each use
	}
}

// WithCapacity sets the number of distinct paint hashes each cache shard
// retains before evicting the least recently used.
// Values <= 0 select the cache package default.
func WithCapacity(n int) CacheOption {
	return func(o *cacheOptions) {
		o.capacity = n
	}
}

// WithLogger sets a logger for the cache, overriding the package logger
// configured with SetLogger.
func WithLogger(l *slog.Logger) CacheOption {
	return func(o *cacheOptions) {
		o.logger = l
	}
}
