// Package cache provides a generic, sharded LRU cache.
//
// ShardedCache splits its entries across DefaultShardCount shards, each
// guarded by its own mutex, so that concurrent callers working on
// different keys rarely contend. Each shard evicts its least recently used
// entry once it holds more than its capacity.
//
// Keys are spread across shards by a Hasher. StringHasher and Uint64Hasher
// cover the common key types; callers whose keys are already well-mixed
// hashes, such as brush paint hashes, should use Uint64Hasher.
package cache
