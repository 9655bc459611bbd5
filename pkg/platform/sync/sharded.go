// Package sync provides sharded locking primitives for per-resource
// serialization without a single global lock.
package sync

import (
	"encoding/binary"
	"sync"
)

// shardCount is a power of two so shard selection is a mask.
const shardCount = 64

// ShardedMutex serializes operations per 32-byte key. Operations on distinct
// keys usually proceed concurrently; operations on the same key are always
// serialized. Used by the transition engine to model the host's write-conflict
// detection over course accounts.
type ShardedMutex struct {
	shards [shardCount]sync.Mutex
}

// NewShardedMutex creates a ShardedMutex.
func NewShardedMutex() *ShardedMutex {
	return &ShardedMutex{}
}

// Lock acquires the lock for the key's shard.
func (m *ShardedMutex) Lock(key [32]byte) {
	m.shards[shardFor(key)].Lock()
}

// Unlock releases the lock for the key's shard.
func (m *ShardedMutex) Unlock(key [32]byte) {
	m.shards[shardFor(key)].Unlock()
}

// shardFor maps a key to a shard. Keys are already uniformly distributed
// (they are hash-derived addresses), so the low bits suffice.
func shardFor(key [32]byte) int {
	return int(binary.BigEndian.Uint64(key[:8]) & (shardCount - 1))
}
