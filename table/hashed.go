// Package table implements the lookup-table variants under comparison.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package table

import (
	"github.com/NVIDIA/keyspeed/cmn/cos"
	"github.com/NVIDIA/keyspeed/cmn/debug"
	"github.com/NVIDIA/keyspeed/corpus"

	"github.com/cespare/xxhash/v2"
)

// Hash storage: power-of-two bucket array, per-bucket entry slices.
// xxhash.Sum64String and xxhash.Sum64 produce identical digests for identical
// bytes, so every calling convention lands in the same bucket - which is the
// whole transparency guarantee.

type (
	bentry struct {
		digest uint64
		key    string
		val    uint64
	}
	buckets struct {
		slots [][]bentry
		mask  uint64
		count int
	}
)

func newBuckets(keys []string, vals []uint64) buckets {
	debug.Assert(len(keys) == len(vals))
	size := 1
	for size < len(keys) {
		size <<= 1
	}
	debug.Assert(size&(size-1) == 0)
	b := buckets{slots: make([][]bentry, size), mask: uint64(size - 1), count: len(keys)}
	for i, key := range keys {
		digest := xxhash.Sum64String(key)
		j := digest & b.mask
		b.slots[j] = append(b.slots[j], bentry{digest, key, vals[i]})
	}
	return b
}

func (b *buckets) find(digest uint64, key string) (uint64, bool) {
	slot := b.slots[digest&b.mask]
	for i := range slot {
		e := &slot[i]
		if e.digest == digest && e.key == key {
			return e.val, true
		}
	}
	return 0, false
}

// findBytes compares via the `e.key == string(b)` form, which the compiler
// recognizes and performs without allocating.
func (b *buckets) findBytes(digest uint64, key []byte) (uint64, bool) {
	slot := b.slots[digest&b.mask]
	for i := range slot {
		e := &slot[i]
		if e.digest == digest && e.key == string(key) {
			return e.val, true
		}
	}
	return 0, false
}

// Hashed accepts the owned-key calling convention only.
type Hashed struct {
	b buckets
}

func NewHashed(c *corpus.Corpus) *Hashed {
	return &Hashed{newBuckets(c.Keys, payloads(c.Keys))}
}

func (t *Hashed) Lookup(key string) (uint64, bool) {
	return t.b.find(xxhash.Sum64String(key), key)
}

func (t *Hashed) Len() int { return t.b.count }

// HashedAny additionally accepts views and raw pairs, digesting the bytes
// directly - no temporary owned key constructed.
type HashedAny struct {
	b buckets
}

func NewHashedAny(c *corpus.Corpus) *HashedAny {
	return &HashedAny{newBuckets(c.Keys, payloads(c.Keys))}
}

func (t *HashedAny) Lookup(key string) (uint64, bool) {
	return t.b.find(xxhash.Sum64String(key), key)
}

func (t *HashedAny) LookupBytes(b []byte) (uint64, bool) {
	return t.b.findBytes(xxhash.Sum64(b), b)
}

func (t *HashedAny) LookupRaw(p *byte, n int) (uint64, bool) {
	b := cos.UnsafeBPtr(p, n)
	return t.b.findBytes(xxhash.Sum64(b), b)
}

func (t *HashedAny) Len() int { return t.b.count }
