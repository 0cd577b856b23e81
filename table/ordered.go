// Package table implements the lookup-table variants under comparison.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package table

import (
	"slices"
	"sort"

	"github.com/NVIDIA/keyspeed/cmn/cos"
	"github.com/NVIDIA/keyspeed/cmn/debug"
	"github.com/NVIDIA/keyspeed/corpus"
)

// Ordered storage: flat sorted (key, value) slabs, binary search.
// Built once, read-only afterwards - safe for concurrent lookups.

type slab struct {
	keys []string
	vals []uint64
}

func newSlab(keys []string, vals []uint64) slab {
	debug.Assert(len(keys) == len(vals))
	type kv struct {
		key string
		val uint64
	}
	pairs := make([]kv, len(keys))
	for i, key := range keys {
		pairs[i] = kv{key, vals[i]}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	s := slab{keys: make([]string, len(keys)), vals: make([]uint64, len(keys))}
	for i := range pairs {
		s.keys[i] = pairs[i].key
		s.vals[i] = pairs[i].val
	}
	debug.Assert(slices.IsSorted(s.keys))
	for i := 1; i < len(s.keys); i++ {
		debug.Assertf(s.keys[i-1] != s.keys[i], "duplicate key %q", s.keys[i])
	}
	return s
}

// find is the one canonical byte-wise lexicographic rule; every calling
// convention of every ordered variant resolves through it.
func (s *slab) find(key string) (uint64, bool) {
	i, ok := slices.BinarySearch(s.keys, key)
	if !ok {
		return 0, false
	}
	return s.vals[i], true
}

// Ordered accepts the owned-key calling convention only; callers holding a
// view or a raw pair must materialize a temporary owned key.
type Ordered struct {
	s slab
}

func NewOrdered(c *corpus.Corpus) *Ordered {
	return &Ordered{newSlab(c.Keys, payloads(c.Keys))}
}

func (t *Ordered) Lookup(key string) (uint64, bool) { return t.s.find(key) }
func (t *Ordered) Len() int                         { return len(t.s.keys) }

// OrderedAny additionally accepts views and raw pairs; all three conventions
// reach the same binary search via zero-copy conversion, with no temporary
// owned key constructed.
type OrderedAny struct {
	s slab
}

func NewOrderedAny(c *corpus.Corpus) *OrderedAny {
	return &OrderedAny{newSlab(c.Keys, payloads(c.Keys))}
}

func (t *OrderedAny) Lookup(key string) (uint64, bool) { return t.s.find(key) }

func (t *OrderedAny) LookupBytes(b []byte) (uint64, bool) { return t.s.find(cos.UnsafeS(b)) }

func (t *OrderedAny) LookupRaw(p *byte, n int) (uint64, bool) { return t.s.find(cos.UnsafeSPtr(p, n)) }

func (t *OrderedAny) Len() int { return len(t.s.keys) }
