// Package table implements the lookup-table variants under comparison.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package table

import (
	"sync"

	"github.com/NVIDIA/keyspeed/corpus"

	"github.com/cockroachdb/swiss"
	"github.com/tidwall/btree"
)

// Supplementary container families, one more column each in the comparison.
// All are built once and read-only afterwards.

// StdMap is the native map.
type StdMap struct {
	m map[string]uint64
}

func NewStdMap(c *corpus.Corpus) *StdMap {
	t := &StdMap{m: make(map[string]uint64, c.Len())}
	for _, key := range c.Keys {
		t.m[key] = Payload(key)
	}
	return t
}

func (t *StdMap) Lookup(key string) (uint64, bool) {
	v, ok := t.m[key]
	return v, ok
}

// LookupBytes relies on the compiler-recognized m[string(b)] form, which
// does not allocate - the native map is transparent for byte views.
func (t *StdMap) LookupBytes(b []byte) (uint64, bool) {
	v, ok := t.m[string(b)]
	return v, ok
}

func (t *StdMap) Len() int { return len(t.m) }

// SyncMap wraps sync.Map, the read-mostly counterpart.
type SyncMap struct {
	m     sync.Map
	count int
}

func NewSyncMap(c *corpus.Corpus) *SyncMap {
	t := &SyncMap{count: c.Len()}
	for _, key := range c.Keys {
		t.m.Store(key, Payload(key))
	}
	return t
}

func (t *SyncMap) Lookup(key string) (uint64, bool) {
	v, ok := t.m.Load(key)
	if !ok {
		return 0, false
	}
	return v.(uint64), true
}

func (t *SyncMap) Len() int { return t.count }

// BTreeMap is the ecosystem ordered container.
type BTreeMap struct {
	m btree.Map[string, uint64]
}

func NewBTreeMap(c *corpus.Corpus) *BTreeMap {
	t := &BTreeMap{}
	for _, key := range c.Keys {
		t.m.Set(key, Payload(key))
	}
	return t
}

func (t *BTreeMap) Lookup(key string) (uint64, bool) { return t.m.Get(key) }

func (t *BTreeMap) Len() int { return t.m.Len() }

// SwissMap is the ecosystem SwissTable.
type SwissMap struct {
	m *swiss.Map[string, uint64]
}

func NewSwissMap(c *corpus.Corpus) *SwissMap {
	t := &SwissMap{m: swiss.New[string, uint64](c.Len())}
	for _, key := range c.Keys {
		t.m.Put(key, Payload(key))
	}
	return t
}

func (t *SwissMap) Lookup(key string) (uint64, bool) { return t.m.Get(key) }

func (t *SwissMap) Len() int { return t.m.Len() }
