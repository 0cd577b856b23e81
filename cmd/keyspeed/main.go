// Package main
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package main

import (
	"fmt"
	"os"

	"github.com/NVIDIA/keyspeed/cmn/cos"
	"github.com/NVIDIA/keyspeed/corpus"
	"github.com/NVIDIA/keyspeed/table"
	"github.com/NVIDIA/keyspeed/trial"
)

// =============Preamble================
// This benchmark compares string-key lookup performance of ordered and
// hash-bucketed tables under three calling conventions - owned string,
// zero-copy byte view, and raw pointer-and-length pair - with and without
// transparent lookup (i.e., lookup that does not construct a temporary owned
// key). A few ecosystem container families are timed alongside for scale.
//
// Two corpora run back to back: short keys, whose temporary conversions fit
// the runtime's 32-byte stack buffer, and long keys, which force a heap
// allocation on every non-transparent probe.
//
// No flags are parsed: corpus size, iteration count and key lengths are the
// constants below. Each trial prints `<label> timing: <N>ms`; the grand
// total printed last is meaningless by itself and exists so the lookup loops
// are observably used.

const (
	corpusSize = 8192
	iterations = 64
	missCount  = corpusSize / 8

	shortMinLen = 9  // shortid natural length; every short key stays under 32 bytes
	longMinLen  = 64 // every long key is 64 bytes, past the 32-byte threshold
)

type (
	lookuper interface {
		Lookup(string) (uint64, bool)
	}
	bytesLookuper interface {
		LookupBytes([]byte) (uint64, bool)
	}
	rawLookuper interface {
		LookupRaw(*byte, int) (uint64, bool)
	}
)

func main() {
	bench("short", shortMinLen)
	bench("long", longMinLen)
}

func bench(name string, minLen int) {
	c, err := corpus.New(corpusSize, minLen)
	if err != nil {
		cos.Exitf("%s corpus: %v", name, err)
	}
	fmt.Printf("%s corpus: %s keys\t Min key len: %d\t Iterations: %d\n",
		name, cos.FormatBigInt(c.Len()), minLen, iterations)

	var (
		r trial.Runner

		ordered    = table.NewOrdered(c)
		orderedAny = table.NewOrderedAny(c)
		hashed     = table.NewHashed(c)
		hashedAny  = table.NewHashedAny(c)

		stdm  = table.NewStdMap(c)
		syncm = table.NewSyncMap(c)
		btm   = table.NewBTreeMap(c)
		swm   = table.NewSwissMap(c)

		absent = c.Absent(missCount)
	)

	// core matrix: every table variant x every calling convention
	r.Run("ordered/owned", iterations, func() uint64 { return ownedPass(ordered, c) })
	r.Run("ordered/bytes", iterations, func() uint64 { return tempBytesPass(ordered, c) })
	r.Run("ordered/raw", iterations, func() uint64 { return tempRawPass(ordered, c) })
	r.Run("ordered-any/owned", iterations, func() uint64 { return ownedPass(orderedAny, c) })
	r.Run("ordered-any/bytes", iterations, func() uint64 { return bytesPass(orderedAny, c) })
	r.Run("ordered-any/raw", iterations, func() uint64 { return rawPass(orderedAny, c) })
	r.Run("hashed/owned", iterations, func() uint64 { return ownedPass(hashed, c) })
	r.Run("hashed/bytes", iterations, func() uint64 { return tempBytesPass(hashed, c) })
	r.Run("hashed/raw", iterations, func() uint64 { return tempRawPass(hashed, c) })
	r.Run("hashed-any/owned", iterations, func() uint64 { return ownedPass(hashedAny, c) })
	r.Run("hashed-any/bytes", iterations, func() uint64 { return bytesPass(hashedAny, c) })
	r.Run("hashed-any/raw", iterations, func() uint64 { return rawPass(hashedAny, c) })

	// supplementary families
	r.Run("stdmap/owned", iterations, func() uint64 { return ownedPass(stdm, c) })
	r.Run("stdmap/bytes", iterations, func() uint64 { return bytesPass(stdm, c) })
	r.Run("syncmap/owned", iterations, func() uint64 { return ownedPass(syncm, c) })
	r.Run("syncmap/bytes", iterations, func() uint64 { return tempBytesPass(syncm, c) })
	r.Run("btree/owned", iterations, func() uint64 { return ownedPass(btm, c) })
	r.Run("btree/bytes", iterations, func() uint64 { return tempBytesPass(btm, c) })
	r.Run("swiss/owned", iterations, func() uint64 { return ownedPass(swm, c) })
	r.Run("swiss/bytes", iterations, func() uint64 { return tempBytesPass(swm, c) })

	// misses accumulate nothing
	r.Run("ordered-any/miss", iterations, func() uint64 { return missPass(orderedAny, absent) })
	r.Run("hashed-any/miss", iterations, func() uint64 { return missPass(hashedAny, absent) })

	r.Report(os.Stdout)
	fmt.Println()
}

func ownedPass(t lookuper, c *corpus.Corpus) (sum uint64) {
	for _, key := range c.Keys {
		if v, ok := t.Lookup(key); ok {
			sum += v
		}
	}
	return
}

// tempBytesPass materializes a temporary owned key per probe - the
// non-transparent convention for callers holding byte views.
func tempBytesPass(t lookuper, c *corpus.Corpus) (sum uint64) {
	for _, b := range c.Views {
		if v, ok := t.Lookup(string(b)); ok {
			sum += v
		}
	}
	return
}

// tempRawPass is tempBytesPass for callers holding raw pairs.
func tempRawPass(t lookuper, c *corpus.Corpus) (sum uint64) {
	for _, raw := range c.Raws {
		if v, ok := t.Lookup(string(raw.Bytes())); ok {
			sum += v
		}
	}
	return
}

func bytesPass(t bytesLookuper, c *corpus.Corpus) (sum uint64) {
	for _, b := range c.Views {
		if v, ok := t.LookupBytes(b); ok {
			sum += v
		}
	}
	return
}

func rawPass(t rawLookuper, c *corpus.Corpus) (sum uint64) {
	for _, raw := range c.Raws {
		if v, ok := t.LookupRaw(raw.P, raw.N); ok {
			sum += v
		}
	}
	return
}

func missPass(t lookuper, absent []string) (sum uint64) {
	for _, key := range absent {
		if v, ok := t.Lookup(key); ok {
			sum += v
		}
	}
	return
}
