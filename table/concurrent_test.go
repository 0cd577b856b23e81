// Package table implements the lookup-table variants under comparison.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package table_test

import (
	"testing"

	"github.com/NVIDIA/keyspeed/corpus"
	"github.com/NVIDIA/keyspeed/table"
	"github.com/NVIDIA/keyspeed/tools/tassert"

	"golang.org/x/sync/errgroup"
)

// all table variants are read-only after construction and must tolerate
// concurrent lookups (the harness binary itself is sequential)

func TestConcurrentReaders(t *testing.T) {
	const workers = 8
	c, err := corpus.New(testCorpusSize, shortMinLen)
	tassert.CheckFatal(t, err)

	var expected uint64
	for _, key := range c.Keys {
		expected += table.Payload(key)
	}

	tables := map[string]func(string) (uint64, bool){
		"ordered":     table.NewOrdered(c).Lookup,
		"ordered-any": table.NewOrderedAny(c).Lookup,
		"hashed":      table.NewHashed(c).Lookup,
		"hashed-any":  table.NewHashedAny(c).Lookup,
		"stdmap":      table.NewStdMap(c).Lookup,
		"syncmap":     table.NewSyncMap(c).Lookup,
		"btree":       table.NewBTreeMap(c).Lookup,
		"swiss":       table.NewSwissMap(c).Lookup,
	}
	for name, lookup := range tables {
		t.Run(name, func(t *testing.T) {
			var (
				g    errgroup.Group
				sums [workers]uint64
			)
			for w := range workers {
				g.Go(func() error {
					var sum uint64
					for _, key := range c.Keys {
						if v, ok := lookup(key); ok {
							sum += v
						}
					}
					sums[w] = sum
					return nil
				})
			}
			tassert.CheckFatal(t, g.Wait())
			for w := range workers {
				tassert.Errorf(t, sums[w] == expected, "worker %d: sum %d != expected %d", w, sums[w], expected)
			}
		})
	}
}
