// Package table implements the lookup-table variants under comparison.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package table

import (
	"testing"

	"github.com/NVIDIA/keyspeed/cmn/cos"
)

// two-key tables with hand-assigned payloads, queried via all three calling
// conventions

func TestOrderedAnyTwoKeys(t *testing.T) {
	ta := &OrderedAny{newSlab([]string{"Susan", "Terry"}, []uint64{1, 2})}
	checkTwoKeys(t, ta.Lookup, ta.LookupBytes, ta.LookupRaw)
}

func TestHashedAnyTwoKeys(t *testing.T) {
	ta := &HashedAny{newBuckets([]string{"Susan", "Terry"}, []uint64{1, 2})}
	checkTwoKeys(t, ta.Lookup, ta.LookupBytes, ta.LookupRaw)
}

func checkTwoKeys(t *testing.T,
	lookup func(string) (uint64, bool),
	lookupBytes func([]byte) (uint64, bool),
	lookupRaw func(*byte, int) (uint64, bool),
) {
	for key, want := range map[string]uint64{"Susan": 1, "Terry": 2} {
		if v, ok := lookup(key); !ok || v != want {
			t.Fatalf("owned %q: (%d, %t), expected (%d, true)", key, v, ok, want)
		}
		if v, ok := lookupBytes([]byte(key)); !ok || v != want {
			t.Fatalf("bytes %q: (%d, %t), expected (%d, true)", key, v, ok, want)
		}
		if v, ok := lookupRaw(cos.StrPtr(key), len(key)); !ok || v != want {
			t.Fatalf("raw %q: (%d, %t), expected (%d, true)", key, v, ok, want)
		}
	}
	const unknown = "Unknown"
	if _, ok := lookup(unknown); ok {
		t.Fatal("owned lookup found a key that was never inserted")
	}
	if _, ok := lookupBytes([]byte(unknown)); ok {
		t.Fatal("bytes lookup found a key that was never inserted")
	}
	if _, ok := lookupRaw(cos.StrPtr(unknown), len(unknown)); ok {
		t.Fatal("raw lookup found a key that was never inserted")
	}
}
