// Package table implements the lookup-table variants under comparison.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package table

import (
	onexxh "github.com/OneOfOne/xxhash"
)

const MLCG32 = 1103515245 // xxhash seed

// Payload derives a key's associated value from the key's content. Being
// recomputable, it lets tests verify accumulated totals independently.
func Payload(key string) uint64 {
	return uint64(onexxh.ChecksumString32S(key, MLCG32))
}

func payloads(keys []string) []uint64 {
	vals := make([]uint64, len(keys))
	for i, key := range keys {
		vals[i] = Payload(key)
	}
	return vals
}
