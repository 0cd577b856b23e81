//go:build !mono

// Package mono provides low-level monotonic time
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package mono

import (
	"time"
)

var started = time.Now()

// NanoTime is the default, portable flavor; build with `-tags=mono` for the
// runtime.nanotime fast path.
func NanoTime() int64 { return int64(time.Since(started)) }
