// Package cos provides common low-level types and utilities for all keyspeed packages
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"fmt"
	"strconv"
	"time"
)

// NOTE usage: bench reporting only

func FormatBigInt(n int) string { return FormatBigI64(int64(n)) }

func FormatBigI64(n int64) (s string) {
	if n < 1000 {
		return strconv.FormatInt(n, 10)
	}
	for n > 0 {
		rem := n % 1000
		n = (n - rem) / 1000
		if s == "" {
			s = fmt.Sprintf("%03d", rem)
			continue
		}
		if n == 0 {
			s = strconv.FormatInt(rem, 10) + "," + s
		} else {
			s = fmt.Sprintf("%03d", rem) + "," + s
		}
	}
	return s
}

// FormatMilli returns a duration formatted as milliseconds. For values bigger
// than millisecond, it returns an integer number "#ms". For values smaller than
// millisecond, the function returns fractional number "0.##ms"
func FormatMilli(tm time.Duration) string {
	milli := tm.Milliseconds()
	if milli > 0 {
		return fmt.Sprintf("%dms", milli)
	}
	micro := tm.Microseconds()
	if micro == 0 {
		return "0"
	}
	return fmt.Sprintf("%.2fms", float64(micro)/1000.0)
}
