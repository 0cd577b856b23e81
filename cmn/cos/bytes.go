// Package cos provides common low-level types and utilities for all keyspeed packages
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"unsafe"
)

// Zero-copy string/byte-slice conversions. The returned value aliases the
// argument's backing storage; the caller must not mutate it and must not
// let the view outlive the storage.

// UnsafeB returns the string's bytes without copying.
func UnsafeB(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// UnsafeS returns the byte slice as a string without copying.
func UnsafeS(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// UnsafeSPtr is UnsafeS for a raw pointer-and-length pair.
func UnsafeSPtr(p *byte, n int) string {
	return unsafe.String(p, n)
}

// UnsafeBPtr is the byte-slice flavor of UnsafeSPtr.
func UnsafeBPtr(p *byte, n int) []byte {
	return unsafe.Slice(p, n)
}

// StrPtr returns a pointer to the string's first byte (nil for empty).
func StrPtr(s string) *byte {
	return unsafe.StringData(s)
}
