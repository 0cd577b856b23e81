// Package cos provides common low-level types and utilities for all keyspeed packages
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos_test

import (
	"testing"
	"unsafe"

	"github.com/NVIDIA/keyspeed/cmn/cos"
)

func TestUnsafeBAliases(t *testing.T) {
	s := "the quick brown fox"
	b := cos.UnsafeB(s)
	if len(b) != len(s) {
		t.Fatalf("length mismatch: %d vs %d", len(b), len(s))
	}
	if unsafe.SliceData(b) != unsafe.StringData(s) {
		t.Fatal("UnsafeB copied instead of aliasing")
	}
	if string(b) != s {
		t.Fatalf("content mismatch: %q", b)
	}
}

func TestUnsafeSRoundTrip(t *testing.T) {
	b := []byte("jumps over the lazy dog")
	s := cos.UnsafeS(b)
	if unsafe.StringData(s) != unsafe.SliceData(b) {
		t.Fatal("UnsafeS copied instead of aliasing")
	}
	back := cos.UnsafeB(s)
	if unsafe.SliceData(back) != unsafe.SliceData(b) {
		t.Fatal("round trip lost the backing array")
	}
}

func TestUnsafeSPtr(t *testing.T) {
	s := "abcdef"
	p := cos.StrPtr(s)
	view := cos.UnsafeSPtr(p, len(s))
	if view != s {
		t.Fatalf("expected %q, got %q", s, view)
	}
	if unsafe.StringData(view) != unsafe.StringData(s) {
		t.Fatal("UnsafeSPtr copied instead of aliasing")
	}
	sub := cos.UnsafeSPtr(p, 3)
	if sub != "abc" {
		t.Fatalf("expected prefix view, got %q", sub)
	}
}
