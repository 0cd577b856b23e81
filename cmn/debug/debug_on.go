//go:build debug

// Package debug provides build-tagged assertions
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package debug

import (
	"fmt"
)

const ON = true

func Assert(cond bool, a ...any) {
	if !cond {
		if len(a) > 0 {
			panic("DEBUG PANIC: " + fmt.Sprint(a...))
		}
		panic("DEBUG PANIC")
	}
}

func Assertf(cond bool, f string, a ...any) {
	if !cond {
		panic("DEBUG PANIC: " + fmt.Sprintf(f, a...))
	}
}

func AssertNoErr(err error) {
	if err != nil {
		panic(err)
	}
}
