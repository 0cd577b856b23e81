//go:build !debug

// Package debug provides build-tagged assertions
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package debug

const ON = false

func Assert(bool, ...any)          {}
func Assertf(bool, string, ...any) {}
func AssertNoErr(error)            {}
