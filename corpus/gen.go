// Package corpus generates the fixed key sets that drive timed lookup trials.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package corpus

import (
	"math/rand/v2"

	"github.com/NVIDIA/keyspeed/cmn/cos"

	"github.com/teris-io/shortid"
)

// NOTE: BEWARE: `shortid` uses hardcoded 01/2016 as a starting timestamp
const (
	// alphabet for key cores, similar to shortid.DEFAULT_ABC
	keyABC = "-5nZJDft6LuzsjGNpPwY7rQa39vehq4i1cV2FROo8yHSlC0BUEdWbIxMmTgKXAk_"

	coreLen = 9 // natural shortid length; fallback length as well
)

var sids [16]*shortid.Shortid

func init() {
	seed := rand.Uint64()
	for i := range sids {
		sids[i] = shortid.MustNew(uint8(i+1) /*worker*/, keyABC, seed)
	}
}

// genCore produces a short unique printable core for a key.
func genCore() (core string) {
	var err error
	for _, sid := range sids {
		core, err = sid.Generate()
		if err == nil &&
			core[0] != '-' && core[0] != '_' && core[len(core)-1] != '-' && core[len(core)-1] != '_' {
			return core
		}
	}
	b := make([]byte, coreLen)
	fillLetters(b)
	return string(b)
}

// genKey pads the core with random letters up to exactly max(minLen, len(core)).
func genKey(minLen int) string {
	core := genCore()
	if len(core) >= minLen {
		return core
	}
	b := make([]byte, minLen)
	copy(b, core)
	fillLetters(b[len(core):])
	return string(b)
}

const (
	letterIdxBits = 6                    // 6 bits to represent a letter index
	letterIdxMask = 1<<letterIdxBits - 1 // all 1-bits, as many as letterIdxBits
	letterIdxMax  = 63 / letterIdxBits   // # of letter indices fitting in 63 bits
)

// One rand.Int64() generates 63 random bits, enough for letterIdxMax letters.
func fillLetters(b []byte) {
	for i, cache, remain := len(b)-1, rand.Int64(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = rand.Int64(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < cos.LenRunes {
			b[i] = cos.LetterRunes[idx]
			i--
		}
		cache >>= letterIdxBits
		remain--
	}
}
