// Package corpus generates the fixed key sets that drive timed lookup trials.
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package corpus

import (
	"github.com/NVIDIA/keyspeed/cmn/cos"
	"github.com/NVIDIA/keyspeed/cmn/debug"
	"github.com/NVIDIA/keyspeed/cmn/prob"

	"github.com/pkg/errors"
)

// One logical key, three synchronized physical representations:
// owned string, zero-copy []byte view, and raw pointer-and-length pair.
// Views and raws alias the owned keys' backing bytes and are never mutated;
// the Keys slice is never resized after construction.

type (
	// Raw is a pointer to the first byte of a key plus its length.
	Raw struct {
		P *byte
		N int
	}
	Corpus struct {
		Keys   []string // owned
		Views  [][]byte // aliases Keys[i]
		Raws   []Raw    // aliases Keys[i]
		minLen int
		filter *prob.Filter
	}
)

// View returns the raw pair as a zero-copy string.
func (r Raw) View() string { return cos.UnsafeSPtr(r.P, r.N) }

// Bytes returns the raw pair as a zero-copy byte slice.
func (r Raw) Bytes() []byte { return cos.UnsafeBPtr(r.P, r.N) }

// New generates `count` unique printable keys, each at least `minLen` bytes
// long, together with the view and raw representations over the same storage.
func New(count, minLen int) (*Corpus, error) {
	if count < 1 {
		return nil, errors.Errorf("invalid corpus size %d", count)
	}
	if minLen < 1 {
		return nil, errors.Errorf("invalid minimum key length %d", minLen)
	}
	c := &Corpus{
		Keys:   make([]string, 0, count),
		Views:  make([][]byte, 0, count),
		Raws:   make([]Raw, 0, count),
		minLen: minLen,
		filter: prob.NewFilter(uint(count)),
	}
	for len(c.Keys) < count {
		key := genKey(minLen)
		// a filter positive may be false - regenerate rather than verify
		if c.filter.Lookup(cos.UnsafeB(key)) {
			continue
		}
		c.filter.Insert(cos.UnsafeB(key))
		c.Keys = append(c.Keys, key)
		c.Views = append(c.Views, cos.UnsafeB(key))
		c.Raws = append(c.Raws, Raw{P: cos.StrPtr(key), N: len(key)})
	}
	debug.Assert(len(c.Keys) == len(c.Views) && len(c.Keys) == len(c.Raws))
	return c, nil
}

func (c *Corpus) Len() int { return len(c.Keys) }

// Absent returns n keys with the corpus's length profile guaranteed not to be
// present in the corpus (no false negatives: a filter-negative key was never
// inserted). Returned keys are themselves unique and excluded from subsequent
// Absent calls.
func (c *Corpus) Absent(n int) []string {
	keys := make([]string, 0, n)
	for len(keys) < n {
		key := genKey(c.minLen)
		if c.filter.Lookup(cos.UnsafeB(key)) {
			continue
		}
		c.filter.Insert(cos.UnsafeB(key))
		keys = append(keys, key)
	}
	return keys
}
