// Package prob implements a dynamic probabilistic membership filter.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package prob

import (
	"sync"

	cuckoo "github.com/seiflotfy/cuckoofilter"
)

const growFactor = 3 // how much size of next, new filter will grow comparing to previous filter

// Filter is a dynamic probabilistic filter that grows if there is more space
// needed. Lookup may return false positives but never false negatives: a
// negative answer means the key was definitely never inserted, which is the
// property corpus generation relies on when screening for duplicates.
//
// NOTE: underneath it uses Cuckoo filters - Bloom filters could be also used
// but Cuckoo filters keep the (possible future) option to delete keys.
type Filter struct {
	filters []*cuckoo.Filter
	size    uint
	mtx     sync.RWMutex
}

func NewFilter(initSize uint) *Filter {
	return &Filter{
		filters: make([]*cuckoo.Filter, 0, 5),
		size:    initSize,
	}
}

func (f *Filter) Lookup(k []byte) bool {
	f.mtx.RLock()
	for idx := len(f.filters) - 1; idx >= 0; idx-- {
		if f.filters[idx].Lookup(k) {
			f.mtx.RUnlock()
			return true
		}
	}
	f.mtx.RUnlock()
	return false
}

func (f *Filter) Insert(k []byte) {
	f.mtx.Lock()

	var lastFilter *cuckoo.Filter
	if len(f.filters) == 0 {
		lastFilter = cuckoo.NewFilter(f.size)
		f.filters = append(f.filters, lastFilter)
	} else {
		lastFilter = f.filters[len(f.filters)-1]
	}

	if !lastFilter.Insert(k) {
		sf := cuckoo.NewFilter(f.size * growFactor)
		f.filters = append(f.filters, sf)
		sf.Insert(k)
	}
	f.mtx.Unlock()
}

func (f *Filter) Reset() {
	f.mtx.Lock()
	for idx := range len(f.filters) {
		f.filters[idx].Reset()
	}
	clear(f.filters)
	f.filters = f.filters[:0]
	f.mtx.Unlock()
}
