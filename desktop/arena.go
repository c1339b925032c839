// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"fmt"
	"sync"
)

// arena owns the callback tables of the windows of an [App]. A table is
// referred to by an integer id, which is what is stored in the native
// user pointer of its window, so that the tables never leave Go memory.
type arena struct {
	mu     sync.Mutex
	next   uintptr
	tables map[uintptr]*callbackTable
}

// install adds the table and returns its id, which is never 0.
func (ar *arena) install(t *callbackTable) uintptr {
	ar.mu.Lock()
	defer ar.mu.Unlock()
	if ar.tables == nil {
		ar.tables = make(map[uintptr]*callbackTable)
	}
	ar.next++
	ar.tables[ar.next] = t
	return ar.next
}

// lookup returns the table with the given id, or nil.
func (ar *arena) lookup(id uintptr) *callbackTable {
	ar.mu.Lock()
	defer ar.mu.Unlock()
	return ar.tables[id]
}

// free removes the table with the given id. It panics if there is none,
// so that a table is never released twice.
func (ar *arena) free(id uintptr) {
	ar.mu.Lock()
	defer ar.mu.Unlock()
	if _, ok := ar.tables[id]; !ok {
		panic(fmt.Sprintf("desktop: callback table %d freed twice", id))
	}
	delete(ar.tables, id)
}

// live returns the number of installed tables.
func (ar *arena) live() int {
	ar.mu.Lock()
	defer ar.mu.Unlock()
	return len(ar.tables)
}
