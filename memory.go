package willowgui

import (
	"fmt"
	"sort"
	"strings"
)

// Memory is the key-value store behind widget state that must survive
// ticks. Keys are gwids; entries live until the window owning them closes.
type Memory struct {
	data map[string]any
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]any)}
}

// GetOrInit returns the entry stored under gwid, storing a copy of initial
// first if the key is absent. Later calls ignore initial. The returned
// pointer stays valid until the entry is released; writes through it are
// persisted.
//
// Reading an entry as a different type than it was created with panics.
func GetOrInit[T any](m *Memory, gwid string, initial T) *T {
	if v, ok := m.data[gwid]; ok {
		p, ok := v.(*T)
		if !ok {
			panic(fmt.Sprintf("willowgui: memory %q holds %T, not %T", gwid, v, p))
		}
		return p
	}
	p := new(T)
	*p = initial
	m.data[gwid] = p
	return p
}

// Lookup returns the raw entry stored under gwid (a pointer created by
// GetOrInit).
func (m *Memory) Lookup(gwid string) (any, bool) {
	v, ok := m.data[gwid]
	return v, ok
}

// Has reports whether gwid has an entry.
func (m *Memory) Has(gwid string) bool {
	_, ok := m.data[gwid]
	return ok
}

// Delete removes a single entry.
func (m *Memory) Delete(gwid string) {
	delete(m.data, gwid)
}

// Len returns the number of entries.
func (m *Memory) Len() int {
	return len(m.data)
}

// Keys returns all keys in sorted order.
func (m *Memory) Keys() []string {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ReleaseHierarchy removes gwid and every entry scoped under it
// (gwid + "::" + ...). Keys that merely share a textual prefix such as
// "A::BC" for "A::B" are kept. Releasing twice is a no-op.
func (m *Memory) ReleaseHierarchy(gwid string) int {
	prefix := gwid + GwidSeparator
	n := 0
	for k := range m.data {
		if k == gwid || strings.HasPrefix(k, prefix) {
			delete(m.data, k)
			n++
		}
	}
	return n
}
