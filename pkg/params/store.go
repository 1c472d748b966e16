// Package params models the host's string-keyed parameter store and its
// trigger hooks.
//
// Keys are data driven (bone and region names are appended at runtime), so
// the store is untyped. Unset floats read as 0; callers rely on that.
package params

import (
	"sort"
	"sync"
)

// FloatReader reads float parameters. Unset keys return 0.
type FloatReader interface {
	Float(name string) float64
}

// Store is the host parameter store.
type Store interface {
	FloatReader
	SetFloat(name string, value float64)
	SetString(name string, value string)
}

// Memory is an in-process Store. Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	floats  map[string]float64
	strings map[string]string
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{
		floats:  make(map[string]float64),
		strings: make(map[string]string),
	}
}

// Float returns the value of name, or 0 if unset.
func (m *Memory) Float(name string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.floats[name]
}

// SetFloat stores a float value.
func (m *Memory) SetFloat(name string, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.floats[name] = value
}

// StringValue returns the string value of name, or "" if unset.
func (m *Memory) StringValue(name string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.strings[name]
}

// SetString stores a string value.
func (m *Memory) SetString(name string, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.strings[name] = value
}

// Has reports whether a float has been set for name.
func (m *Memory) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.floats[name]
	return ok
}

// Keys returns every float key, sorted.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.floats))
	for k := range m.floats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot copies every float value.
func (m *Memory) Snapshot() map[string]float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]float64, len(m.floats))
	for k, v := range m.floats {
		out[k] = v
	}
	return out
}

// Flag reports whether a float parameter is exactly 1, the host's "on" value.
func Flag(r FloatReader, name string) bool {
	return r.Float(name) == 1
}

// Bool converts a flag to the float the host stores.
func Bool(on bool) float64 {
	if on {
		return 1
	}
	return 0
}
