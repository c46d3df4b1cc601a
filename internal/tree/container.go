package tree

import (
	"fmt"
	"slices"
)

// Mapping is an insertion-ordered map from string keys to values.
type Mapping struct {
	keys []string
	vals map[string]Value
}

func newMapping(capacity int) *Mapping {
	return &Mapping{
		keys: make([]string, 0, capacity),
		vals: make(map[string]Value, capacity),
	}
}

func (m *Mapping) put(key string, v Value) {
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
}

// Len returns the number of entries.
func (m *Mapping) Len() int { return len(m.keys) }

// Keys returns a copy of the keys in insertion order.
func (m *Mapping) Keys() []string { return slices.Clone(m.keys) }

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.vals[key]
	return ok
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Entries returns the entries in insertion order.
func (m *Mapping) Entries() []Entry {
	out := make([]Entry, len(m.keys))
	for i, k := range m.keys {
		out[i] = Entry{Key: k, Value: m.vals[k]}
	}
	return out
}

// Set overwrites an existing key or appends a new one.
func (m *Mapping) Set(key string, v Value) { m.put(key, v) }

// Add appends a new key. It fails if the key is already present.
func (m *Mapping) Add(key string, v Value) error {
	if m.Has(key) {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	m.put(key, v)
	return nil
}

// Delete removes key. It fails if the key is absent.
func (m *Mapping) Delete(key string) error {
	if !m.Has(key) {
		return fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	delete(m.vals, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
	return nil
}

// Sequence is an ordered list of values.
type Sequence struct {
	items []Value
}

// Len returns the number of items.
func (s *Sequence) Len() int { return len(s.items) }

// Items returns a shallow copy of the items.
func (s *Sequence) Items() []Value { return slices.Clone(s.items) }

// Get returns the item at index i.
func (s *Sequence) Get(i int) (Value, bool) {
	if i < 0 || i >= len(s.items) {
		return Value{}, false
	}
	return s.items[i], true
}

// Set overwrites the item at index i.
func (s *Sequence) Set(i int, v Value) error {
	if i < 0 || i >= len(s.items) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexRange, i, len(s.items))
	}
	s.items[i] = v
	return nil
}

// Insert places v at index i, shifting later items right. i may equal Len.
func (s *Sequence) Insert(i int, v Value) error {
	if i < 0 || i > len(s.items) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIndexRange, i, len(s.items))
	}
	s.items = slices.Insert(s.items, i, v)
	return nil
}

// Append adds v at the end.
func (s *Sequence) Append(v Value) { s.items = append(s.items, v) }

// Delete removes the item at index i.
func (s *Sequence) Delete(i int) error {
	if i < 0 || i >= len(s.items) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexRange, i, len(s.items))
	}
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}
