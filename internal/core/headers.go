package core

import "strings"

// Headers is a case-insensitive header collection. Names keep the casing of
// their first occurrence and the order in which they were first added.
type Headers struct {
	data     map[string][]string
	keyOrder []string
}

// NewHeaders creates an empty headers collection.
func NewHeaders() *Headers {
	return &Headers{
		data:     make(map[string][]string),
		keyOrder: make([]string, 0),
	}
}

func (h *Headers) normalize(key string) string {
	return strings.ToLower(key)
}

// Set replaces all values stored under key.
func (h *Headers) Set(key, value string) {
	normalized := h.normalize(key)
	if _, exists := h.data[normalized]; !exists {
		h.keyOrder = append(h.keyOrder, key)
	}
	h.data[normalized] = []string{value}
}

// Add appends value to the values stored under key.
func (h *Headers) Add(key, value string) {
	normalized := h.normalize(key)
	if _, exists := h.data[normalized]; !exists {
		h.keyOrder = append(h.keyOrder, key)
	}
	h.data[normalized] = append(h.data[normalized], value)
}

// Get returns the first value stored under key, or "".
func (h *Headers) Get(key string) string {
	values := h.data[h.normalize(key)]
	if len(values) > 0 {
		return values[0]
	}
	return ""
}

// Has reports whether any value is stored under key.
func (h *Headers) Has(key string) bool {
	_, ok := h.data[h.normalize(key)]
	return ok
}

func (h *Headers) GetAll(key string) []string {
	values := h.data[h.normalize(key)]
	if values == nil {
		return []string{}
	}
	result := make([]string, len(values))
	copy(result, values)
	return result
}

// Keys returns header names in insertion order.
func (h *Headers) Keys() []string {
	result := make([]string, len(h.keyOrder))
	copy(result, h.keyOrder)
	return result
}

// Len returns the number of distinct header names.
func (h *Headers) Len() int {
	return len(h.keyOrder)
}

func (h *Headers) Clone() *Headers {
	clone := NewHeaders()
	for _, key := range h.keyOrder {
		for _, v := range h.data[h.normalize(key)] {
			clone.Add(key, v)
		}
	}
	return clone
}
