// SPDX-License-Identifier: MIT

package window

import (
	"sort"

	"github.com/cespare/xxhash/v2"
)

// FrequencyMap counts occurrences of string keys within a window.
//
// The zero value is not ready for use; call NewFrequencyMap.
type FrequencyMap struct {
	counts      map[string]int
	total       int
	fingerprint uint64
}

// NewFrequencyMap returns an empty map sized for about hint distinct keys.
func NewFrequencyMap(hint int) *FrequencyMap {
	if hint < 0 {
		hint = 0
	}

	return &FrequencyMap{counts: make(map[string]int, hint)}
}

// FrequencyMapOf counts every key in keys, duplicates included.
func FrequencyMapOf(keys []string) *FrequencyMap {
	m := NewFrequencyMap(len(keys))
	for _, k := range keys {
		m.Add(k)
	}

	return m
}

// Add increments the count of k and returns the new count.
func (m *FrequencyMap) Add(k string) int {
	m.counts[k]++
	m.total++
	m.fingerprint += xxhash.Sum64String(k)

	return m.counts[k]
}

// Remove decrements the count of k and returns the new count.
// Removing a key that is absent is a no-op; a key reaching zero is deleted.
func (m *FrequencyMap) Remove(k string) int {
	c, ok := m.counts[k]
	if !ok {
		return 0
	}
	m.total--
	m.fingerprint -= xxhash.Sum64String(k)
	if c == 1 {
		delete(m.counts, k)

		return 0
	}
	m.counts[k] = c - 1

	return c - 1
}

// Count returns the current count of k (0 when absent).
func (m *FrequencyMap) Count(k string) int {
	return m.counts[k]
}

// Len returns the number of distinct keys with a positive count.
func (m *FrequencyMap) Len() int {
	return len(m.counts)
}

// Total returns the sum of all counts.
func (m *FrequencyMap) Total() int {
	return m.total
}

// Fingerprint returns an order-independent digest of the multiset of keys.
// Equal maps always share a fingerprint; the converse holds with high
// probability only, so Equal never trusts it alone.
func (m *FrequencyMap) Fingerprint() uint64 {
	return m.fingerprint
}

// Equal reports whether m and other hold exactly the same keys with the same
// counts.
func (m *FrequencyMap) Equal(other *FrequencyMap) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	if m.total != other.total || len(m.counts) != len(other.counts) || m.fingerprint != other.fingerprint {
		return false
	}
	for k, c := range m.counts {
		if other.counts[k] != c {
			return false
		}
	}

	return true
}

// Keys returns the distinct keys in ascending order.
func (m *FrequencyMap) Keys() []string {
	keys := make([]string, 0, len(m.counts))
	for k := range m.counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Reset empties m while keeping its allocated buckets.
func (m *FrequencyMap) Reset() {
	clear(m.counts)
	m.total = 0
	m.fingerprint = 0
}
